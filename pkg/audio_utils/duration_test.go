package audio_utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavDuration(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate int
		numFrames  int
		want       float64
	}{
		{name: "two_seconds_16k_mono", sampleRate: 16000, numFrames: 32000, want: 2.0},
		{name: "rounds_to_two_decimals", sampleRate: 1000, numFrames: 1234, want: 1.23},
		{name: "sub_second", sampleRate: 8000, numFrames: 4000, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wavData, err := EncodeToWav(makeBuffer(tt.sampleRate, 1, tt.numFrames))
			require.NoError(t, err)

			duration, err := WavDuration(bytes.NewReader(wavData))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, duration, 1e-9)
		})
	}
}

func TestWavDurationCorruptHeader(t *testing.T) {
	_, err := WavDuration(bytes.NewReader([]byte("this is not really a wav file")))
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.0, Round2(2.0))
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, 0.0, Round2(0))
}
