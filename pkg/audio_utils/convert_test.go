package audio_utils

import (
	"bytes"
	"testing"

	"github.com/go-audio/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeBuffer(sampleRate, numChannels, numFrames int) *audio.IntBuffer {
	data := make([]int, numFrames*numChannels)
	for i := range data {
		data[i] = (i % 1000) - 500
	}
	return &audio.IntBuffer{
		Data: data,
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: numChannels,
		},
		SourceBitDepth: 16,
	}
}

func TestEncodeToWavRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		sampleRate  int
		numChannels int
		numFrames   int
	}{
		{name: "mono_16k", sampleRate: 16000, numChannels: 1, numFrames: 1600},
		{name: "stereo_44k", sampleRate: 44100, numChannels: 2, numFrames: 441},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := makeBuffer(tt.sampleRate, tt.numChannels, tt.numFrames)

			wavData, err := EncodeToWav(input)
			require.NoError(t, err)
			require.NotEmpty(t, wavData)

			output, err := DecodeWavToPCM(bytes.NewReader(wavData))
			require.NoError(t, err)
			assert.Equal(t, tt.sampleRate, output.Format.SampleRate)
			assert.Equal(t, tt.numChannels, output.Format.NumChannels)
			assert.Equal(t, input.Data, output.Data)
		})
	}
}

func TestEncodeToWavRejectsEmptyInput(t *testing.T) {
	_, err := EncodeToWav(&audio.IntBuffer{Format: &audio.Format{SampleRate: 16000, NumChannels: 1}})
	assert.Error(t, err)

	_, err = EncodeToWav(nil)
	assert.Error(t, err)
}

func TestDecodeWavToPCMRejectsGarbage(t *testing.T) {
	_, err := DecodeWavToPCM(bytes.NewReader([]byte("definitely not a wav file")))
	assert.Error(t, err)
}

func TestMp3DecoderRejectsGarbage(t *testing.T) {
	_, err := Mp3Decoder{}.DecodePCM(bytes.NewReader([]byte("definitely not an mp3 stream")))
	assert.Error(t, err)
}

func TestPCMToBytesIsS16LE(t *testing.T) {
	buffer := &audio.IntBuffer{
		Data:   []int{0, 1, -1, 32767, -32768},
		Format: &audio.Format{SampleRate: 16000, NumChannels: 1},
	}
	assert.Equal(t, []byte{
		0x00, 0x00,
		0x01, 0x00,
		0xff, 0xff,
		0xff, 0x7f,
		0x00, 0x80,
	}, PCMToBytes(buffer))
}

func TestTwoByteDataToIntSliceSigned(t *testing.T) {
	intData := twoByteDataToIntSlice([]byte{0x00, 0x00, 0xff, 0x7f, 0x00, 0x80})
	assert.Equal(t, []int{0, 32767, -32768}, intData)
}
