package audio_utils

import (
	"io"
	"math"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// WavDuration computes frames / sample-rate from a wav container,
// rounded to two decimal places. Only headers are read, not the samples.
func WavDuration(input io.ReadSeeker) (float64, error) {
	decoder := wav.NewDecoder(input)
	decoder.ReadInfo()
	if err := decoder.Err(); err != nil {
		return 0, errors.Wrap(err, "cannot parse wav header")
	}
	if !decoder.IsValidFile() || decoder.SampleRate == 0 {
		return 0, errors.New("not a valid wav file")
	}
	if err := decoder.FwdToPCM(); err != nil {
		return 0, errors.Wrap(err, "cannot locate wav data chunk")
	}

	bytesPerFrame := int64(decoder.NumChans) * int64(decoder.BitDepth) / 8
	if bytesPerFrame == 0 {
		return 0, errors.New("wav header reports zero-sized frames")
	}
	frames := decoder.PCMLen() / bytesPerFrame
	return Round2(float64(frames) / float64(decoder.SampleRate)), nil
}

// Round2 rounds to two decimal places, the report's duration precision.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
