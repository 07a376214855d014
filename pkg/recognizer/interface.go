package recognizer

import (
	"context"

	"github.com/pkg/errors"
)

// ErrNoSpeech means the service answered but could not produce any
// hypothesis for the audio. Callers treat it differently from transport
// failures, so it is a sentinel.
var ErrNoSpeech = errors.New("no speech could be recognized")

// Recognizer converts a full wav payload into a text hypothesis.
type Recognizer interface {
	Recognize(ctx context.Context, wavData []byte) (text string, err error)
}
