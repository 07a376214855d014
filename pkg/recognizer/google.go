package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/petrzlen/audio2text-golang/pkg/audio_utils"
)

// DefaultEndpoint is the full-duplex-less Google Web Speech API used by
// Chromium; there is no official Go SDK for it so we speak raw HTTP.
const DefaultEndpoint = "http://www.google.com/speech-api/v2/recognize"

// googleWebSpeech posts audio/l16 samples and reads the line-delimited
// JSON the endpoint answers with.
type googleWebSpeech struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	language   string
}

// NewGoogleWebSpeech creates a Recognizer backed by the Google Web Speech
// API. An empty language defaults to en-US.
func NewGoogleWebSpeech(apiKey string, language string) Recognizer {
	if language == "" {
		language = "en-US"
	}
	return &googleWebSpeech{
		httpClient: &http.Client{},
		endpoint:   DefaultEndpoint,
		apiKey:     apiKey,
		language:   language,
	}
}

// Response lines look like:
//
//	{"result":[]}
//	{"result":[{"alternative":[{"transcript":"hello world","confidence":0.87}],"final":true}],"result_index":0}
type googleResponseLine struct {
	Result []struct {
		Alternative []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternative"`
		Final bool `json:"final"`
	} `json:"result"`
}

func (g *googleWebSpeech) Recognize(ctx context.Context, wavData []byte) (string, error) {
	startTime := time.Now()

	// The endpoint wants raw samples plus their rate, not a wav container.
	pcmBuffer, err := audio_utils.DecodeWavToPCM(bytes.NewReader(wavData))
	if err != nil {
		return "", errors.Wrap(err, "cannot extract pcm from wav payload")
	}

	requestURL := fmt.Sprintf("%s?%s", g.endpoint, url.Values{
		"client": []string{"chromium"},
		"key":    []string{g.apiKey},
		"lang":   []string{g.language},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(audio_utils.PCMToBytes(pcmBuffer)))
	if err != nil {
		return "", errors.Wrap(err, "cannot build recognition request")
	}
	req.Header.Set("Content-Type", fmt.Sprintf("audio/l16; rate=%d", pcmBuffer.Format.SampleRate))

	log.Debug().Str("lang", g.language).Int("sample_rate", pcmBuffer.Format.SampleRate).Int("pcm_byte_length", 2*len(pcmBuffer.Data)).Msg("sending recognition request")
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "recognition request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errMsg, _ := io.ReadAll(resp.Body)
		return "", errors.Errorf("received non-200 status %d from recognition service: %s", resp.StatusCode, errMsg)
	}

	transcript, err := parseResponseLines(resp.Body)
	if err != nil {
		return "", err
	}
	log.Debug().Str("transcript", transcript).Dur("time_elapsed", time.Since(startTime)).Msg("received transcription")
	return transcript, nil
}

// parseResponseLines picks the first alternative of the first non-empty
// result; a response with only empty results means the audio was
// unintelligible rather than the call having failed.
func parseResponseLines(body io.Reader) (string, error) {
	decoder := json.NewDecoder(body)
	sawLine := false
	for {
		var line googleResponseLine
		if err := decoder.Decode(&line); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", errors.Wrap(err, "cannot parse recognition response")
		}
		sawLine = true
		for _, result := range line.Result {
			if len(result.Alternative) > 0 {
				return result.Alternative[0].Transcript, nil
			}
		}
	}
	if !sawLine {
		return "", errors.New("empty recognition response")
	}
	return "", ErrNoSpeech
}
