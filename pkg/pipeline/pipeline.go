package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/petrzlen/audio2text-golang/pkg/audio_utils"
	"github.com/petrzlen/audio2text-golang/pkg/recognizer"
)

// Pipeline runs the linear Validate -> Normalize -> MeasureDuration ->
// Transcribe -> Emit sequence for one audio file. All collaborators are
// injected so the whole run is testable without disk, codec or network.
type Pipeline struct {
	fs         afero.Fs
	decoder    audio_utils.PCMDecoder
	recognizer recognizer.Recognizer

	stdout io.Writer
	now    func() time.Time
}

func New(fs afero.Fs, decoder audio_utils.PCMDecoder, rec recognizer.Recognizer) *Pipeline {
	return &Pipeline{
		fs:         fs,
		decoder:    decoder,
		recognizer: rec,
		stdout:     os.Stdout,
		now:        time.Now,
	}
}

// Run executes the pipeline for path. Input validation, codec conversion
// and the final report write are fatal; duration and recognition problems
// degrade into placeholder report content so a report is always attempted.
// The returned Report is non-nil whenever the run got past normalization.
func (p *Pipeline) Run(ctx context.Context, path string) (*Report, error) {
	in, err := ResolveInput(p.fs, path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("file", in.Path).Str("format", string(in.Format)).Msg("file detected")

	wavPath, err := p.normalize(in)
	if err != nil {
		return nil, err
	}

	report := &Report{
		FileName:    wavPath,
		Duration:    p.measureDuration(wavPath),
		ProcessedAt: p.now(),
		Text:        p.transcribe(ctx, wavPath),
	}

	// Mirror to stdout first; a failed file write still leaves the
	// operator with the full report on their terminal.
	rendered := report.Render()
	fmt.Fprint(p.stdout, rendered)

	if err := afero.WriteFile(p.fs, OutputFilename, []byte(rendered), 0644); err != nil {
		return report, errors.Wrapf(err, "cannot save transcription report to %s", OutputFilename)
	}
	log.Info().Str("output", OutputFilename).Msg("transcription report saved")
	return report, nil
}

// measureDuration is best-effort: the duration is advisory metadata and
// never blocks transcription, so failures degrade to zero.
func (p *Pipeline) measureDuration(wavPath string) float64 {
	file, err := p.fs.Open(wavPath)
	if err != nil {
		log.Error().Err(err).Str("file", wavPath).Msg("error reading audio file")
		return 0
	}
	defer file.Close()

	duration, err := audio_utils.WavDuration(file)
	if err != nil {
		log.Error().Err(err).Str("file", wavPath).Msg("error reading audio file")
		return 0
	}
	log.Info().Float64("duration_seconds", duration).Msg("audio duration computed")
	return duration
}

// transcribe always yields report text: the service's hypothesis, the
// ambiguous-audio sentinel, or the request-failure placeholder.
func (p *Pipeline) transcribe(ctx context.Context, wavPath string) string {
	wavData, err := afero.ReadFile(p.fs, wavPath)
	if err != nil {
		log.Error().Err(err).Str("file", wavPath).Msg("cannot read audio for transcription")
		return fmt.Sprintf(requestFailedFmt, err)
	}

	log.Info().Int("byte_length", len(wavData)).Msg("transcribing audio")
	text, err := p.recognizer.Recognize(ctx, wavData)
	if errors.Is(err, recognizer.ErrNoSpeech) {
		return AmbiguousAudioText
	}
	if err != nil {
		log.Warn().Err(err).Msg("recognition request failed")
		return fmt.Sprintf(requestFailedFmt, err)
	}
	return text
}
