package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/petrzlen/audio2text-golang/pkg/audio_utils"
)

// normalize returns a path to a linear-PCM wav for the input. Wav input
// passes through untouched; mp3 is decoded fully in memory, re-encoded and
// written to a sibling <base>.wav, silently overwriting any previous one.
func (p *Pipeline) normalize(in Input) (string, error) {
	if in.Format == FormatWav {
		return in.Path, nil
	}

	source, err := p.fs.Open(in.Path)
	if err != nil {
		return "", errors.Wrapf(err, "cannot open %s", in.Path)
	}
	defer source.Close()

	pcmBuffer, err := p.decoder.DecodePCM(source)
	if err != nil {
		return "", errors.Wrapf(err, "cannot convert %s", in.Path)
	}
	wavData, err := audio_utils.EncodeToWav(pcmBuffer)
	if err != nil {
		return "", errors.Wrapf(err, "cannot convert %s", in.Path)
	}

	wavPath := strings.TrimSuffix(in.Path, filepath.Ext(in.Path)) + ".wav"
	if err := afero.WriteFile(p.fs, wavPath, wavData, 0644); err != nil {
		return "", errors.Wrapf(err, "cannot write %s", wavPath)
	}
	log.Info().Str("input", in.Path).Str("output", wavPath).Msg("converted mp3 to wav")
	return wavPath, nil
}
