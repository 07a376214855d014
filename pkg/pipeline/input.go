package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Fatal input errors; nothing is written and no network call happens
// when resolution fails.
var (
	ErrFileNotFound      = errors.New("the specified file does not exist")
	ErrUnsupportedFormat = errors.New("unsupported file type, please provide a .mp3 or .wav file")
)

type Format string

const (
	FormatWav Format = "wav"
	FormatMp3 Format = "mp3"
)

// Input is a validated audio file path plus its format tag.
type Input struct {
	Path   string
	Format Format
}

// ResolveInput checks the path references an existing regular file and
// derives the format tag from its trailing extension.
func ResolveInput(fs afero.Fs, path string) (Input, error) {
	info, err := fs.Stat(path)
	if err != nil || info.IsDir() {
		return Input{}, errors.Wrapf(ErrFileNotFound, "%s", path)
	}

	tag := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(tag) {
	case FormatWav, FormatMp3:
		return Input{Path: path, Format: Format(tag)}, nil
	default:
		return Input{}, errors.Wrapf(ErrUnsupportedFormat, "%q", tag)
	}
}
