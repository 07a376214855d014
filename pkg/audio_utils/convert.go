package audio_utils

import (
	"encoding/binary"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func dbg(err error) {
	if err != nil {
		log.Debug().Err(err).Msg("sth non-essential failed")
	}
}

// PCMDecoder turns a compressed audio stream into raw PCM samples.
// Narrow on purpose so the pipeline can be tested without a real codec.
type PCMDecoder interface {
	DecodePCM(input io.Reader) (*audio.IntBuffer, error)
}

// Mp3Decoder decodes mp3 streams with go-mp3, which always yields
// 16-bit stereo little-endian samples at the stream's native rate.
type Mp3Decoder struct{}

func (Mp3Decoder) DecodePCM(input io.Reader) (*audio.IntBuffer, error) {
	decoder, err := mp3.NewDecoder(input)
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode mp3 stream")
	}
	byteData, err := io.ReadAll(decoder)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read decoded mp3 samples")
	}
	log.Debug().Int("sample_rate", decoder.SampleRate()).Int("byte_length", len(byteData)).Msg("mp3 decoded to pcm")
	return &audio.IntBuffer{
		Data: twoByteDataToIntSlice(byteData),
		Format: &audio.Format{
			SampleRate:  decoder.SampleRate(),
			NumChannels: 2,
		},
		SourceBitDepth: 16,
	}, nil
}

// EncodeToWav renders the buffer as a 16-bit linear-PCM wav file.
// The wav encoder needs an io.WriteSeeker to finalize headers, so we encode
// into an in-memory file first.
func EncodeToWav(inputBuffer *audio.IntBuffer) (result []byte, err error) {
	if inputBuffer == nil || len(inputBuffer.Data) == 0 {
		return nil, errors.New("no samples to encode")
	}

	fs := afero.NewMemMapFs()
	inMemoryFilename := "in-memory-output.wav"
	inMemoryFile, err := fs.Create(inMemoryFilename)
	dbg(err)
	// We will call Close ourselves.

	outputBitDepth := 16
	pcmAudioFormat := 1
	wavEncoder := wav.NewEncoder(inMemoryFile, inputBuffer.Format.SampleRate, outputBitDepth, inputBuffer.Format.NumChannels, pcmAudioFormat)
	log.Debug().Int("int_data_length", len(inputBuffer.Data)).Int("sample_rate", inputBuffer.Format.SampleRate).Int("source_bit_depth", inputBuffer.SourceBitDepth).Int("num_channels", inputBuffer.Format.NumChannels).Msg("encoding int stream output as a wav")
	if err = wavEncoder.Write(inputBuffer); err != nil {
		return nil, errors.Wrap(err, "cannot encode byte output as wav")
	}

	// Close flushes any remaining data and finalizes the wav header.
	if err = wavEncoder.Close(); err != nil {
		return nil, errors.Wrap(err, "cannot finish wav encoding")
	}

	// We close and re-open the file so we can properly read-all of its contents.
	dbg(inMemoryFile.Close())
	inMemoryFileReopen, err := fs.Open(inMemoryFilename)
	dbg(err)
	result, err = io.ReadAll(inMemoryFileReopen)
	dbg(err)
	if err == nil && len(result) == 0 {
		return nil, errors.New("wav output is empty when input was not")
	}
	return result, err
}

// DecodeWavToPCM reads a full wav payload back into an IntBuffer.
func DecodeWavToPCM(input io.ReadSeeker) (*audio.IntBuffer, error) {
	decoder := wav.NewDecoder(input)
	buffer, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot decode wav payload")
	}
	if buffer.Format == nil || buffer.Format.SampleRate == 0 || buffer.Format.NumChannels == 0 {
		return nil, errors.New("wav payload is missing format information")
	}
	return buffer, nil
}

// PCMToBytes serializes samples as S16LE, the encoding the recognition
// endpoint expects for audio/l16 uploads.
func PCMToBytes(inputBuffer *audio.IntBuffer) []byte {
	byteData := make([]byte, 2*len(inputBuffer.Data))
	for i, value := range inputBuffer.Data {
		binary.LittleEndian.PutUint16(byteData[2*i:], uint16(int16(value)))
	}
	return byteData
}

func twoByteDataToIntSlice(audioData []byte) []int {
	intData := make([]int, len(audioData)/2)
	for i := 0; i+1 < len(audioData); i += 2 {
		value := int(int16(binary.LittleEndian.Uint16(audioData[i : i+2])))
		intData[i/2] = value
	}
	return intData
}
