package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/petrzlen/audio2text-golang/internal/utils"
	"github.com/petrzlen/audio2text-golang/pkg/audio_utils"
	"github.com/petrzlen/audio2text-golang/pkg/pipeline"
	"github.com/petrzlen/audio2text-golang/pkg/recognizer"
)

// rootCmd takes the audio file as an optional argument; without one it
// prompts on stdin like the original tool did.
var rootCmd = &cobra.Command{
	Use:   "audio2text [file]",
	Short: "Convert a .wav or .mp3 recording to text using the Google Web Speech API",
	Long: `Convert a .wav or .mp3 recording to text using the Google Web Speech API.

- mp3 input is first converted to a sibling .wav file
- the transcription report is printed and saved to ` + pipeline.OutputFilename,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		} else {
			var err error
			if path, err = promptForPath(); err != nil {
				return err
			}
		}

		rec := recognizer.NewGoogleWebSpeech(os.Getenv("GOOGLE_SPEECH_API_KEY"), os.Getenv("GOOGLE_SPEECH_LANGUAGE"))
		p := pipeline.New(afero.NewOsFs(), audio_utils.Mp3Decoder{}, rec)
		_, err := p.Run(context.Background(), path)
		return err
	},
}

func promptForPath() (string, error) {
	fmt.Print("Enter the full path to your .wav or .mp3 file: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("cannot read file path from stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func main() {
	utils.SetupZerolog()

	// Load the .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Msgf("Cannot load .env file")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
