package pipeline

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OutputFilename is where the rendered report lands, always in the
// current working directory and always overwritten.
const OutputFilename = "transcription_output.txt"

// Placeholder texts for the two recoverable recognition outcomes.
const (
	AmbiguousAudioText = "Could not understand the audio."
	requestFailedFmt   = "Google API request failed: %v"
)

// Report is the one value object this tool produces: metadata plus the
// transcription (or its placeholder) for a single run.
type Report struct {
	FileName    string
	Duration    float64
	ProcessedAt time.Time
	Text        string
}

// Render produces the fixed human-readable layout, byte-exact:
//
//	TRANSCRIPTION REPORT
//	==================================================
//	File Name     : <path>
//	Duration      : <seconds> seconds
//	Processed At  : <YYYY-MM-DD HH:MM:SS>
//
//	Transcribed Text:
//	<text>
func (r Report) Render() string {
	var b strings.Builder
	b.WriteString("TRANSCRIPTION REPORT\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "File Name     : %s\n", r.FileName)
	fmt.Fprintf(&b, "Duration      : %s seconds\n", formatSeconds(r.Duration))
	fmt.Fprintf(&b, "Processed At  : %s\n\n", r.ProcessedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("Transcribed Text:\n")
	b.WriteString(r.Text + "\n")
	return b.String()
}

// formatSeconds prints a two-decimal rounded value with minimal digits but
// at least one decimal ("2.0", "2.35"). The unreadable-header fallback of
// zero prints as a plain "0".
func formatSeconds(seconds float64) string {
	if seconds == 0 {
		return "0"
	}
	s := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
