package subtitle

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

// DefaultWriter is the default subtitle file writer
type DefaultWriter struct{}

// NewWriter creates a new subtitle file writer
func NewWriter() Writer {
	return &DefaultWriter{}
}

// Write writes a Track to the given path in SRT format. Cues are
// renumbered from 1 regardless of their stored indices. LineBreaker
// markers become plain newlines; a literal "\r" in the text survives,
// which is how merged cues encode the extra blank line between groups.
func (w *DefaultWriter) Write(path string, track *Track) error {
	if track == nil {
		return fmt.Errorf("subtitle data is empty")
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	for i, cue := range track.Cues {
		// write index
		fmt.Fprintf(writer, "%d\n", i+1)

		// write time
		start := formatDuration(cue.Start)
		end := formatDuration(cue.End)
		fmt.Fprintf(writer, "%s --> %s\n", start, end)

		// write text
		fmt.Fprintf(writer, "%s\n\n", cue.PlainText())
	}

	return nil
}

// formatDuration formats time.Duration to SRT time format
func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	milliseconds := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, milliseconds)
}
