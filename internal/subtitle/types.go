package subtitle

import (
	"strings"
	"time"
)

// LineBreaker is the literal marker carried inside Cue.Text for a line
// break within a single cue. Keeping intra-cue breaks out of "\n" lets
// the rest of the pipeline use "\n\n" as a cue separator safely.
const LineBreaker = `\N`

// Reader is the interface for reading subtitle files
type Reader interface {
	Read(path string) (*Track, error)
}

// Writer is the interface for writing subtitle files
type Writer interface {
	Write(path string, track *Track) error
}

// Cue represents a single timed subtitle entry
type Cue struct {
	Index int           // subtitle index
	Start time.Duration // start time
	End   time.Duration // end time
	Text  string        // cue text, intra-cue breaks encoded as LineBreaker
}

// PlainText returns the display form of the cue text, with every
// LineBreaker marker turned into a newline.
func (c Cue) PlainText() string {
	return strings.ReplaceAll(c.Text, LineBreaker, "\n")
}

// SetPlainText stores display text, converting newlines to LineBreaker
// markers. Carriage returns are preserved: a "\r" ahead of a break
// survives serialization and forces an extra visual gap.
func (c *Cue) SetPlainText(text string) {
	c.Text = strings.ReplaceAll(text, "\n", LineBreaker)
}

// Track represents one subtitle file as an ordered sequence of cues.
// Language is the two-letter tag from the file name; it is empty for
// freshly synthesized tracks (translated or merged output).
type Track struct {
	Cues     []Cue
	Language string
	Format   string // e.g. SRT
}

// Texts returns the cue texts in order.
func (t *Track) Texts() []string {
	texts := make([]string, len(t.Cues))
	for i, cue := range t.Cues {
		texts[i] = cue.Text
	}
	return texts
}
