// Package bilingual merges an original subtitle track with its
// translation into a single language-learner track, interleaving
// original and translated lines cue by cue.
package bilingual

import (
	"errors"
	"fmt"
	"strings"

	"github.com/watkins-matt/llsub/internal/subtitle"
)

// ErrCueCountMismatch reports merge-incompatible tracks. The two tracks
// must have the same number of cues; anything else means the translated
// file does not correspond to the original and merging would pair
// unrelated cues.
var ErrCueCountMismatch = errors.New("subtitle tracks have a different number of cues; cannot merge")

// Merge combines original and translated into a new track. Each merged
// cue keeps the original cue's timing; its text follows a line-count
// aware policy: when the intra-cue line counts match, original and
// parenthesized translated lines are interleaved pairwise, otherwise
// all original lines are listed first and all translated lines after.
func Merge(original, translated *subtitle.Track) (*subtitle.Track, error) {
	if len(original.Cues) != len(translated.Cues) {
		return nil, fmt.Errorf("%w: original has %d, translated has %d",
			ErrCueCountMismatch, len(original.Cues), len(translated.Cues))
	}

	merged := &subtitle.Track{Format: original.Format}

	for i, originalCue := range original.Cues {
		translatedCue := translated.Cues[i]

		cue := subtitle.Cue{
			Index: originalCue.Index,
			Start: originalCue.Start,
			End:   originalCue.End,
		}
		cue.SetPlainText(mergeCueText(originalCue.Text, translatedCue.Text))

		merged.Cues = append(merged.Cues, cue)
	}

	return merged, nil
}

// mergeCueText builds the interleaved display text for one cue pair.
// The returned text uses "\n" for a normal display line break and
// "\r\n\r\n" where the rendered subtitle needs an extra blank line.
func mergeCueText(originalText, translatedText string) string {
	originalLines := strings.Split(originalText, subtitle.LineBreaker)

	// drop empty or whitespace-only translated lines
	var translatedLines []string
	for _, line := range strings.Split(translatedText, subtitle.LineBreaker) {
		if strings.TrimSpace(line) != "" {
			translatedLines = append(translatedLines, line)
		}
	}

	var text strings.Builder

	if len(originalLines) == len(translatedLines) {
		// matched line counts: interleave pairwise
		for i, originalLine := range originalLines {
			text.WriteString(fmt.Sprintf("%s\n(%s)\r\n\r\n", originalLine, translatedLines[i]))
		}
		return text.String()
	}

	// mismatched line counts: original lines first, then every
	// translated line parenthesized
	text.WriteString(strings.Join(originalLines, "\n"))
	text.WriteString("\r\n\r\n")

	parenthesized := make([]string, len(translatedLines))
	for i, line := range translatedLines {
		parenthesized[i] = fmt.Sprintf("(%s)", line)
	}
	text.WriteString(strings.Join(parenthesized, "\n"))

	return text.String()
}
