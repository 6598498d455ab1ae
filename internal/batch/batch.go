// Package batch partitions subtitle cue texts into bounded text blocks
// for a translation backend with a hard character limit, and rebuilds
// per-cue texts from the translated block stream.
package batch

import (
	"fmt"
	"strings"

	"github.com/watkins-matt/llsub/internal/subtitle"
)

// Separator terminates every cue text inside a block, which is what
// makes block boundaries recoverable after translation.
const Separator = "\n\n"

// Blocks groups texts into the minimum number of blocks such that no
// block reaches maxChars before its last cue is added. The policy is
// greedy accumulate-then-flush: a cue that would push the running block
// to maxChars or beyond starts a new block instead. A single cue longer
// than maxChars is emitted in its own block regardless of the overage.
func Blocks(texts []string, maxChars int) []string {
	var blocks []string
	var current strings.Builder

	for _, text := range texts {
		if current.Len()+len(text) >= maxChars && current.Len() > 0 {
			blocks = append(blocks, current.String())
			current.Reset()
		}
		current.WriteString(text)
		current.WriteString(Separator)
	}

	if current.Len() > 0 {
		blocks = append(blocks, current.String())
	}

	return blocks
}

// Reconstruct splits translated blocks back into one cue per original
// cue, carrying over the original timestamps. The segment count must
// match the original cue count, which holds as long as the translation
// backend preserved the separators. Each block is trimmed before
// joining: blocks end with a trailing Separator, and backends trim it
// inconsistently.
func Reconstruct(blocks []string, original *subtitle.Track) (*subtitle.Track, error) {
	trimmed := make([]string, len(blocks))
	for i, block := range blocks {
		trimmed[i] = strings.TrimSpace(block)
	}
	joined := strings.TrimSpace(strings.Join(trimmed, Separator))

	var segments []string
	if joined != "" {
		segments = strings.Split(joined, Separator)
	}

	if len(segments) != len(original.Cues) {
		return nil, fmt.Errorf(
			"translated segment count %d does not match original cue count %d",
			len(segments), len(original.Cues))
	}

	cues := make([]subtitle.Cue, len(original.Cues))
	for i, cue := range original.Cues {
		cues[i] = subtitle.Cue{
			Index: cue.Index,
			Start: cue.Start,
			End:   cue.End,
			Text:  strings.TrimSpace(segments[i]),
		}
	}

	return &subtitle.Track{Cues: cues, Format: original.Format}, nil
}
