package translator

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/watkins-matt/llsub/internal/subtitle"
)

// breakerPlaceholder stands in for the intra-cue line break marker
// while a block is in the backend's hands. Translation engines mangle
// the raw marker; a bare "--" passes through unscathed.
const breakerPlaceholder = "--"

// TranslateBlocks submits blocks to the backend strictly in order and
// returns the translated blocks in the same order. Any backend failure
// aborts the whole operation; there is no retry and no partial result.
func TranslateBlocks(ctx context.Context, t Translator, blocks []string, sourceLang, targetLang string) ([]string, error) {
	bar := progressbar.NewOptions(len(blocks),
		progressbar.OptionSetDescription("Translating subtitles"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	translated := make([]string, 0, len(blocks))

	for i, block := range blocks {
		masked := strings.ReplaceAll(block, subtitle.LineBreaker, breakerPlaceholder)

		result, err := t.Translate(ctx, sourceLang, targetLang, masked)
		if err != nil {
			return nil, fmt.Errorf("translating block %d/%d: %w", i+1, len(blocks), err)
		}

		translated = append(translated, strings.ReplaceAll(result, breakerPlaceholder, subtitle.LineBreaker))
		_ = bar.Add(1)
	}

	return translated, nil
}
