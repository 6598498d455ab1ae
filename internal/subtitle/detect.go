package subtitle

import (
	"github.com/abadojack/whatlanggo"
)

// DetectLanguage guesses the dominant language of a track's text and
// returns its two-letter ISO 639-1 code, or "" when nothing can be
// detected. The filename tag stays authoritative; callers use this
// only to warn about a disagreement.
func DetectLanguage(track *Track) string {
	if track == nil || len(track.Cues) == 0 {
		return ""
	}

	langCounts := make(map[string]int)

	for _, cue := range track.Cues {
		lang := whatlanggo.DetectLang(cue.PlainText()).Iso6391()
		if lang == "" {
			continue
		}
		langCounts[lang]++
	}

	// Get top language
	var topLang string
	var topCount int
	for lang, count := range langCounts {
		if count > topCount {
			topLang = lang
			topCount = count
		}
	}

	return topLang
}
