package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguageEnglish(t *testing.T) {
	track := &Track{Cues: []Cue{
		{Text: "The quick brown fox jumps over the lazy dog near the river bank."},
		{Text: "She was certain that nobody would ever find out about the garden."},
		{Text: "Everything we ever wanted was waiting for us on the other side."},
	}}

	assert.Equal(t, "en", DetectLanguage(track))
}

func TestDetectLanguageEmptyTrack(t *testing.T) {
	assert.Equal(t, "", DetectLanguage(&Track{}))
	assert.Equal(t, "", DetectLanguage(nil))
}
