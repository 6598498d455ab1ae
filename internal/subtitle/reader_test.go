package subtitle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:03,500
Hello there.

2
00:00:04,000 --> 00:00:06,000
How are you
doing today?

3
00:00:07,250 --> 00:00:09,000
Goodbye.
`

func writeTempSRT(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadParsesCues(t *testing.T) {
	path := writeTempSRT(t, "movie.en.srt", sampleSRT)

	track, err := NewReader().Read(path)
	require.NoError(t, err)
	require.Len(t, track.Cues, 3)
	assert.Equal(t, "SRT", track.Format)

	assert.Equal(t, 1*time.Second, track.Cues[0].Start)
	assert.Equal(t, 3500*time.Millisecond, track.Cues[0].End)
	assert.Equal(t, "Hello there.", track.Cues[0].Text)

	// multi-line cue text is joined with the intra-cue marker
	assert.Equal(t, `How are you\Ndoing today?`, track.Cues[1].Text)
	assert.Equal(t, "How are you\ndoing today?", track.Cues[1].PlainText())

	assert.Equal(t, "Goodbye.", track.Cues[2].Text)
}

func TestReadMissingTrailingBlankLine(t *testing.T) {
	content := "1\n00:00:01,000 --> 00:00:02,000\nLast cue without newline"
	path := writeTempSRT(t, "movie.en.srt", content)

	track, err := NewReader().Read(path)
	require.NoError(t, err)
	require.Len(t, track.Cues, 1)
	assert.Equal(t, "Last cue without newline", track.Cues[0].Text)
}

func TestReadRejectsNonSRT(t *testing.T) {
	_, err := NewReader().Read("movie.en.vtt")
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader().Read(filepath.Join(t.TempDir(), "missing.en.srt"))
	assert.Error(t, err)
}

func TestReadInvalidTimeLine(t *testing.T) {
	content := "1\nnot a time line at all, just text\nHello\n"
	path := writeTempSRT(t, "movie.en.srt", content)

	_, err := NewReader().Read(path)
	assert.Error(t, err)
}

func TestReadWriteRoundTrip(t *testing.T) {
	path := writeTempSRT(t, "movie.en.srt", sampleSRT)

	track, err := NewReader().Read(path)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.en.srt")
	require.NoError(t, NewWriter().Write(out, track))

	reread, err := NewReader().Read(out)
	require.NoError(t, err)
	require.Len(t, reread.Cues, len(track.Cues))
	for i := range track.Cues {
		assert.Equal(t, track.Cues[i].Start, reread.Cues[i].Start)
		assert.Equal(t, track.Cues[i].End, reread.Cues[i].End)
		assert.Equal(t, track.Cues[i].Text, reread.Cues[i].Text)
	}
}
