package langtag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "simple", path: "movie.en.srt", want: "en"},
		{name: "with directory", path: "/media/shows/movie.fr.srt", want: "fr"},
		{name: "dots in stem", path: "movie.2019.1080p.de.srt", want: "de"},
		{name: "no tag", path: "movie.srt", wantErr: true},
		{name: "uppercase tag", path: "movie.EN.srt", wantErr: true},
		{name: "three letter tag", path: "movie.eng.srt", wantErr: true},
		{name: "pair tag is not a source tag", path: "movie.en-fr.srt", wantErr: true},
		{name: "wrong extension", path: "movie.en.vtt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReplace(t *testing.T) {
	assert.Equal(t, "movie.fr.srt", Replace("movie.en.srt", "en", "fr"))
	assert.Equal(t, "movie.en-fr.srt", Replace("movie.en.srt", "en", "en-fr"))
	assert.Equal(t, "/dir/movie.ja.srt", Replace("/dir/movie.en.srt", "en", "ja"))
}

func TestReplaceRoundTrip(t *testing.T) {
	// resolve(resolve(path, "xx"), original) restores the original path
	original := "show.s01e02.en.srt"
	moved := Replace(original, "en", "xx")
	assert.Equal(t, original, Replace(moved, "xx", "en"))
}

func TestPair(t *testing.T) {
	assert.Equal(t, "en-fr", Pair("en", "fr"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("en"))
	assert.NoError(t, Validate("ja"))
	assert.Error(t, Validate("EN"))
	assert.Error(t, Validate("eng"))
	assert.Error(t, Validate(""))
	assert.Error(t, Validate("1a"))
}
