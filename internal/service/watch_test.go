package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanGeneratesMissingDualSubtitles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movie.en.srt"), []byte(threeCueSRT), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "untagged.srt"), []byte(threeCueSRT), 0644))

	backend := &upperBackend{}
	cfg := testConfig()
	w := NewWatcher(cfg, New(cfg, backend), cron.New())

	require.NoError(t, w.Scan(context.Background(), dir))

	assert.FileExists(t, filepath.Join(dir, "movie.fr.srt"))
	assert.FileExists(t, filepath.Join(dir, "movie.en-fr.srt"))
	assert.Equal(t, 1, backend.calls)

	// untagged files are not sources and produce nothing
	assert.NoFileExists(t, filepath.Join(dir, "untagged.fr.srt"))
}

func TestScanSkipsAlreadyProcessedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movie.en.srt"), []byte(threeCueSRT), 0644))

	backend := &upperBackend{}
	cfg := testConfig()
	w := NewWatcher(cfg, New(cfg, backend), cron.New())

	require.NoError(t, w.Scan(context.Background(), dir))
	require.Equal(t, 1, backend.calls)

	// the dual file now exists, so a second scan is a no-op
	require.NoError(t, w.Scan(context.Background(), dir))
	assert.Equal(t, 1, backend.calls)
}

func TestScanSkipsTargetLanguageFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movie.fr.srt"), []byte(threeCueSRT), 0644))

	backend := &upperBackend{}
	cfg := testConfig()
	w := NewWatcher(cfg, New(cfg, backend), cron.New())

	require.NoError(t, w.Scan(context.Background(), dir))
	assert.Zero(t, backend.calls)
}

func TestScheduleRejectsBadCronExpression(t *testing.T) {
	cfg := testConfig()
	cfg.WatchCron = "not a cron expression"
	w := NewWatcher(cfg, New(cfg, &upperBackend{}), cron.New())

	err := w.Schedule(context.Background(), t.TempDir())
	assert.Error(t, err)
}
