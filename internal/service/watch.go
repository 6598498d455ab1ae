package service

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"github.com/watkins-matt/llsub/internal/config"
	"github.com/watkins-matt/llsub/internal/langtag"
	"github.com/watkins-matt/llsub/pkg/log"
)

// Watcher periodically scans a directory for source subtitle files that
// still lack a dual-language counterpart and generates them.
type Watcher struct {
	cfg  config.Config
	svc  *Service
	cron *cron.Cron
}

func NewWatcher(cfg config.Config, svc *Service, c *cron.Cron) *Watcher {
	return &Watcher{
		cfg:  cfg,
		svc:  svc,
		cron: c,
	}
}

var scanGroup singleflight.Group

// Schedule registers the periodic scan of dir. Overlapping ticks are
// collapsed: a scan still running when the next one fires wins.
func (w *Watcher) Schedule(ctx context.Context, dir string) error {
	log.Info("Watching %s (cron %q, target language %s)",
		dir, w.cfg.WatchCron, w.cfg.TargetLanguage)

	runFunc := func() {
		_, _, _ = scanGroup.Do("scan", func() (any, error) {
			if err := w.Scan(ctx, dir); err != nil {
				log.Error("Failed to scan %s: %v", dir, err)
			}
			return nil, nil
		})
	}

	_, err := w.cron.AddFunc(w.cfg.WatchCron, runFunc)
	return err
}

// Scan walks dir once and generates bilingual subtitles for every
// eligible source file. Per-file failures are logged and skipped so one
// bad file does not stall the rest of the library.
func (w *Watcher) Scan(ctx context.Context, dir string) error {
	var candidates []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".srt") {
			return nil
		}

		lang, tagErr := langtag.Extract(path)
		if tagErr != nil {
			// untagged or dual-language file, not a source
			return nil
		}
		if lang == w.cfg.TargetLanguage {
			return nil
		}

		dualPath := langtag.Replace(path, lang, langtag.Pair(lang, w.cfg.TargetLanguage))
		if _, statErr := os.Stat(dualPath); statErr == nil {
			return nil
		}

		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("Found %d subtitle file(s) to process in %s", len(candidates), dir)

	for _, path := range candidates {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := w.svc.Generate(ctx, path, Options{
			TargetLanguage: w.cfg.TargetLanguage,
		}); err != nil {
			log.Error("Failed to process %s: %v", path, err)
		}
	}

	return nil
}
