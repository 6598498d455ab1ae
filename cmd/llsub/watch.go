package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/watkins-matt/llsub/internal/config"
	"github.com/watkins-matt/llsub/internal/service"
	"github.com/watkins-matt/llsub/internal/translator"
	"github.com/watkins-matt/llsub/pkg/log"
)

func newWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Periodically scan a directory and generate bilingual subtitles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewFromEnv()
			if err != nil {
				return err
			}

			level := log.ParseLevel(cfg.LogLevel)
			if cfg.LogFile != "" {
				fileLogger, err := log.NewFileLogger(cfg.LogFile, level)
				if err != nil {
					return err
				}
				defer fileLogger.Close()
				log.SetGlobal(fileLogger.Logger)
			} else {
				log.InitLogger(level)
			}

			dir := args[0]
			if info, err := os.Stat(dir); err != nil || !info.IsDir() {
				return fmt.Errorf("not a directory: %s", dir)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			backend := translator.NewGoogleTranslator(cfg.Endpoint, cfg.Timeout())
			c := cron.New()
			watcher := service.NewWatcher(*cfg, service.New(*cfg, backend), c)

			if err := watcher.Schedule(ctx, dir); err != nil {
				return err
			}

			// run one scan immediately, then hand off to the schedule
			if err := watcher.Scan(ctx, dir); err != nil {
				log.Error("Initial scan failed: %v", err)
			}

			c.Start()
			<-ctx.Done()
			<-c.Stop().Done()
			return nil
		},
	}
}
