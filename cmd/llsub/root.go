package main

import (
	"github.com/spf13/cobra"

	"github.com/watkins-matt/llsub/internal/config"
	"github.com/watkins-matt/llsub/internal/langtag"
	"github.com/watkins-matt/llsub/internal/service"
	"github.com/watkins-matt/llsub/internal/translator"
	"github.com/watkins-matt/llsub/pkg/log"
)

func newRootCommand() *cobra.Command {
	var translateOnly bool
	var force bool

	rootCmd := &cobra.Command{
		Use:   "llsub <input_file> [target_language]",
		Short: "Creates bilingual (language learner) subtitles from an original SRT file",
		Long: "llsub translates an SRT subtitle file named <stem>.<lang>.srt and " +
			"interleaves the original and translated lines into a single dual-language " +
			"subtitle file for language learners.",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewFromEnv()
			if err != nil {
				return err
			}
			log.InitLogger(log.ParseLevel(cfg.LogLevel))

			target := cfg.TargetLanguage
			if len(args) == 2 {
				target = args[1]
			}
			if err := langtag.Validate(target); err != nil {
				return err
			}

			backend := translator.NewGoogleTranslator(cfg.Endpoint, cfg.Timeout())
			svc := service.New(*cfg, backend)

			_, err = svc.Generate(cmd.Context(), args[0], service.Options{
				TargetLanguage: target,
				TranslateOnly:  translateOnly,
				Force:          force,
			})
			if err != nil {
				log.Error("%v", err)
				return err
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVar(&translateOnly, "translate-only", false,
		"Only translate the subtitles without merging")
	rootCmd.Flags().BoolVarP(&force, "force", "f", false,
		"Force overwrite of existing dual language subtitles if they exist")

	rootCmd.AddCommand(newWatchCommand())

	return rootCmd
}
