// Package service orchestrates the bilingual subtitle pipeline: locate
// or generate the translated track, then merge it with the original.
package service

import (
	"context"
	"errors"
	"os"

	"github.com/watkins-matt/llsub/internal/batch"
	"github.com/watkins-matt/llsub/internal/bilingual"
	"github.com/watkins-matt/llsub/internal/config"
	"github.com/watkins-matt/llsub/internal/langtag"
	"github.com/watkins-matt/llsub/internal/subtitle"
	"github.com/watkins-matt/llsub/internal/translator"
	"github.com/watkins-matt/llsub/pkg/log"
)

// Options control a single generation run.
type Options struct {
	TargetLanguage string
	TranslateOnly  bool // skip the merge step
	Force          bool // overwrite an existing dual-language file
}

type Service struct {
	cfg     config.Config
	backend translator.Translator
	reader  subtitle.Reader
	writer  subtitle.Writer
}

func New(cfg config.Config, backend translator.Translator) *Service {
	return &Service{
		cfg:     cfg,
		backend: backend,
		reader:  subtitle.NewReader(),
		writer:  subtitle.NewWriter(),
	}
}

// Generate produces the translated and (unless Options.TranslateOnly)
// dual-language subtitle files next to inputPath, returning the path of
// the last file written. An existing translated file is treated as a
// cache and loaded instead of calling the backend.
func (s *Service) Generate(ctx context.Context, inputPath string, opts Options) (string, error) {
	sourceLang, err := langtag.Extract(inputPath)
	if err != nil {
		return "", WrapError(err, KindIdentity, "unable to extract language from filename").
			WithContext("file", inputPath)
	}

	if sourceLang == opts.TargetLanguage {
		return "", NewError(KindPrecondition,
			"target language is the same as the source language; no work to perform").
			WithContext("file", inputPath).
			WithContext("language", sourceLang)
	}

	original, err := s.reader.Read(inputPath)
	if err != nil {
		return "", WrapError(err, KindFileRead, "failed to read subtitle file").
			WithContext("file", inputPath)
	}
	original.Language = sourceLang

	if detected := subtitle.DetectLanguage(original); detected != "" && detected != sourceLang {
		log.Warn("Filename tag %q disagrees with detected language %q for %s; trusting the tag",
			sourceLang, detected, inputPath)
	}

	translatedPath := langtag.Replace(inputPath, sourceLang, opts.TargetLanguage)

	var translated *subtitle.Track
	if _, statErr := os.Stat(translatedPath); statErr == nil {
		log.Info("Translated subtitles already exist. Loading %s", translatedPath)
		translated, err = s.reader.Read(translatedPath)
		if err != nil {
			return "", WrapError(err, KindFileRead, "failed to read cached translated subtitles").
				WithContext("file", translatedPath)
		}
	} else {
		log.Info("Generating translated subtitles for %s (%s -> %s)",
			inputPath, sourceLang, opts.TargetLanguage)
		translated, err = s.translate(ctx, original, sourceLang, opts.TargetLanguage)
		if err != nil {
			return "", err
		}
		if err := s.writer.Write(translatedPath, translated); err != nil {
			return "", WrapError(err, KindFileWrite, "failed to write translated subtitles").
				WithContext("file", translatedPath)
		}
	}

	if opts.TranslateOnly {
		return translatedPath, nil
	}

	pairTag := langtag.Pair(sourceLang, opts.TargetLanguage)
	dualPath := langtag.Replace(inputPath, sourceLang, pairTag)

	if _, statErr := os.Stat(dualPath); statErr == nil {
		if !opts.Force {
			return "", NewError(KindPrecondition,
				"dual language subtitles already exist; no work to perform").
				WithContext("file", dualPath)
		}
		log.Info("Forcing overwrite of existing dual language subtitles %s", dualPath)
	}

	log.Info("Generating dual language subtitles for %s", inputPath)

	merged, err := bilingual.Merge(original, translated)
	if err != nil {
		if errors.Is(err, bilingual.ErrCueCountMismatch) {
			return "", WrapError(err, KindMergeCompatibility, "cannot merge subtitle tracks").
				WithContext("file", inputPath).
				WithContext("languages", pairTag)
		}
		return "", err
	}

	if err := s.writer.Write(dualPath, merged); err != nil {
		return "", WrapError(err, KindFileWrite, "failed to write dual language subtitles").
			WithContext("file", dualPath)
	}

	log.Info("Generated dual language subtitles: %s", dualPath)
	return dualPath, nil
}

// translate runs the block pipeline: batch cue texts under the backend
// size limit, translate sequentially, rebuild one cue per original.
func (s *Service) translate(ctx context.Context, original *subtitle.Track, sourceLang, targetLang string) (*subtitle.Track, error) {
	blocks := batch.Blocks(original.Texts(), s.cfg.MaxBlockChars)

	translatedBlocks, err := translator.TranslateBlocks(ctx, s.backend, blocks, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}

	return batch.Reconstruct(translatedBlocks, original)
}
