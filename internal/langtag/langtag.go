// Package langtag resolves the language tag encoded in subtitle file names.
// The convention is <stem>.<lang>.srt where <lang> is exactly two lowercase
// letters, or <stem>.<src>-<tgt>.srt for dual-language output.
package langtag

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

var tagPattern = regexp.MustCompile(`\.([a-z]{2})\.srt$`)

// Extract returns the two-letter language tag encoded in path.
func Extract(path string) (string, error) {
	matches := tagPattern.FindStringSubmatch(path)
	if len(matches) != 2 {
		return "", fmt.Errorf("unable to extract language from filename: %s", path)
	}
	return matches[1], nil
}

// Replace returns path with the oldTag suffix swapped for newTag.
// newTag may be a single code ("fr") or a pair code ("en-fr").
func Replace(path, oldTag, newTag string) string {
	return strings.Replace(path,
		fmt.Sprintf(".%s.srt", oldTag),
		fmt.Sprintf(".%s.srt", newTag), 1)
}

// Pair builds the compound tag used to name dual-language files.
func Pair(source, target string) string {
	return source + "-" + target
}

// Validate reports whether code is a plausible two-letter language code.
func Validate(code string) error {
	if len(code) != 2 || code != strings.ToLower(code) {
		return fmt.Errorf("invalid language code %q: expected two lowercase letters", code)
	}
	if _, err := language.ParseBase(code); err != nil {
		return fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return nil
}
