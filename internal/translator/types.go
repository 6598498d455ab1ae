package translator

import "context"

// Translator is the boundary to a remote text-translation backend.
// Requests carry two-letter language codes and plain text; the backend
// enforces a maximum request size, which callers respect by batching.
type Translator interface {
	Translate(ctx context.Context, sourceLang, targetLang, text string) (string, error)
}
