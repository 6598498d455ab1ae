package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGoogleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator translates text through the free Google Translate
// web endpoint. Requests are capped at 5000 characters by the backend,
// which is why callers batch cue texts into bounded blocks.
type GoogleTranslator struct {
	endpoint   string
	httpClient *http.Client
}

// NewGoogleTranslator creates a client against endpoint. An empty
// endpoint selects the public Google Translate endpoint.
func NewGoogleTranslator(endpoint string, timeout time.Duration) *GoogleTranslator {
	if endpoint == "" {
		endpoint = defaultGoogleEndpoint
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GoogleTranslator{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Translate submits one text for sourceLang -> targetLang conversion.
func (g *GoogleTranslator) Translate(ctx context.Context, sourceLang, targetLang, text string) (string, error) {
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("dt", "t")
	query.Set("ie", "UTF-8")
	query.Set("oe", "UTF-8")
	query.Set("sl", sourceLang)
	query.Set("tl", targetLang)

	form := url.Values{}
	form.Set("q", text)

	httpReq, err := http.NewRequestWithContext(ctx, "POST",
		g.endpoint+"?"+query.Encode(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate error (status %d): %s", resp.StatusCode, string(body))
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translated text from the endpoint's
// nested-array payload: the first element is a list of sentence
// entries, each of which carries the translated chunk at position 0.
func parseGoogleResponse(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	sentences, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected translate response shape")
	}

	var translated strings.Builder
	for _, entry := range sentences {
		fields, ok := entry.([]any)
		if !ok || len(fields) == 0 {
			continue
		}
		if chunk, ok := fields[0].(string); ok {
			translated.WriteString(chunk)
		}
	}

	return translated.String(), nil
}
