// Package translate wraps the external translation service. The service is
// a black box behind the Translator interface; retry and backoff policy is
// deliberately out of scope.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Translator converts text between two locales.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// HTTPTranslator calls a JSON translation endpoint.
type HTTPTranslator struct {
	Endpoint string
	APIKey   string
	Client   *http.Client
}

// NewHTTPTranslator creates a translator for the configured endpoint.
func NewHTTPTranslator(endpoint, apiKey string) *HTTPTranslator {
	return &HTTPTranslator{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translateResponse struct {
	Translation string `json:"translation"`
}

// Translate sends one text to the translation endpoint.
func (t *HTTPTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if t.Endpoint == "" {
		return "", fmt.Errorf("no translation endpoint configured")
	}

	body, err := json.Marshal(translateRequest{Text: text, Source: from, Target: to})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if t.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.APIKey)
	}

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned %s", resp.Status)
	}

	var out translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Translation, nil
}
