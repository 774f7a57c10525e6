package transliteration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	inputToolsURL     = "https://inputtools.google.com/request"
	inputToolsTimeout = 10 * time.Second
)

// InputToolsBackend queries the Google Input Tools transliteration endpoint
type InputToolsBackend struct {
	endpoint   string
	httpClient *http.Client
}

// InputToolsError reports an unexpected status from the endpoint
type InputToolsError struct {
	Code    int
	Message string
}

func (e *InputToolsError) Error() string {
	return fmt.Sprintf("input tools returned status %d: %s", e.Code, e.Message)
}

// NewInputToolsBackend creates a client for endpoint. An empty endpoint
// selects the public Google service.
func NewInputToolsBackend(endpoint string, timeout time.Duration) *InputToolsBackend {
	if endpoint == "" {
		endpoint = inputToolsURL
	}
	if timeout <= 0 {
		timeout = inputToolsTimeout
	}
	return &InputToolsBackend{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the backend name
func (b *InputToolsBackend) Name() string {
	return "inputtools"
}

// Transliterate returns the top candidate for text in lang
func (b *InputToolsBackend) Transliterate(ctx context.Context, text, lang string) (string, error) {
	params := url.Values{}
	params.Set("text", text)
	params.Set("itc", lang+"-t-i0-und")
	params.Set("num", "1")
	params.Set("cp", "0")
	params.Set("cs", "1")
	params.Set("ie", "utf-8")
	params.Set("oe", "utf-8")
	params.Set("app", "demo")

	reqURL := b.endpoint + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", b.fail(text, lang, fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", b.fail(text, lang, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", b.fail(text, lang, &InputToolsError{Code: resp.StatusCode, Message: string(body)})
	}

	candidate, err := decodeInputTools(resp.Body)
	if err != nil {
		return "", b.fail(text, lang, err)
	}
	return candidate, nil
}

func (b *InputToolsBackend) fail(text, lang string, err error) error {
	return &TransliterationError{Backend: b.Name(), Text: text, Lang: lang, Err: err}
}

// decodeInputTools extracts the first candidate from a response of the form
// ["SUCCESS",[["source",["candidate",...],...]]]
func decodeInputTools(r io.Reader) (string, error) {
	var envelope []json.RawMessage
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(envelope) < 2 {
		return "", fmt.Errorf("malformed response")
	}

	var status string
	if err := json.Unmarshal(envelope[0], &status); err != nil {
		return "", fmt.Errorf("malformed status: %w", err)
	}
	if status != "SUCCESS" {
		return "", fmt.Errorf("request status %s", status)
	}

	var entries [][]json.RawMessage
	if err := json.Unmarshal(envelope[1], &entries); err != nil {
		return "", fmt.Errorf("malformed result: %w", err)
	}
	if len(entries) == 0 || len(entries[0]) < 2 {
		return "", ErrUnmappable
	}

	var candidates []string
	if err := json.Unmarshal(entries[0][1], &candidates); err != nil {
		return "", fmt.Errorf("malformed candidates: %w", err)
	}
	if len(candidates) == 0 || candidates[0] == "" {
		return "", ErrUnmappable
	}
	return candidates[0], nil
}
