package transliteration

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiBackend asks a Gemini model for the transliteration
type GeminiBackend struct {
	model  string
	client *genai.Client
}

// NewGeminiBackend creates a new Gemini backend. An empty model selects
// gemini-2.0-flash.
func NewGeminiBackend(ctx context.Context, apiKey, model string) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini backend: %w", ErrNoAPIKey)
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiBackend{model: model, client: client}, nil
}

// Name returns the backend name
func (b *GeminiBackend) Name() string {
	return "gemini"
}

// Transliterate renders text in the script of lang
func (b *GeminiBackend) Transliterate(ctx context.Context, text, lang string) (string, error) {
	temperature := float32(0.1)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 50,
	}

	resp, err := b.client.Models.GenerateContent(ctx, b.model, genai.Text(transliterationPrompt(text, lang)), config)
	if err != nil {
		return "", b.fail(text, lang, fmt.Errorf("Gemini API error: %w", err))
	}

	result := strings.TrimSpace(resp.Text())
	if result == "" {
		return "", b.fail(text, lang, ErrUnmappable)
	}
	return result, nil
}

func (b *GeminiBackend) fail(text, lang string, err error) error {
	return &TransliterationError{Backend: b.Name(), Text: text, Lang: lang, Err: err}
}
