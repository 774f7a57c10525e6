package transliteration

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIBackend asks a chat model for the transliteration
type OpenAIBackend struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIBackend creates a new OpenAI backend. An empty model selects
// gpt-4o-mini.
func NewOpenAIBackend(apiKey, model string) *OpenAIBackend {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIBackend{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(apiKey),
	}
}

// Name returns the backend name
func (b *OpenAIBackend) Name() string {
	return "openai"
}

// Transliterate renders text in the script of lang
func (b *OpenAIBackend) Transliterate(ctx context.Context, text, lang string) (string, error) {
	if b.apiKey == "" {
		return "", b.fail(text, lang, ErrNoAPIKey)
	}

	req := openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: transliterationPrompt(text, lang),
			},
		},
		MaxTokens:   50,
		Temperature: 0.1,
	}

	resp, err := b.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", b.fail(text, lang, fmt.Errorf("OpenAI API error: %w", err))
	}

	if len(resp.Choices) == 0 {
		return "", b.fail(text, lang, ErrUnmappable)
	}

	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	if result == "" {
		return "", b.fail(text, lang, ErrUnmappable)
	}
	return result, nil
}

func (b *OpenAIBackend) fail(text, lang string, err error) error {
	return &TransliterationError{Backend: b.Name(), Text: text, Lang: lang, Err: err}
}
