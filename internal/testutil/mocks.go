package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/textprep/internal/numwords"
	"codeberg.org/snonux/textprep/internal/transliteration"
)

// MockTransliterator answers from a fixed table. Tokens missing from the
// table fail with ErrUnmappable.
type MockTransliterator struct {
	Transliterations map[string]string
	Errors           map[string]error

	mu    sync.Mutex
	Calls []string
}

// Transliterate mocks a transliteration backend
func (m *MockTransliterator) Transliterate(ctx context.Context, text, lang string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, fmt.Sprintf("Transliterate: %s (%s)", text, lang))
	m.mu.Unlock()

	if err, ok := m.Errors[text]; ok {
		return "", &transliteration.TransliterationError{Backend: m.Name(), Text: text, Lang: lang, Err: err}
	}
	if out, ok := m.Transliterations[text]; ok {
		return out, nil
	}
	return "", &transliteration.TransliterationError{Backend: m.Name(), Text: text, Lang: lang, Err: transliteration.ErrUnmappable}
}

// Name returns the backend name
func (m *MockTransliterator) Name() string {
	return "mock"
}

// MockSpeller delegates to the real converter unless SpellErr is set
type MockSpeller struct {
	SpellErr error
	Calls    []string

	converter *numwords.Converter
}

// NewMockSpeller creates a speller backed by numwords.New
func NewMockSpeller() *MockSpeller {
	return &MockSpeller{converter: numwords.New()}
}

// Spell mocks spelling a number
func (m *MockSpeller) Spell(n numwords.Number, lang string) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Spell: %s (%s)", n, lang))
	if m.SpellErr != nil {
		return "", &numwords.ConversionError{Lang: lang, Text: n.String(), Err: m.SpellErr}
	}
	return m.converter.Spell(n, lang)
}

// Parse mocks reading a written-out number
func (m *MockSpeller) Parse(text, lang string) (numwords.Number, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("Parse: %s (%s)", text, lang))
	return m.converter.Parse(text, lang)
}

// Languages returns the converter languages
func (m *MockSpeller) Languages() []string {
	return m.converter.Languages()
}
