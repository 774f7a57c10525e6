package cli

import (
	"fmt"

	"golang.org/x/text/language"
)

// Flags holds the positional arguments of a run
type Flags struct {
	InputFile  string
	OutputFile string
	ConfigFile string
	Lang       string
}

// NewFlags creates a new, empty Flags instance
func NewFlags() *Flags {
	return &Flags{}
}

// SetArgs fills f from the four positional arguments and validates the
// language code.
func (f *Flags) SetArgs(args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("expected 4 arguments (input, output, config, lang), got %d", len(args))
	}

	lang, err := ValidateLanguage(args[3])
	if err != nil {
		return err
	}

	f.InputFile = args[0]
	f.OutputFile = args[1]
	f.ConfigFile = args[2]
	f.Lang = lang
	return nil
}

// ValidateLanguage checks that code is a well-formed BCP 47 tag. The code is
// returned as given, since configuration documents key on it verbatim.
func ValidateLanguage(code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("empty language code")
	}
	if _, err := language.Parse(code); err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return code, nil
}
