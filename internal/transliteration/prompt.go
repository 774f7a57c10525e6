package transliteration

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageName returns the English name of lang, or lang itself when the
// code is not recognised.
func languageName(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return lang
}

func transliterationPrompt(text, lang string) string {
	return fmt.Sprintf("Transliterate the word '%s' into %s script as a native %s speaker would write it. "+
		"Respond with only the transliterated word, nothing else.", text, languageName(lang), languageName(lang))
}
