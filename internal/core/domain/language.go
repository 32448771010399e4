package domain

import "fmt"

// Language is an external language code of a generated questions file.
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageIndonesian Language = "id"
	LanguageVietnamese Language = "vt"
)

// SupportedLanguages lists the generated languages in processing order.
var SupportedLanguages = []Language{LanguageEnglish, LanguageIndonesian, LanguageVietnamese}

var languageNames = map[Language]string{
	LanguageEnglish:    "English",
	LanguageIndonesian: "Indonesian",
	LanguageVietnamese: "Vietnamese",
}

// Name returns the English display name of the language.
func (l Language) Name() (string, error) {
	name, ok := languageNames[l]
	if !ok {
		return "", WrapError(ErrUnsupportedLanguage, "language name", fmt.Errorf("code %q", string(l)))
	}
	return name, nil
}

// storageKey maps an external code to the key used inside localized text
// maps. Vietnamese is stored as "vi" but published as "vt".
func (l Language) storageKey() string {
	if l == LanguageVietnamese {
		return "vi"
	}
	return string(l)
}

// FileName is the name of the generated questions file for the language.
func (l Language) FileName() string {
	return "questions_" + string(l) + ".json"
}
