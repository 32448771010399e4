package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const fallbackLanguageKey = "en"

// LocalizedText is either a language-invariant string or a map of
// translations keyed by storage language key ("en", "id", "vi").
type LocalizedText struct {
	plain        string
	translations map[string]string
	invariant    bool
}

// Text builds a language-invariant value.
func Text(s string) LocalizedText {
	return LocalizedText{plain: s, invariant: true}
}

// Translations builds a value from storage-keyed translations.
func Translations(values map[string]string) LocalizedText {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return LocalizedText{translations: copied}
}

func (t LocalizedText) IsZero() bool {
	return !t.invariant && len(t.translations) == 0
}

// Resolve returns the text for lang. A missing translation falls back to
// English and then to the empty string; it is never an error.
func (t LocalizedText) Resolve(lang Language) string {
	if t.invariant {
		return t.plain
	}
	if len(t.translations) == 0 {
		return ""
	}
	if v, ok := t.translations[lang.storageKey()]; ok {
		return v
	}
	return t.translations[fallbackLanguageKey]
}

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*t = LocalizedText{}
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case trimmed[0] == '{':
		values := map[string]string{}
		if err := json.Unmarshal(trimmed, &values); err != nil {
			return fmt.Errorf("localized text: %w", err)
		}
		*t = LocalizedText{translations: values}
		return nil
	default:
		return fmt.Errorf("localized text: unexpected JSON %s", trimmed)
	}
}

func (t LocalizedText) MarshalJSON() ([]byte, error) {
	if t.invariant {
		return json.Marshal(t.plain)
	}
	if t.translations == nil {
		return []byte("null"), nil
	}
	return json.Marshal(t.translations)
}
