package i18n

import "fmt"

// Translator looks up messages for one language.
type Translator struct {
	lang Language
}

// New returns a Translator for lang. Unknown tags behave like Default.
func New(lang Language) *Translator {
	if _, ok := catalog[lang]; !ok {
		lang = Default
	}
	return &Translator{lang: lang}
}

// Lang returns the language the translator serves.
func (t *Translator) Lang() Language {
	return t.lang
}

// T returns the message for key, formatted with args when given. A key
// missing from the language falls back to Default, then to the key itself.
func (t *Translator) T(key string, args ...any) string {
	msg, ok := catalog[t.lang][key]
	if !ok {
		msg, ok = catalog[Default][key]
	}
	if !ok {
		msg = key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Has reports whether key exists in the translator's own language.
func (t *Translator) Has(key string) bool {
	_, ok := catalog[t.lang][key]
	return ok
}
