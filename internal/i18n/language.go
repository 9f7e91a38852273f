// Package i18n provides the Greek and English message catalogs and the
// persisted language preference.
package i18n

import (
	"context"
	"strings"
	"time"

	"github.com/xolan/croplog/internal/apperr"
	"github.com/xolan/croplog/internal/kv"
)

// Language is a supported language tag.
type Language string

const (
	Greek   Language = "el"
	English Language = "en"

	// Default is used when nothing else selects a language.
	Default = Greek
)

// PreferenceKey is the kv key holding the chosen language.
const PreferenceKey = "language"

// Date layouts used for display in every language.
const (
	DateLayout     = "02/01/2006"
	DateTimeLayout = "02/01/2006 15:04"
)

// Supported lists the known languages in display order.
func Supported() []Language {
	return []Language{Greek, English}
}

// ParseLanguage accepts a language tag, case-insensitively.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case Greek:
		return Greek, nil
	case English:
		return English, nil
	default:
		return "", apperr.Validation("unsupported language %q (valid: el, en)", s)
	}
}

// Preference stores the user's language choice.
type Preference struct {
	kv kv.Store
}

func NewPreference(store kv.Store) *Preference {
	return &Preference{kv: store}
}

// Get returns the stored language. ok is false when none is stored or the
// stored value is not a known tag.
func (p *Preference) Get(ctx context.Context) (lang Language, ok bool, err error) {
	raw, found, err := p.kv.Get(ctx, PreferenceKey)
	if err != nil {
		return "", false, apperr.Storage("failed to read language preference", err)
	}
	if !found {
		return "", false, nil
	}
	lang, err = ParseLanguage(raw)
	if err != nil {
		return "", false, nil
	}
	return lang, true, nil
}

// Set stores lang as the preference.
func (p *Preference) Set(ctx context.Context, lang Language) error {
	if _, err := ParseLanguage(string(lang)); err != nil {
		return err
	}
	if err := p.kv.Set(ctx, PreferenceKey, string(lang)); err != nil {
		return apperr.Storage("failed to save language preference", err)
	}
	return nil
}

// Resolve picks the first usable language from an explicit flag, the stored
// preference and the configured language, in that order.
func Resolve(flag string, stored Language, configured string) Language {
	for _, candidate := range []string{flag, string(stored), configured} {
		if candidate == "" {
			continue
		}
		if lang, err := ParseLanguage(candidate); err == nil {
			return lang
		}
	}
	return Default
}

var monthNames = map[Language][12]string{
	Greek: {
		"Ιανουάριος", "Φεβρουάριος", "Μάρτιος", "Απρίλιος", "Μάιος", "Ιούνιος",
		"Ιούλιος", "Αύγουστος", "Σεπτέμβριος", "Οκτώβριος", "Νοέμβριος", "Δεκέμβριος",
	},
	English: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

var weekdayNames = map[Language][7]string{
	Greek:   {"Κυ", "Δε", "Τρ", "Τε", "Πε", "Πα", "Σα"},
	English: {"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
}

// MonthName returns the localized name of m.
func MonthName(lang Language, m time.Month) string {
	names, ok := monthNames[lang]
	if !ok {
		names = monthNames[Default]
	}
	return names[m-1]
}

// WeekdayShort returns the two-letter localized abbreviation of d.
func WeekdayShort(lang Language, d time.Weekday) string {
	names, ok := weekdayNames[lang]
	if !ok {
		names = weekdayNames[Default]
	}
	return names[d]
}
