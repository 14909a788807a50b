// Package i18n holds the report languages and the string catalog analyzers
// render headings and labels from.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects the report language.
type Locale int

const (
	EN Locale = iota
	ZH
)

func (l Locale) String() string {
	switch l {
	case ZH:
		return "zh"
	default:
		return "en"
	}
}

// Tag returns the BCP 47 tag of the locale.
func (l Locale) Tag() language.Tag {
	if l == ZH {
		return language.Chinese
	}
	return language.English
}

// Parse maps a language tag such as "en", "zh-CN" or "zh_TW" to a Locale.
// Every Chinese variant maps to ZH and every other valid tag to EN. The
// empty string is EN.
func Parse(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EN, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return EN, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	if base, _ := tag.Base(); base.String() == "zh" {
		return ZH, nil
	}
	return EN, nil
}
