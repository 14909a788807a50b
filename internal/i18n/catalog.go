package i18n

import "fmt"

// Catalog looks up report strings for one locale. The zero value is English.
type Catalog struct {
	locale Locale
}

// New returns the catalog of l.
func New(l Locale) Catalog {
	return Catalog{locale: l}
}

// Locale returns the catalog's locale.
func (c Catalog) Locale() Locale {
	return c.locale
}

// T returns the string stored under key. Keys without a translation fall
// back to English, unknown keys to the key itself.
func (c Catalog) T(key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if s := m[c.locale]; s != "" {
		return s
	}
	return m[EN]
}

// F formats the string stored under key with args.
func (c Catalog) F(key string, args ...any) string {
	return fmt.Sprintf(c.T(key), args...)
}
