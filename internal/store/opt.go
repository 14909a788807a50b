package store

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var jsonNull = []byte("null")

// Opt is a leaf field of an artifact that may be missing from the document.
// A null value or a value of the wrong JSON type leaves it unset instead of
// failing the whole artifact.
type Opt[T any] struct {
	v   T
	set bool
}

// Some returns a set Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, set: true}
}

// Get returns the value and whether it was present.
func (o Opt[T]) Get() (T, bool) {
	return o.v, o.set
}

// Or returns the value, or def when the field was absent.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.v
	}
	return def
}

// Set reports whether the field was present.
func (o Opt[T]) Set() bool {
	return o.set
}

func (o *Opt[T]) UnmarshalJSON(b []byte) error {
	*o = Opt[T]{}
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	*o = Opt[T]{v: v, set: true}
	return nil
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return jsonNull, nil
	}
	return json.Marshal(o.v)
}

// CatInt is a numeric column of a _cat API listing. The diagnostics tool
// writes these as digit strings; plain JSON numbers are accepted as well.
// Empty strings and anything that is not a non-negative integer stay unset.
type CatInt struct {
	Opt[int64]
}

func (c *CatInt) UnmarshalJSON(b []byte) error {
	c.Opt = Opt[int64]{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	var s string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
	} else {
		s = string(b)
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r < '0' || r > '9' }) {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	c.Opt = Some(n)
	return nil
}

// FlexString accepts either a bare JSON string or an object carrying the
// string under "value", as manifests from different diagnostics releases do.
type FlexString struct {
	Opt[string]
}

func (f *FlexString) UnmarshalJSON(b []byte) error {
	f.Opt = Opt[string]{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, jsonNull) {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			f.Opt = Some(s)
		}
	case '{':
		var obj struct {
			Value Opt[string] `json:"value"`
		}
		if err := json.Unmarshal(b, &obj); err == nil {
			f.Opt = obj.Value
		}
	default:
		// numbers and booleans are rendered as written
		f.Opt = Some(string(b))
	}
	return nil
}
