package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Settings is a settings object as Elasticsearch returns it: flat dotted keys,
// nested objects, or a mix of both.
type Settings map[string]any

// Setting is one flattened key/value pair.
type Setting struct {
	Key   string
	Value string
}

// Lookup resolves a dotted key. A flat key wins over the nested path when a
// document carries both.
func (s Settings) Lookup(key string) (string, bool) {
	if len(s) == 0 {
		return "", false
	}
	if v, ok := s[key]; ok {
		return settingString(v), true
	}
	v, ok := lookupNested(map[string]any(s), key)
	if !ok {
		return "", false
	}
	return settingString(v), true
}

// Has reports whether any key equals prefix or lives below it.
func (s Settings) Has(prefix string) bool {
	for _, kv := range s.Flat() {
		if kv.Key == prefix || strings.HasPrefix(kv.Key, prefix+".") {
			return true
		}
	}
	return false
}

// Flat returns every leaf as a dotted key, sorted by key.
func (s Settings) Flat() []Setting {
	flat := make(map[string]any)
	flattenSettings("", map[string]any(s), flat)
	out := make([]Setting, 0, len(flat))
	for k, v := range flat {
		out = append(out, Setting{Key: k, Value: settingString(v)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Lookup resolves key with Elasticsearch precedence: transient, then
// persistent, then defaults.
func (c *ClusterSettings) Lookup(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	for _, scope := range []Settings{c.Transient, c.Persistent, c.Defaults} {
		if v, ok := scope.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// lookupNested walks dotted key segments through nested maps. Intermediate
// maps may themselves hold partially flattened keys ("routing.rebalance").
func lookupNested(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}
	parts := strings.Split(key, ".")
	for i := 1; i < len(parts); i++ {
		head := strings.Join(parts[:i], ".")
		sub, ok := m[head].(map[string]any)
		if !ok {
			continue
		}
		if v, ok := lookupNested(sub, strings.Join(parts[i:], ".")); ok {
			return v, true
		}
	}
	return nil, false
}

// flattenSettings is the inverse of nesting: {"a": {"b": 1}} becomes {"a.b": 1}.
// A flat key that collides with a nested path keeps the flat value.
func flattenSettings(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flattenSettings(key, sub, out)
			continue
		}
		if prefix == "" {
			out[key] = v
		} else if _, exists := out[key]; !exists {
			out[key] = v
		}
	}
}

func settingString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool, float64, int, int64:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}
