package gramkit

import (
	"context"
	"sort"
)

// Mash wraps a parsed JSON mapping so fields are reachable both by plain key
// lookup (Get/Lookup) and through typed accessors (String, Int, Sub, ...)
// that chain safely through missing keys. Nested mappings are wrapped
// recursively; all accessors are nil-safe so lookups on absent branches
// return zero values rather than panicking.
type Mash struct {
	data map[string]any
}

// NewMash wraps a mapping, recursively converting nested mappings and the
// elements of nested sequences.
func NewMash(m map[string]any) *Mash {
	if m == nil {
		return &Mash{data: map[string]any{}}
	}
	converted := make(map[string]any, len(m))
	for k, v := range m {
		converted[k] = mashify(v)
	}
	return &Mash{data: converted}
}

// mashify recursively converts mappings to *Mash and sequences element-wise;
// scalars pass through unchanged.
func mashify(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return NewMash(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = mashify(item)
		}
		return out
	default:
		return v
	}
}

// Get returns the value stored under key, already converted, or nil.
func (m *Mash) Get(key string) any {
	if m == nil {
		return nil
	}
	return m.data[key]
}

// Lookup returns the value under key and whether the key exists.
func (m *Mash) Lookup(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.data[key]
	return v, ok
}

// Has reports whether key exists.
func (m *Mash) Has(key string) bool {
	_, ok := m.Lookup(key)
	return ok
}

// Sub returns the nested mapping under key, or nil when absent or not a
// mapping. Safe to chain: m.Sub("a").Sub("b").String("c").
func (m *Mash) Sub(key string) *Mash {
	if sub, ok := m.Get(key).(*Mash); ok {
		return sub
	}
	return nil
}

// Slice returns the sequence under key, or nil.
func (m *Mash) Slice(key string) []any {
	if s, ok := m.Get(key).([]any); ok {
		return s
	}
	return nil
}

// String returns the string under key, or "".
func (m *Mash) String(key string) string {
	if s, ok := m.Get(key).(string); ok {
		return s
	}
	return ""
}

// Int returns the numeric value under key truncated to int64, or 0. JSON
// numbers decode as float64; integral values survive the conversion intact.
func (m *Mash) Int(key string) int64 {
	switch n := m.Get(key).(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}

// Float returns the numeric value under key, or 0.
func (m *Mash) Float(key string) float64 {
	switch n := m.Get(key).(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

// Bool returns the boolean under key, or false.
func (m *Mash) Bool(key string) bool {
	if b, ok := m.Get(key).(bool); ok {
		return b
	}
	return false
}

// Keys returns the mapping's keys in sorted order.
func (m *Mash) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of keys.
func (m *Mash) Len() int {
	if m == nil {
		return 0
	}
	return len(m.data)
}

// Map returns the mapping as plain Go values, unwrapping nested Mash values
// recursively.
func (m *Mash) Map() map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m.data))
	for k, v := range m.data {
		out[k] = unmashify(v)
	}
	return out
}

func unmashify(v any) any {
	switch val := v.(type) {
	case *Mash:
		return val.Map()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = unmashify(item)
		}
		return out
	default:
		return v
	}
}

// mashifyMiddleware converts the parsed body into dynamically accessible
// wrappers after the JSON stage has produced structured data. Scalar and
// absent bodies pass through unchanged.
func mashifyMiddleware() Middleware {
	return func(ctx context.Context, req *Request, next Handler) (*Response, error) {
		resp, err := next.Handle(ctx, req)
		if err != nil || resp == nil {
			return resp, err
		}
		switch body := resp.Body.(type) {
		case map[string]any:
			resp.Body = NewMash(body)
		case []any:
			resp.Body = mashify(body)
		}
		return resp, nil
	}
}
