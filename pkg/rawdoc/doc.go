package rawdoc

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Doc is an untyped document as returned by the document store. No two
// documents are guaranteed to share a schema; the same logical field may
// appear under several historical key names.
type Doc map[string]interface{}

// Record pairs a document with its store-assigned id.
type Record struct {
	ID   string
	Data Doc
}

// Lookup resolves a key inside d. Dotted paths descend into nested
// documents ("package.name"). The boolean is false when any segment is
// missing, nil, or not a nested document.
func (d Doc) Lookup(path string) (interface{}, bool) {
	if d == nil {
		return nil, false
	}
	if !strings.Contains(path, ".") {
		v, ok := d[path]
		if !ok || v == nil {
			return nil, false
		}
		return v, true
	}

	var cur interface{} = d
	for _, seg := range strings.Split(path, ".") {
		nested, ok := AsDoc(cur)
		if !ok {
			return nil, false
		}
		cur, ok = nested[seg]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// First returns the value of the first key in keys that resolves to a
// non-nil value. Keys may be dotted paths.
func (d Doc) First(keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := d.Lookup(k); ok {
			return v, true
		}
	}
	return nil, false
}

// AsDoc converts the nested-document shapes the mongo driver may hand back
// into a Doc. bson.M and bson.D are distinct named types and are not caught
// by a plain map type switch.
func AsDoc(v interface{}) (Doc, bool) {
	switch m := v.(type) {
	case Doc:
		return m, true
	case map[string]interface{}:
		return Doc(m), true
	case bson.M:
		return Doc(m), true
	case bson.D:
		out := make(Doc, len(m))
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	}
	return nil, false
}

// Text coerces v to a string. Numeric values are formatted; unsupported
// shapes report false.
func Text(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case int32:
		return strconv.FormatInt(int64(s), 10), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32), true
	}
	return "", false
}

// Number coerces v to a float64. Numeric strings are parsed; unsupported
// shapes report false.
func Number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// StatusText extracts a status stored either as a plain string or as a
// nested document carrying a "status" field. Unknown shapes yield def.
func StatusText(v interface{}, def string) string {
	if v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return def
		}
		return s
	}
	if nested, ok := AsDoc(v); ok {
		if inner, ok := nested["status"]; ok {
			if s, ok := Text(inner); ok && s != "" {
				return s
			}
		}
	}
	return def
}
