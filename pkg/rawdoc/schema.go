package rawdoc

import "math"

// Kind selects the coercion and default applied to a canonical field.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindTime
	KindStatus
)

// Field declares one canonical field: the alternate keys tried in priority
// order and the default used when none of them yields a usable value.
type Field struct {
	Name    string
	Keys    []string
	Kind    Kind
	Default interface{}
}

// Schema is the declarative normalization table for one entity type.
type Schema []Field

// Fields is the normalized output of a Schema: canonical name to coerced
// value. Values are string (text, time, status), int or float64.
type Fields map[string]interface{}

// Normalize extracts every declared field from d. It is total: a field
// that is absent or has an unusable shape resolves to its declared
// default, never to nil.
func (s Schema) Normalize(d Doc) Fields {
	out := make(Fields, len(s))
	for _, f := range s {
		out[f.Name] = f.extract(d)
	}
	return out
}

func (f Field) extract(d Doc) interface{} {
	switch f.Kind {
	case KindText:
		for _, k := range f.Keys {
			v, ok := d.Lookup(k)
			if !ok {
				continue
			}
			// Empty strings fall through to the next key so that a blank
			// legacy field does not mask a populated one.
			if s, ok := Text(v); ok && s != "" {
				return s
			}
		}
	case KindInt:
		for _, k := range f.Keys {
			if v, ok := d.Lookup(k); ok {
				if n, ok := Number(v); ok {
					return int(math.Round(n))
				}
			}
		}
	case KindFloat:
		for _, k := range f.Keys {
			if v, ok := d.Lookup(k); ok {
				if n, ok := Number(v); ok {
					return n
				}
			}
		}
	case KindTime:
		for _, k := range f.Keys {
			if v, ok := d.Lookup(k); ok {
				if tv := DecodeTime(v); tv.Kind != TimeMissing {
					return tv.ISO()
				}
			}
		}
	case KindStatus:
		def := ""
		if s, ok := f.Default.(string); ok {
			def = s
		}
		for _, k := range f.Keys {
			if v, ok := d.Lookup(k); ok {
				if s := StatusText(v, ""); s != "" {
					return s
				}
			}
		}
		return def
	}
	return f.defaultValue()
}

func (f Field) defaultValue() interface{} {
	if f.Default != nil {
		return f.Default
	}
	switch f.Kind {
	case KindInt:
		return 0
	case KindFloat:
		return float64(0)
	}
	return ""
}

// Text reads a normalized text, time or status field.
func (f Fields) Text(name string) string {
	if s, ok := f[name].(string); ok {
		return s
	}
	return ""
}

// Int reads a normalized integer field.
func (f Fields) Int(name string) int {
	switch n := f[name].(type) {
	case int:
		return n
	case float64:
		return int(math.Round(n))
	}
	return 0
}

// Float reads a normalized numeric field.
func (f Fields) Float(name string) float64 {
	switch n := f[name].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}
