package entities

// ValueKind discriminates the variants of a PropertyValue.
type ValueKind int

// The four shapes a record property can take.
const (
	KindScalar ValueKind = iota
	KindReference
	KindObject
	KindList
)

// PropertyValue is one property of a record: a scalar, a reference to
// another record by name, a nested object, or an ordered list. Exactly one
// of the variant fields is meaningful for a given Kind.
type PropertyValue struct {
	Kind   ValueKind
	Scalar any
	Ref    *RecordRef
	Object map[string]PropertyValue
	List   []PropertyValue
}

// RecordRef is a reference-shaped mapping. It carries at least the name of
// the record it points to and may pin its own id, type or image; Extra holds
// whatever further properties sat alongside the reference keys.
type RecordRef struct {
	Name  string
	ID    string
	Type  string
	Image string
	Extra map[string]PropertyValue
}

// ScalarValue wraps a scalar in a PropertyValue.
func ScalarValue(v any) PropertyValue {
	return PropertyValue{Kind: KindScalar, Scalar: v}
}

// ObjectValue wraps a nested mapping in a PropertyValue.
func ObjectValue(m map[string]PropertyValue) PropertyValue {
	return PropertyValue{Kind: KindObject, Object: m}
}

// ListValue wraps an ordered sequence in a PropertyValue.
func ListValue(items ...PropertyValue) PropertyValue {
	return PropertyValue{Kind: KindList, List: items}
}

// RefValue wraps a record reference in a PropertyValue.
func RefValue(ref *RecordRef) PropertyValue {
	return PropertyValue{Kind: KindReference, Ref: ref}
}

// FromRaw classifies a decoded YAML/JSON value into a PropertyValue. A
// mapping that carries a non-empty string under "name" is a reference; any
// other mapping is a nested object.
func FromRaw(v any) PropertyValue {
	switch t := v.(type) {
	case map[string]any:
		if name, ok := t["name"].(string); ok && name != "" {
			return RefValue(refFromRaw(name, t))
		}
		obj := make(map[string]PropertyValue, len(t))
		for k, raw := range t {
			obj[k] = FromRaw(raw)
		}
		return ObjectValue(obj)
	case []any:
		items := make([]PropertyValue, len(t))
		for i, raw := range t {
			items[i] = FromRaw(raw)
		}
		return ListValue(items...)
	default:
		return ScalarValue(v)
	}
}

func refFromRaw(name string, m map[string]any) *RecordRef {
	ref := &RecordRef{Name: name}
	extra := make(map[string]PropertyValue)
	for k, raw := range m {
		switch k {
		case "name":
		case "id":
			if s, ok := raw.(string); ok {
				ref.ID = s
				continue
			}
			extra[k] = FromRaw(raw)
		case "type":
			if s, ok := raw.(string); ok {
				ref.Type = s
				continue
			}
			extra[k] = FromRaw(raw)
		case "image":
			if s, ok := raw.(string); ok {
				ref.Image = s
				continue
			}
			extra[k] = FromRaw(raw)
		default:
			extra[k] = FromRaw(raw)
		}
	}
	if len(extra) > 0 {
		ref.Extra = extra
	}
	return ref
}

// Raw converts a PropertyValue back into the plain decoded form FromRaw
// accepts. Used when records are persisted as JSON.
func (v PropertyValue) Raw() any {
	switch v.Kind {
	case KindScalar:
		return v.Scalar
	case KindReference:
		m := map[string]any{"name": v.Ref.Name}
		if v.Ref.ID != "" {
			m["id"] = v.Ref.ID
		}
		if v.Ref.Type != "" {
			m["type"] = v.Ref.Type
		}
		if v.Ref.Image != "" {
			m["image"] = v.Ref.Image
		}
		for k, ev := range v.Ref.Extra {
			m[k] = ev.Raw()
		}
		return m
	case KindObject:
		m := make(map[string]any, len(v.Object))
		for k, ov := range v.Object {
			m[k] = ov.Raw()
		}
		return m
	case KindList:
		items := make([]any, len(v.List))
		for i, iv := range v.List {
			items[i] = iv.Raw()
		}
		return items
	default:
		return nil
	}
}
