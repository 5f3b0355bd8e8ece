package vpack

import (
	"fmt"
	"sort"
)

// Packable lets a caller-defined type feed itself into a Builder; AddAny
// calls PackInto for any value that implements it. Modeled on the teacher's packable.
// Packable interface (packable/pack.go).
type Packable interface {
	PackInto(b *Builder) error
}

// AddAny feeds an arbitrary Go value into b, opening/closing arrays and
// objects as needed and dispatching every scalar kind to the matching
// Value constructor. Members of Go maps are written in sorted key order;
// use AddAnyOrdered with a Document when members must keep the order in
// which they were set.
//
// Grounded on the teacher's access/put.go packAnyValue: same type-switch
// shape and the same broad set of Go kinds, generalized from PutAccess's
// flat header writes to Builder's Open/Add/Close calls, and from
// fmt.Errorf failures to *BuilderError values.
func AddAny(b *Builder, v any) error {
	return addAny(b, v)
}

func addAny(b *Builder, v any) error {
	switch val := v.(type) {
	case nil:
		_, err := b.Add(NewNull())
		return err
	case bool:
		_, err := b.Add(NewBool(val))
		return err
	case string:
		_, err := b.Add(NewString(val))
		return err
	case []byte:
		_, err := b.Add(NewBinary(val))
		return err
	case int:
		_, err := b.Add(NewInt(int64(val)))
		return err
	case int8:
		_, err := b.Add(NewInt(int64(val)))
		return err
	case int16:
		_, err := b.Add(NewInt(int64(val)))
		return err
	case int32:
		_, err := b.Add(NewInt(int64(val)))
		return err
	case int64:
		_, err := b.Add(NewInt(val))
		return err
	case uint:
		_, err := b.Add(NewUInt(uint64(val)))
		return err
	case uint8:
		_, err := b.Add(NewUInt(uint64(val)))
		return err
	case uint16:
		_, err := b.Add(NewUInt(uint64(val)))
		return err
	case uint32:
		_, err := b.Add(NewUInt(uint64(val)))
		return err
	case uint64:
		_, err := b.Add(NewUInt(val))
		return err
	case float32:
		_, err := b.Add(NewDouble(float64(val)))
		return err
	case float64:
		_, err := b.Add(NewDouble(val))
		return err
	case Value:
		_, err := b.Add(val)
		return err
	case Packable:
		return val.PackInto(b)
	case *Document:
		return addOrderedObject(b, val)
	case map[string]string:
		if err := b.OpenObject(); err != nil {
			return err
		}
		for _, k := range sortedStringKeys(val) {
			if err := b.AddKV(k, NewString(val[k])); err != nil {
				return err
			}
		}
		return b.Close()
	case map[string][]byte:
		if err := b.OpenObject(); err != nil {
			return err
		}
		for _, k := range sortedBytesKeys(val) {
			if err := b.AddKV(k, NewBinary(val[k])); err != nil {
				return err
			}
		}
		return b.Close()
	case map[string]any:
		if err := b.OpenObject(); err != nil {
			return err
		}
		for _, k := range sortedAnyKeys(val) {
			if _, err := b.AddKey(k); err != nil {
				return err
			}
			if err := addAny(b, val[k]); err != nil {
				return err
			}
		}
		return b.Close()
	case []string:
		if err := b.OpenArray(); err != nil {
			return err
		}
		for _, s := range val {
			if _, err := b.AddValue(NewString(s)); err != nil {
				return err
			}
		}
		return b.Close()
	case [][]byte:
		if err := b.OpenArray(); err != nil {
			return err
		}
		for _, bb := range val {
			if _, err := b.AddValue(NewBinary(bb)); err != nil {
				return err
			}
		}
		return b.Close()
	case []any:
		if err := b.OpenArray(); err != nil {
			return err
		}
		for _, item := range val {
			if err := addAny(b, item); err != nil {
				return err
			}
		}
		return b.Close()
	default:
		return wrapErr("AddAny", ErrUnexpectedType, unsupportedTypeError{val: v})
	}
}

// AddAnyOrdered is AddAny for a *Document root: object members are written
// in the order the Document recorded them, rather than Go's randomized map
// order. Nested map[string]any values inside the document tree still fall
// back to sorted-key order (there is no ordering information for them).
func AddAnyOrdered(b *Builder, doc *Document) error {
	return addOrderedObject(b, doc)
}

func addOrderedObject(b *Builder, doc *Document) error {
	if err := b.OpenObject(); err != nil {
		return err
	}
	for k, v := range doc.m.Items() {
		if _, err := b.AddKey(k); err != nil {
			return err
		}
		if err := addAny(b, v); err != nil {
			return err
		}
	}
	return b.Close()
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedBytesKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedAnyKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// unsupportedTypeError reports the concrete Go type AddAny could not
// dispatch, without pulling in fmt.Stringer machinery for a one-shot error.
type unsupportedTypeError struct {
	val any
}

func (e unsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %T", e.val)
}
