package vpack

// peekAttributeName interprets the bytes at the given absolute offset as
// an already-written object key and returns its textual name plus the
// number of bytes the key occupies (so the caller can step to the
// value). This is deliberately narrow — a short/long string reader and a
// translated-integer-key resolver, not a general Slice decoder (spec
// §1's explicit non-goal) — because it exists only to serve hasKey/
// getKey and the cuckoo hash's attribute-name extraction, both of which
// only ever look at keys, never arbitrary values.
//
// Grounded on original_source/src/Builder.cpp's findAttrName.
func (b *Builder) peekAttributeName(off int) (name []byte, keyLen int, err error) {
	buf := b.buf.bytes()
	head := buf[off]
	switch {
	case head >= headShortStringBase && head <= headLongString-1:
		n := int(head - headShortStringBase)
		return buf[off+1 : off+1+n], 1 + n, nil
	case head == headLongString:
		n := int(readUintLE(buf[off+1:off+9], 8))
		return buf[off+9 : off+9+n], 9 + n, nil
	default:
		id, idLen, ok := decodeKeyAsUint(buf, off, head)
		if !ok {
			return nil, 0, wrapErr("peekAttributeName", ErrUnexpectedType, nil)
		}
		if b.opts.Translator == nil {
			return nil, 0, newErr("peekAttributeName", ErrUnexpectedType)
		}
		resolved, ok := b.opts.Translator.Translate(id)
		if !ok {
			return nil, 0, newErr("peekAttributeName", ErrUnexpectedType)
		}
		return []byte(resolved), idLen, nil
	}
}

// decodeKeyAsUint reads a small/regular unsigned integer key used as a
// translated-attribute-name placeholder.
func decodeKeyAsUint(buf []byte, off int, head byte) (id uint64, keyLen int, ok bool) {
	switch {
	case head >= headSmallIntPositiveBase && head <= headSmallIntPositiveBase+9:
		return uint64(head - headSmallIntPositiveBase), 1, true
	case head >= headUIntBase+1 && head <= headUIntBase+8:
		w := int(head - headUIntBase)
		return readUintLE(buf[off+1:off+1+w], w), 1 + w, true
	default:
		return 0, 0, false
	}
}

// HasKey reports whether the innermost open object already has a member
// with the given key.
func (b *Builder) HasKey(key string) (bool, error) {
	top := b.stack.top()
	if top == nil || top.kind != kindObject {
		return false, newErr("HasKey", ErrNeedOpenObject)
	}
	for _, rel := range top.memberOffsets {
		name, _, err := b.peekAttributeName(top.headerOffset + rel)
		if err != nil {
			return false, err
		}
		if string(name) == key {
			return true, nil
		}
	}
	return false, nil
}

// GetKey returns the absolute buffer offset at which the value for key
// begins, within the innermost open object. found is false if no such
// key has been written yet.
func (b *Builder) GetKey(key string) (offset int, found bool, err error) {
	top := b.stack.top()
	if top == nil || top.kind != kindObject {
		return 0, false, newErr("GetKey", ErrNeedOpenObject)
	}
	for _, rel := range top.memberOffsets {
		abs := top.headerOffset + rel
		name, keyLen, err := b.peekAttributeName(abs)
		if err != nil {
			return 0, false, err
		}
		if string(name) == key {
			return abs + keyLen, true, nil
		}
	}
	return 0, false, nil
}
