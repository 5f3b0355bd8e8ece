package vpack

// Compact-form variable-length integers (spec §4.7). The forward varint
// (used for the byte-length field, written right after the head byte)
// groups 7 bits per byte with the continuation flag in bit 7, low-order
// group first — ordinary LEB128. The backward varint (used for the
// trailing member count, so it can be read by walking from the end of
// the compound toward its start without knowing where it begins) is the
// same grouping mirrored: the continuation flag sits in bit 0, and the
// low-order group is written at the highest address.
//
// Grounded on original_source/src/Builder.cpp's getVariableValueLength/
// storeVariableValueLength<fromBack>, reimplemented rather than ported
// since the original header defining those templates was not part of the
// retrieved source excerpt.

func varintLen(v uint64) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}
	return n
}

func putVarintForward(dst []byte, v uint64) int {
	i := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			dst[i] = b | 0x80
			i++
			continue
		}
		dst[i] = b
		i++
		return i
	}
}

// putVarintBackward writes v's varint into dst (len(dst) == varintLen(v))
// so that dst[len(dst)-1] holds the low-order group and dst[0] holds the
// terminal (continuation-clear) group.
func putVarintBackward(dst []byte, v uint64) {
	i := len(dst) - 1
	for {
		b := byte(v&0x7f) << 1
		v >>= 7
		if v != 0 {
			dst[i] = b | 0x01
			i--
			continue
		}
		dst[i] = b
		return
	}
}

// closeCompact attempts spec §4.7's compact encoding for the frame at tos.
// Returns ok==false when the compact form would need 9+ bytes for its
// length field, in which case the caller must fall back to the normal
// indexed/cuckoo closer.
func (b *Builder) closeCompact(f *frame, isArray bool) (bool, error) {
	tos := f.headerOffset
	n := uint64(len(f.memberOffsets))

	nLen := varintLen(n)
	byteSize := uint64(b.buf.len()-(tos+8)) + uint64(nLen)
	bLen := varintLen(byteSize)
	byteSize += uint64(bLen)
	if varintLen(byteSize) != bLen {
		byteSize++
		bLen++
	}

	if bLen >= 9 {
		return false, nil
	}

	targetPos := 1 + bLen
	b.buf.shiftLeft(tos+targetPos, tos+9)

	if isArray {
		b.buf.setByteAt(tos, headCompactArray)
	} else {
		b.buf.setByteAt(tos, headCompactObject)
	}

	lenField := make([]byte, bLen)
	putVarintForward(lenField, byteSize)
	for i, bb := range lenField {
		b.buf.setByteAt(tos+1+i, bb)
	}

	countField := make([]byte, nLen)
	putVarintBackward(countField, n)
	countStart := b.buf.growBy(nLen)
	for i, bb := range countField {
		b.buf.setByteAt(countStart+i, bb)
	}

	return true, nil
}
