package vpack

import "math"

// encodeValue appends exactly one atomic item at the buffer's current tail
// and returns the offset at which it was written — spec §4.2's
// ValueEncoder.set(Value). Compound values never reach here; OpenArray/
// OpenObject handle those.
func (b *Builder) encodeValue(v Value) (int, error) {
	off := b.buf.len()
	switch v.vtype {
	case TypeNull:
		b.buf.appendByte(headNull)

	case TypeIllegal:
		b.buf.appendByte(headIllegal)

	case TypeMinKey:
		b.buf.appendByte(headMinKey)

	case TypeMaxKey:
		b.buf.appendByte(headMaxKey)

	case TypeBool:
		if v.i != 0 {
			b.buf.appendByte(headTrue)
		} else {
			b.buf.appendByte(headFalse)
		}

	case TypeSmallInt:
		if v.i < -6 || v.i > 9 {
			return off, wrapErr("Add", ErrNumberOutOfRange, nil)
		}
		if v.i >= 0 {
			b.buf.appendByte(headSmallIntPositiveBase + byte(v.i))
		} else {
			b.buf.appendByte(headSmallIntNegativeBase + byte(v.i+0x100))
		}

	case TypeInt:
		w := intWidthFor(v.i)
		b.buf.appendByte(headIntBase + byte(w))
		b.buf.appendLength(uint64(v.i), w)

	case TypeUInt:
		w := uintWidthFor(v.u)
		b.buf.appendByte(headUIntBase + byte(w))
		b.buf.appendLength(v.u, w)

	case TypeUTCDate:
		b.buf.appendByte(headUTCDate)
		b.buf.appendLength(uint64(v.i), 8)

	case TypeDouble:
		b.buf.appendByte(headDouble)
		b.buf.appendLength(math.Float64bits(v.d), 8)

	case TypeExternal:
		if b.opts.DisallowExternals {
			return off, newErr("Add", ErrExternalsDisallowed)
		}
		b.buf.appendByte(headExternal)
		b.buf.appendLength(uint64(uintptr(v.ext)), 8)

	case TypeString:
		b.encodeStringBytes([]byte(v.s))

	case TypeBinary:
		b.buf.appendUint(uint64(len(v.bin)), headBinaryBase)
		b.buf.appendBytes(v.bin)

	case TypeCustom:
		b.buf.appendBytes(v.custom)

	default:
		return off, wrapErr("Add", ErrUnexpectedType, nil)
	}
	return off, nil
}

// encodeValuePair is the zero-copy string/binary path (spec §4.2's
// (type, pointer, size) ValuePair).
func (b *Builder) encodeValuePair(v ValuePair) (int, error) {
	off := b.buf.len()
	switch v.vtype {
	case TypeString:
		b.encodeStringBytes(v.data)
	case TypeBinary:
		b.buf.appendUint(uint64(len(v.data)), headBinaryBase)
		b.buf.appendBytes(v.data)
	default:
		return off, wrapErr("Add", ErrUnexpectedType, nil)
	}
	return off, nil
}

func (b *Builder) encodeStringBytes(s []byte) {
	if len(s) <= shortStringMaxLen {
		b.buf.appendByte(headShortStringBase + byte(len(s)))
		b.buf.appendBytes(s)
		return
	}
	b.buf.appendByte(headLongString)
	b.buf.appendLength(uint64(len(s)), 8)
	b.buf.appendBytes(s)
}
