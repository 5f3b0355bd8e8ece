package packable

import "github.com/quickwritereader/vpack/vpack"

// Nullable constructors return vpack's Null atom for a nil pointer, the
// pointee's own Packable wrapper otherwise. Grounded on the teacher's
// packable_nullables.go, simplified since the nil check can resolve
// immediately here rather than waiting for PackInto (the teacher defers to
// Write time because HeaderType must already be known before the nil check
// happens; vpack.Builder has no such ordering constraint).

func PackNullableInt8(v *int8) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackInt8(*v)
}

func PackNullableUint8(v *uint8) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackUint8(*v)
}

func PackNullableInt16(v *int16) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackInt16(*v)
}

func PackNullableUint16(v *uint16) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackUint16(*v)
}

func PackNullableInt32(v *int32) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackInt32(*v)
}

func PackNullableUint32(v *uint32) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackUint32(*v)
}

func PackNullableInt64(v *int64) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackInt64(*v)
}

func PackNullableUint64(v *uint64) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackUint64(*v)
}

func PackNullableFloat32(v *float32) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackFloat32(*v)
}

func PackNullableFloat64(v *float64) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackFloat64(*v)
}

func PackNullableBool(v *bool) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackBool(*v)
}

func PackNullableString(v *string) vpack.Packable {
	if v == nil {
		return PackNull{}
	}
	return PackString(*v)
}
