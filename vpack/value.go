package vpack

import "unsafe"

// ValueType tags the payload carried by a Value. It is the Go analogue of
// the teacher's types.Type enum (types/type.go), but spans VPack's full
// atomic+compound type set rather than PackOS's 3-bit tag.
type ValueType int

const (
	TypeNull ValueType = iota
	TypeBool
	TypeSmallInt
	TypeInt
	TypeUInt
	TypeDouble
	TypeUTCDate
	TypeString
	TypeBinary
	TypeExternal
	TypeMinKey
	TypeMaxKey
	TypeIllegal
	TypeCustom
	TypeArray
	TypeObject
)

func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeSmallInt:
		return "SmallInt"
	case TypeInt:
		return "Int"
	case TypeUInt:
		return "UInt"
	case TypeDouble:
		return "Double"
	case TypeUTCDate:
		return "UTCDate"
	case TypeString:
		return "String"
	case TypeBinary:
		return "Binary"
	case TypeExternal:
		return "External"
	case TypeMinKey:
		return "MinKey"
	case TypeMaxKey:
		return "MaxKey"
	case TypeIllegal:
		return "Illegal"
	case TypeCustom:
		return "Custom"
	case TypeArray:
		return "Array"
	case TypeObject:
		return "Object"
	default:
		return "Invalid"
	}
}

// Value is a tagged union over every atomic VPack value the encoder knows
// how to write. Compound values (array/object) are never constructed as a
// Value — they go through Builder.OpenArray/OpenObject instead.
type Value struct {
	vtype  ValueType
	i      int64
	u      uint64
	d      float64
	s      string
	bin    []byte
	ext    unsafe.Pointer
	custom []byte // always len==size; zero-filled when the caller has no bytes yet
}

func NewNull() Value              { return Value{vtype: TypeNull} }
func NewIllegal() Value           { return Value{vtype: TypeIllegal} }
func NewMinKey() Value            { return Value{vtype: TypeMinKey} }
func NewMaxKey() Value            { return Value{vtype: TypeMaxKey} }
func NewBool(b bool) Value        { return Value{vtype: TypeBool, i: boolToInt(b)} }
func NewSmallInt(v int64) Value    { return Value{vtype: TypeSmallInt, i: v} }
func NewInt(v int64) Value        { return Value{vtype: TypeInt, i: v} }
func NewUInt(v uint64) Value      { return Value{vtype: TypeUInt, u: v} }
func NewDouble(v float64) Value   { return Value{vtype: TypeDouble, d: v} }
func NewUTCDate(v int64) Value    { return Value{vtype: TypeUTCDate, i: v} }
func NewString(s string) Value    { return Value{vtype: TypeString, s: s} }
func NewBinary(b []byte) Value    { return Value{vtype: TypeBinary, bin: b} }
func NewExternal(p unsafe.Pointer) Value { return Value{vtype: TypeExternal, ext: p} }

// NewCustom reserves size bytes tagged as opaque custom data. If bytes is
// non-nil its contents are copied in (must have len(bytes) == size);
// otherwise the caller is expected to fill the reserved region via the
// offset returned by Builder.Add.
func NewCustom(size int, bytes []byte) Value {
	if bytes != nil {
		if len(bytes) != size {
			panic("vpack: NewCustom: len(bytes) != size")
		}
		return Value{vtype: TypeCustom, custom: bytes}
	}
	return Value{vtype: TypeCustom, custom: make([]byte, size)}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// ValuePair is the zero-copy alternative to Value for String/Binary data
// already held as a []byte — spec §4.2's "(type, pointer, size) pair"
// collapses naturally onto a Go slice header, so no unsafe pointer
// juggling is needed for the common case (cf. the teacher's
// access/put.go AddString, which does reach for unsafe.Slice to avoid a
// string->[]byte copy; ValuePair exists for callers that already hold the
// bytes and want to skip that copy too).
type ValuePair struct {
	vtype ValueType // TypeString or TypeBinary
	data  []byte
}

func NewValuePair(vtype ValueType, data []byte) ValuePair {
	if vtype != TypeString && vtype != TypeBinary {
		panic("vpack: NewValuePair: vtype must be String or Binary")
	}
	return ValuePair{vtype: vtype, data: data}
}
