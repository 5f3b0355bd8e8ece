package vpack

// Head bytes for the fixed-tag portion of the VPack wire format. The
// variable ranges (small ints, short strings, sized ints/uints/binaries)
// are computed rather than enumerated; see encode.go.
const (
	headNone byte = 0x00 // never written; zero value of an uninitialized head

	headEmptyArray byte = 0x01

	// equal-stride arrays, no index table; width 1,2,4,8
	headArrayStride1 byte = 0x02
	headArrayStride2 byte = 0x03
	headArrayStride4 byte = 0x04
	headArrayStride8 byte = 0x05

	// indexed arrays; width 1,2,4,8
	headArrayIndexed1 byte = 0x06
	headArrayIndexed2 byte = 0x07
	headArrayIndexed4 byte = 0x08
	headArrayIndexed8 byte = 0x09

	headEmptyObject byte = 0x0a

	// cuckoo-indexed objects; width 1,2,4,8
	headObjectIndexed1 byte = 0x0b
	headObjectIndexed2 byte = 0x0c
	headObjectIndexed4 byte = 0x0d
	headObjectIndexed8 byte = 0x0e

	headCompactArray  byte = 0x13
	headCompactObject byte = 0x14

	headIllegal  byte = 0x17
	headNull     byte = 0x18
	headFalse    byte = 0x19
	headTrue     byte = 0x1a
	headDouble   byte = 0x1b
	headUTCDate  byte = 0x1c
	headExternal byte = 0x1d
	headMinKey   byte = 0x1e
	headMaxKey   byte = 0x1f

	// signed int, body width = head-0x1f, heads 0x20..0x27
	headIntBase byte = 0x1f
	// unsigned int, body width = head-0x27, heads 0x28..0x2f
	headUIntBase byte = 0x27

	// small ints: 0x30+v for v in [0,9], 0x40+v for v in [-6,-1]
	headSmallIntPositiveBase byte = 0x30
	headSmallIntNegativeBase byte = 0x40

	// short strings: 0x40 + length, length in [0,126]
	headShortStringBase byte = 0x40
	headLongString      byte = 0xbf
	shortStringMaxLen           = 126

	// binary, body length width = head-0xbf, heads 0xc0..0xc7
	headBinaryBase byte = 0xbf
)

// offsetWidth is one of 1, 2, 4, 8 — the number of bytes used for each
// slot of an index/cuckoo table and for a compound's byte-length and
// subvalue-count fields.
type offsetWidth uint8

const (
	width1 offsetWidth = 1
	width2 offsetWidth = 2
	width4 offsetWidth = 4
	width8 offsetWidth = 8
)

// widthLog2 maps a width to the 0..3 index used to pick a head byte
// (headArrayStride1+widthLog2(w) etc).
func widthLog2(w offsetWidth) byte {
	switch w {
	case width1:
		return 0
	case width2:
		return 1
	case width4:
		return 2
	case width8:
		return 3
	default:
		panic("vpack: invalid offset width")
	}
}

// intWidthFor returns the minimum number of bytes (1..8) needed to hold v
// in a signed little-endian, sign-extended representation — spec §4.2
// allows all eight widths, not just powers of two.
func intWidthFor(v int64) int {
	for w := 1; w < 8; w++ {
		bits := uint(w) * 8
		lo := -(int64(1) << (bits - 1))
		hi := (int64(1) << (bits - 1)) - 1
		if v >= lo && v <= hi {
			return w
		}
	}
	return 8
}

// uintWidthFor returns the minimum number of bytes (1..8) needed to hold v
// unsigned little-endian.
func uintWidthFor(v uint64) int {
	for w := 1; w < 8; w++ {
		if v <= (uint64(1)<<(uint(w)*8))-1 {
			return w
		}
	}
	return 8
}
