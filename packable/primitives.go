package packable

import "github.com/quickwritereader/vpack/vpack"

// Grounded on the teacher's packable_primitives.go: one named type per Go
// scalar kind, each a single-line PackInto.

type PackInt8 int8

func (p PackInt8) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewInt(int64(p)))
	return err
}

type PackUint8 uint8

func (p PackUint8) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewUInt(uint64(p)))
	return err
}

type PackInt16 int16

func (p PackInt16) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewInt(int64(p)))
	return err
}

type PackUint16 uint16

func (p PackUint16) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewUInt(uint64(p)))
	return err
}

type PackInt32 int32

func (p PackInt32) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewInt(int64(p)))
	return err
}

type PackUint32 uint32

func (p PackUint32) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewUInt(uint64(p)))
	return err
}

type PackInt64 int64

func (p PackInt64) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewInt(int64(p)))
	return err
}

type PackUint64 uint64

func (p PackUint64) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewUInt(uint64(p)))
	return err
}

type PackFloat32 float32

func (p PackFloat32) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewDouble(float64(p)))
	return err
}

type PackFloat64 float64

func (p PackFloat64) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewDouble(float64(p)))
	return err
}

type PackBool bool

func (p PackBool) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewBool(bool(p)))
	return err
}

type PackString string

func (p PackString) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewString(string(p)))
	return err
}

// PackByteArrayRef is the zero-copy wrapper for already-held binary data —
// the teacher keeps a *[]byte here after benchmarking showed interface
// boxing a plain []byte allocates; the same rationale applies here.
type PackByteArrayRef struct {
	ref *[]byte
}

func PackByteArray(b []byte) PackByteArrayRef {
	return PackByteArrayRef{ref: &b}
}

func (p PackByteArrayRef) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewBinary(*p.ref))
	return err
}

type PackNull struct{}

func (PackNull) PackInto(b *vpack.Builder) error {
	_, err := b.Add(vpack.NewNull())
	return err
}
