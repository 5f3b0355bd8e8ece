// Package packable collects small Packable wrapper types — one per Go
// primitive, plus array/map combinators — so callers can compose a document
// out of typed values without hand-writing vpack.Builder Open/Add/Close
// sequences themselves.
//
// Grounded on the teacher's packable package (packable/pack.go,
// packable_primitives.go, packable_nullables.go, packable_mapPackables.go):
// same "one wrapper type per Go kind, each a one-line PackInto" shape. The
// teacher's HeaderType/ValueSize/Write trio existed to support PackOS's
// two-pass flat header format (size must be known before the header table
// is laid out); vpack.Builder rewrites compound headers in place instead,
// so a Packable here needs nothing but PackInto — those three methods have
// no equivalent and are dropped rather than kept unwired.
package packable

import "github.com/quickwritereader/vpack/vpack"

// PackContainer groups several Packables into one array value.
type PackContainer []vpack.Packable

func NewPackContainer(args ...vpack.Packable) PackContainer {
	return PackContainer(args)
}

func (p PackContainer) PackInto(b *vpack.Builder) error {
	if err := b.OpenArray(); err != nil {
		return err
	}
	for _, arg := range p {
		if err := arg.PackInto(b); err != nil {
			return err
		}
	}
	return b.Close()
}

// Pack builds a standalone document from one or more top-level Packables.
// With a single argument the document is that value's own encoding; with
// more than one it is an array of them.
func Pack(opts vpack.Options, args ...vpack.Packable) ([]byte, error) {
	b := vpack.NewBuilder(opts)
	if len(args) == 1 {
		if err := args[0].PackInto(b); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}
	if err := NewPackContainer(args...).PackInto(b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
