package vpack

import "sync"

// Builder is the incremental, append-only VPack writer: it materializes a
// document byte-by-byte, tracks open arrays/objects on a nesting stack,
// and rewrites each compound's header in place when it closes. Strictly
// single-owner, single-threaded — spec §5 — so it carries no locks.
//
// Grounded on the teacher's PutAccess (access/put.go): same "buf []byte
// grows, position tracked, headers rewritten/finalized on Pack()" shape,
// generalized from PackOS's flat two-pass header table to VPack's
// in-place-rewritten compound headers and cuckoo-hashed objects.
type Builder struct {
	buf     byteBuffer
	stack   nestingStack
	opts    Options
	hasRoot bool
}

var builderPool = sync.Pool{
	New: func() any {
		return &Builder{}
	},
}

// GetBuilder returns a pooled Builder reset with opts, avoiding an
// allocation on the hot path — mirrors access/put.go's GetPutAccess.
func GetBuilder(opts Options) *Builder {
	b := builderPool.Get().(*Builder)
	b.Reset(opts)
	return b
}

// ReleaseBuilder returns b to the pool. b must not be used afterward.
func ReleaseBuilder(b *Builder) {
	builderPool.Put(b)
}

// NewBuilder allocates a fresh, unpooled Builder.
func NewBuilder(opts Options) *Builder {
	b := &Builder{}
	b.Reset(opts)
	return b
}

// Reset discards any in-progress document and prepares b to build a new
// one with opts, reusing its buffer and nesting-stack storage.
func (b *Builder) Reset(opts Options) {
	b.buf.truncateTo(0)
	b.stack.reset()
	b.opts = opts
	b.hasRoot = false
}

// Depth returns the number of currently open compounds.
func (b *Builder) Depth() int { return b.stack.len() }

// IsClosed reports whether a root value has been fully written and no
// compound remains open.
func (b *Builder) IsClosed() bool { return b.hasRoot && b.stack.len() == 0 }

// IsOpenArray reports whether the innermost open compound is an array.
func (b *Builder) IsOpenArray() bool {
	f := b.stack.top()
	return f != nil && f.kind == kindArray
}

// IsOpenObject reports whether the innermost open compound is an object.
func (b *Builder) IsOpenObject() bool {
	f := b.stack.top()
	return f != nil && f.kind == kindObject
}

// Bytes returns a copy of the finished (or in-progress) document.
func (b *Builder) Bytes() []byte {
	out := make([]byte, b.buf.len())
	copy(out, b.buf.bytes())
	return out
}

// StealBuffer transfers ownership of the underlying byte slice to the
// caller. b is left with an empty buffer and must be Reset before reuse —
// spec §3's "transferring ownership of the underlying buffer" accessor,
// distinct from the copying Bytes().
func (b *Builder) StealBuffer() []byte {
	out := b.buf.buf
	b.buf.buf = nil
	return out
}

// Clone returns a new Builder holding an independent copy of b's bytes.
// Only meaningful once b is closed; the clone starts with an empty
// nesting stack.
func (b *Builder) Clone() *Builder {
	nb := &Builder{opts: b.opts, hasRoot: b.hasRoot}
	nb.buf.buf = make([]byte, b.buf.len())
	copy(nb.buf.buf, b.buf.bytes())
	return nb
}

// OpenArray begins a new array, honoring Options.BuildUnindexedArrays.
func (b *Builder) OpenArray() error { return b.openCompound(kindArray, b.opts.BuildUnindexedArrays) }

// OpenArrayCompact begins a new array that prefers the compact form
// regardless of Options, per spec §4.7's "opened with the unindexed hint".
func (b *Builder) OpenArrayCompact() error { return b.openCompound(kindArray, true) }

// OpenObject begins a new object, honoring Options.BuildUnindexedObjects.
func (b *Builder) OpenObject() error {
	return b.openCompound(kindObject, b.opts.BuildUnindexedObjects)
}

// OpenObjectCompact begins a new object that prefers the compact form.
func (b *Builder) OpenObjectCompact() error { return b.openCompound(kindObject, true) }

func (b *Builder) openCompound(kind compoundKind, compact bool) error {
	parent := b.stack.top()
	if parent != nil && parent.kind == kindObject && !parent.keyWritten {
		return newErr("Open", ErrKeyMustBeString)
	}
	if parent == nil && b.hasRoot {
		return newErr("Open", ErrUnexpectedValue)
	}

	headerOffset := b.buf.len()
	if kind == kindArray {
		b.buf.appendByte(headArrayIndexed1)
	} else {
		b.buf.appendByte(headObjectIndexed1)
	}
	b.buf.growBy(8) // reserved space for byteLen/count fields, spec §9

	if parent != nil {
		if parent.kind == kindArray {
			parent.addMemberOffset(headerOffset - parent.headerOffset)
		} else {
			parent.keyWritten = false
		}
	}
	b.hasRoot = true
	b.stack.push(kind, headerOffset, compact)
	return nil
}

// Close finalizes the innermost open compound: picks the minimal offset
// width, builds the index/cuckoo table, rewrites the header in place, and
// pops the nesting stack.
func (b *Builder) Close() error {
	top := b.stack.top()
	if top == nil {
		return newErr("Close", ErrNeedOpenCompound)
	}
	if top.kind == kindObject && top.keyWritten {
		return newErr("Close", ErrUnexpectedValue)
	}

	var err error
	if top.kind == kindArray {
		err = b.closeArray(top)
	} else {
		err = b.closeObject(top)
	}
	if err != nil {
		return err
	}
	b.stack.pop()
	return nil
}

// Add appends v to the innermost open compound, or — if nothing is open
// and no root value has been written yet — writes v as the entire
// document. Inside an open object awaiting a key, v must be a string
// (spec §4.2's key-position check); use AddKey/AddValue directly to hit
// BuilderKeyAlreadyWritten rather than the folded check here.
func (b *Builder) Add(v Value) (int, error) {
	top := b.stack.top()
	if top == nil {
		if b.hasRoot {
			return 0, newErr("Add", ErrNeedOpenCompound)
		}
		off, err := b.encodeValue(v)
		if err != nil {
			return off, err
		}
		b.hasRoot = true
		return off, nil
	}
	if top.kind == kindObject && !top.keyWritten {
		if v.vtype != TypeString {
			return 0, newErr("Add", ErrKeyMustBeString)
		}
		return b.AddKey(v.s)
	}
	return b.AddValue(v)
}

// AddKey writes s as the key half of the next member of the innermost
// open object.
func (b *Builder) AddKey(s string) (int, error) {
	top := b.stack.top()
	if top == nil {
		return 0, newErr("AddKey", ErrNeedOpenObject)
	}
	if top.kind != kindObject {
		return 0, newErr("AddKey", ErrNeedOpenObject)
	}
	if top.keyWritten {
		return 0, newErr("AddKey", ErrKeyAlreadyWritten)
	}
	off, err := b.encodeValue(NewString(s))
	if err != nil {
		return off, err
	}
	top.addMemberOffset(off - top.headerOffset)
	top.keyWritten = true
	return off, nil
}

// AddValue writes v as an array element, or as the value half of the
// innermost open object's current member (AddKey must have been called
// first).
func (b *Builder) AddValue(v Value) (int, error) {
	top := b.stack.top()
	if top == nil {
		return 0, newErr("AddValue", ErrNeedOpenCompound)
	}
	switch top.kind {
	case kindArray:
		off, err := b.encodeValue(v)
		if err != nil {
			return off, err
		}
		top.addMemberOffset(off - top.headerOffset)
		return off, nil
	default: // kindObject
		if !top.keyWritten {
			return 0, newErr("AddValue", ErrKeyMustBeString)
		}
		off, err := b.encodeValue(v)
		if err != nil {
			return off, err
		}
		top.keyWritten = false
		return off, nil
	}
}

// AddPair is Add's zero-copy counterpart for ValuePair: it writes the root
// value, an array element, an object key (String pairs only) or an object
// value, depending on what the innermost open compound expects next.
func (b *Builder) AddPair(vp ValuePair) (int, error) {
	top := b.stack.top()
	if top == nil {
		if b.hasRoot {
			return 0, newErr("AddPair", ErrNeedOpenCompound)
		}
		off, err := b.encodeValuePair(vp)
		if err != nil {
			return off, err
		}
		b.hasRoot = true
		return off, nil
	}
	switch top.kind {
	case kindArray:
		off, err := b.encodeValuePair(vp)
		if err != nil {
			return off, err
		}
		top.addMemberOffset(off - top.headerOffset)
		return off, nil
	default: // kindObject
		if !top.keyWritten {
			if vp.vtype != TypeString {
				return 0, newErr("AddPair", ErrKeyMustBeString)
			}
			off, err := b.encodeValuePair(vp)
			if err != nil {
				return off, err
			}
			top.addMemberOffset(off - top.headerOffset)
			top.keyWritten = true
			return off, nil
		}
		off, err := b.encodeValuePair(vp)
		if err != nil {
			return off, err
		}
		top.keyWritten = false
		return off, nil
	}
}

// AddKV is sugar for AddKey(key) followed by AddValue(v).
func (b *Builder) AddKV(key string, v Value) error {
	if _, err := b.AddKey(key); err != nil {
		return err
	}
	_, err := b.AddValue(v)
	return err
}

// RemoveLast pops the most recently appended member of the innermost open
// compound, resetting the write position to where it began. For an object
// mid-pair (key written, value not yet) this removes just the dangling
// key; otherwise it removes a whole key/value pair.
func (b *Builder) RemoveLast() error {
	top := b.stack.top()
	if top == nil {
		return newErr("RemoveLast", ErrNeedOpenCompound)
	}
	n := len(top.memberOffsets)
	if n == 0 {
		return newErr("RemoveLast", ErrNeedSubvalue)
	}
	lastAbs := top.headerOffset + top.memberOffsets[n-1]
	b.buf.truncateTo(lastAbs)
	top.memberOffsets = top.memberOffsets[:n-1]
	top.keyWritten = false
	return nil
}
