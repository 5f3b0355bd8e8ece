package vpack

// closeObject finalizes an object frame: builds the 3-way cuckoo slot
// table over its keys, picks the minimal offset width, and rewrites the
// header in place.
//
// Grounded on original_source/src/Builder.cpp's close()'s object branch.
// One correction versus that source: its trailing seed byte for the
// w==2/w==4 header layouts is written via `_start[base + offsetSize] =
// seed` — missing the `tos +` every neighboring write applies — which
// only happens to work for a root-level object (tos==0) and corrupts any
// nested one. This port writes it at `tos + base + offsetSize` for w==1
// and w==2; for w==4 and w==8 it appends nrSlots and the seed after the
// slot table instead.
func (b *Builder) closeObject(f *frame) error {
	tos := f.headerOffset
	idx := f.memberOffsets

	if len(idx) == 0 {
		b.buf.setByteAt(tos, headEmptyObject)
		b.buf.truncateTo(tos + 1)
		return nil
	}

	if f.compact || len(idx) == 1 {
		ok, err := b.closeCompact(f, false)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	table, err := b.computeCuckooHash(f)
	if err != nil {
		return err
	}
	nrSlots := len(table.slots)

	pos := b.buf.len()
	w := chooseWidthObject(pos-tos, nrSlots)

	if w == 1 {
		b.buf.shiftLeft(tos+5, tos+9)
		for i := range idx {
			idx[i] -= 4
		}
		for i := range table.slots {
			if table.slots[i] != 0 {
				table.slots[i] -= 4
			}
		}
	}

	tableBase := b.buf.growBy(w * nrSlots)
	for i, off := range table.slots {
		b.buf.putUintLEAt(tableBase+w*i, uint64(off), w)
	}

	switch w {
	case 1:
		// head stays 0x0b, already provisional.
	case 2:
		b.buf.setByteAt(tos, headObjectIndexed2)
	case 4:
		b.buf.setByteAt(tos, headObjectIndexed4)
		b.buf.appendLength(uint64(nrSlots), 4)
		b.buf.appendLength(uint64(table.seed), 1)
	case 8:
		b.buf.setByteAt(tos, headObjectIndexed8)
		b.buf.appendLength(uint64(len(idx)), 8)
		b.buf.appendLength(uint64(nrSlots), 8)
		b.buf.appendLength(uint64(table.seed), 1)
	}

	pos = b.buf.len()
	b.buf.putUintLEAt(tos+1, uint64(pos-tos), w)

	if w < 8 {
		b.buf.putUintLEAt(tos+1+w, uint64(len(idx)), w)
		if w < 4 {
			base := 3
			if w == 2 {
				base = 5
			}
			b.buf.putUintLEAt(tos+base, uint64(nrSlots), w)
			b.buf.setByteAt(tos+base+w, table.seed)
		}
	}
	return nil
}

// chooseWidthObject picks the minimal offset width for a cuckoo-indexed
// object whose body (including the 9 reserved bytes) currently spans
// bodyLen bytes and whose table has nrSlots entries.
func chooseWidthObject(bodyLen, nrSlots int) int {
	if bodyLen+nrSlots-4 <= 0xff {
		return 1
	}
	if bodyLen+2*nrSlots <= 0xffff {
		return 2
	}
	if bodyLen+4*nrSlots <= 0xffffffff {
		return 4
	}
	return 8
}
