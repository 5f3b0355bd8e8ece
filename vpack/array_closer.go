package vpack

// closeArray finalizes an array frame: detects the empty, single-element,
// and equal-stride special cases, otherwise builds a dense offset table,
// picks the minimal offset width, and rewrites the header in place.
//
// Grounded on original_source/src/Builder.cpp's closeArray/closeCompact-
// ArrayOrObject: the offset arithmetic below (byte length includes the
// head byte, the w==1 memmove distance, the table-vs-stride tie-break)
// follows that source exactly, since spec.md's own worked byte example
// for the indexed-array case does not reconcile with its own formulas —
// see DESIGN.md.
func (b *Builder) closeArray(f *frame) error {
	tos := f.headerOffset
	idx := f.memberOffsets

	if len(idx) == 0 {
		b.buf.setByteAt(tos, headEmptyArray)
		b.buf.truncateTo(tos + 1)
		return nil
	}

	if f.compact {
		ok, err := b.closeCompact(f, true)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	needTable, needCount := arrayNeedsTable(idx, b.buf.len()-tos)

	pos := b.buf.len()
	var w int
	if needTable {
		w = chooseWidthIndexed(pos-tos, len(idx))
	} else {
		w = chooseWidthStride(pos - tos)
	}

	if w == 1 {
		targetPos := 2
		if needTable {
			targetPos = 3
		}
		b.buf.shiftLeft(tos+targetPos, tos+9)
		if needTable {
			diff := 9 - targetPos
			for i := range idx {
				idx[i] -= diff
			}
		}
	}

	if needTable {
		tableBase := b.buf.growBy(w * len(idx))
		for i, off := range idx {
			b.buf.putUintLEAt(tableBase+w*i, uint64(off), w)
		}
		if w == 8 {
			b.buf.appendLength(uint64(len(idx)), 8)
		}
		b.buf.setByteAt(tos, headArrayIndexed1+widthLog2(offsetWidth(w)))
	} else {
		b.buf.setByteAt(tos, headArrayStride1+widthLog2(offsetWidth(w)))
	}

	pos = b.buf.len()
	b.buf.putUintLEAt(tos+1, uint64(pos-tos), w)
	if w < 8 && needCount {
		b.buf.putUintLEAt(tos+1+w, uint64(len(idx)), w)
	}
	return nil
}

// arrayNeedsTable implements spec §4.4 step 3 / original_source's
// closeArray equal-stride check, preserving its exact tie-break: the last
// member's distance to the end of the body is compared against the
// common stride, not against the second-to-last member's distance.
func arrayNeedsTable(idx []int, bodyLen int) (needTable, needCount bool) {
	if len(idx) == 1 {
		return false, false
	}
	stride := idx[1] - idx[0]
	if bodyLen-idx[len(idx)-1] != stride {
		return true, true
	}
	for i := 1; i < len(idx)-1; i++ {
		if idx[i+1]-idx[i] != stride {
			return true, true
		}
	}
	return false, false
}

// chooseWidthIndexed picks the minimal offset width for an indexed array
// of n members whose body (including the 9 reserved bytes) currently
// spans bodyLen bytes.
func chooseWidthIndexed(bodyLen, n int) int {
	if bodyLen+n-6 <= 0xff {
		return 1
	}
	if bodyLen+2*n <= 0xffff {
		return 2
	}
	if bodyLen+4*n <= 0xffffffff {
		return 4
	}
	return 8
}

// chooseWidthStride picks the minimal offset width for an equal-stride
// array (no table, so no per-member width cost beyond the header fields).
func chooseWidthStride(bodyLen int) int {
	if bodyLen-7 <= 0xff {
		return 1
	}
	if bodyLen <= 0xffff {
		return 2
	}
	if bodyLen <= 0xffffffff {
		return 4
	}
	return 8
}
