package vpack

// compoundKind distinguishes the two compound shapes a frame can hold.
type compoundKind uint8

const (
	kindArray compoundKind = iota
	kindObject
)

// frame tracks one currently-open compound. memberOffsets holds, for each
// appended member, its byte offset relative to headerOffset — for objects
// this is the offset of the member's key, not its value (spec §3).
type frame struct {
	kind          compoundKind
	headerOffset  int
	memberOffsets []int
	keyWritten    bool // object frames only: true between add(key) and add(value)
	compact       bool // opened with the unindexed/compact hint
}

// nestingStack is depth-indexed storage for open compounds. Per spec §9,
// the per-depth memberOffsets backing array is retained across pop+push so
// a close-then-reopen at the same depth costs no allocation. Grounded on
// the teacher's PutAccess.offsets []byte, an append-only vector that is
// resliced to length 0 on reuse (access/put.go's GetPutAccess) rather than
// freed — same idiom, generalized to a vector of frames each owning its
// own reusable vector.
type nestingStack struct {
	frames []frame // len(frames) is a high-water mark, NOT the current depth
	depth  int
}

func (s *nestingStack) len() int { return s.depth }

func (s *nestingStack) top() *frame {
	if s.depth == 0 {
		return nil
	}
	return &s.frames[s.depth-1]
}

func (s *nestingStack) at(i int) *frame {
	return &s.frames[i]
}

// push opens a new frame at the current depth, reusing a previously
// popped frame's memberOffsets slice when one exists at that depth.
func (s *nestingStack) push(kind compoundKind, headerOffset int, compact bool) *frame {
	if s.depth < len(s.frames) {
		f := &s.frames[s.depth]
		f.kind = kind
		f.headerOffset = headerOffset
		f.memberOffsets = f.memberOffsets[:0]
		f.keyWritten = false
		f.compact = compact
		s.depth++
		return f
	}
	s.frames = append(s.frames, frame{
		kind:         kind,
		headerOffset: headerOffset,
		compact:      compact,
	})
	s.depth++
	return &s.frames[s.depth-1]
}

// pop closes the innermost frame. The frame's memberOffsets backing array
// is left in place (not truncated from s.frames) for the next push to
// reuse.
func (s *nestingStack) pop() {
	if s.depth == 0 {
		return
	}
	s.depth--
}

// reset clears the stack to depth 0 without discarding any retained
// memberOffsets backing arrays, for Builder.Reset.
func (s *nestingStack) reset() {
	s.depth = 0
}

func (f *frame) addMemberOffset(off int) {
	f.memberOffsets = append(f.memberOffsets, off)
}
