package vpack

import (
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// seedTable supplies the three per-seed mixing constants XXH64 is combined
// with to derive each of the cuckoo hash's three probe positions. The
// original source indexes a fixed arangodb-internal Slice::seedTable[]
// that was not part of the retrieved excerpt, so this table is instead
// generated once, deterministically, via a splitmix64 stream — any fixed
// deterministic table satisfies spec §9's only real requirement
// ("identical inputs yield identical output bytes; never seed from time
// or address").
var seedTable [256 * 3]uint64

func init() {
	state := uint64(0x9E3779B97F4A7C15)
	for i := range seedTable {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z ^= z >> 31
		seedTable[i] = z
	}
}

// fastModulo32 is Lemire's 32-bit reciprocal-multiplication modulo, used
// in place of h%S when S fits in 24 bits (spec §9's micro-optimization).
func fastModulo32(h uint64, s uint64) uint64 {
	return (uint64(uint32(h)) * s) >> 32
}

// cuckooTable is the result of a successful cuckoo-hash construction: a
// slot array (0 = empty, else a member offset relative to the object's
// headerOffset) plus the seed that produced it.
type cuckooTable struct {
	slots []int
	seed  byte
}

// computeCuckooHash builds the 3-way cuckoo hash table over f's member
// keys, per spec §4.6. Grounded on original_source/src/Builder.cpp's
// computeCuckooHash, with XXH64's seed (which cespare/xxhash/v2 does not
// expose directly — it only implements the unseeded Sum64) folded in by
// XORing the digest with the per-seed table entry rather than passed to
// the hash function itself; this keeps the three probe functions
// independent per seed while staying on the one XXH64 binding present in
// the retrieval pack.
func (b *Builder) computeCuckooHash(f *frame) (cuckooTable, error) {
	n := len(f.memberOffsets)
	nrSlots := n + (n*3)/20 + 1
	if nrSlots < 1 {
		nrSlots = 1
	}

	rng := rand.New(rand.NewSource(123456789))

	// searchLimit is computed once, from the initial nrSlots, and never
	// recomputed as nrSlots grows below — a literal quirk of
	// original_source/src/Builder.cpp:852-853, kept as-is rather than
	// "fixed" to recompute per enlargement.
	searchLimit := nrSlots * 3
	if nrSlots >= 400 {
		searchLimit = 1200 + int(math.Sqrt(float64(nrSlots)))
	}

	for {
		for seedInt := 0; seedInt < 256; seedInt++ {
			seed := byte(seedInt)
			slots := make([]int, nrSlots)
			ok, err := b.cuckooInsertAll(f, slots, seed, nrSlots, searchLimit, rng)
			if err != nil {
				return cuckooTable{}, err
			}
			if ok {
				return cuckooTable{slots: slots, seed: seed}, nil
			}
		}
		nrSlots = nrSlots * 110 / 100
		if nrSlots < 1 {
			nrSlots = 1
		}
	}
}

func (b *Builder) cuckooInsertAll(f *frame, slots []int, seed byte, nrSlots, searchLimit int, rng *rand.Rand) (bool, error) {
	for _, off := range f.memberOffsets {
		ok, err := b.cuckooInsertOne(f, slots, seed, nrSlots, searchLimit, rng, off, b.opts.CheckAttributeUniqueness)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (b *Builder) cuckooInsertOne(f *frame, slots []int, seed byte, nrSlots, searchLimit int, rng *rand.Rand, startOffset int, checkUniqueness bool) (bool, error) {
	small := nrSlots <= 1<<24
	offset := startOffset

	for count := 0; ; count++ {
		name, _, err := b.peekAttributeName(f.headerOffset + offset)
		if err != nil {
			return false, err
		}
		h := xxhash.Sum64(name)

		var p [3]int
		for j := 0; j < 3; j++ {
			hj := h ^ seedTable[3*int(seed)+j]
			if small {
				p[j] = int(fastModulo32(hj, uint64(nrSlots)))
			} else {
				p[j] = int(hj % uint64(nrSlots))
			}
		}

		placed := false
		for j := 0; j < 3; j++ {
			if slots[p[j]] == 0 {
				slots[p[j]] = offset
				placed = true
				break
			}
			if checkUniqueness {
				otherName, _, err := b.peekAttributeName(f.headerOffset + slots[p[j]])
				if err != nil {
					return false, err
				}
				if string(otherName) == string(name) {
					return false, newErr("Close", ErrDuplicateAttributeName)
				}
			}
		}
		if placed {
			return true, nil
		}
		if count >= searchLimit {
			return false, nil
		}

		j := rng.Intn(3)
		evicted := slots[p[j]]
		slots[p[j]] = offset
		offset = evicted
		checkUniqueness = false
	}
}
