package packable

import (
	"sort"

	"github.com/quickwritereader/vpack/vpack"
)

// Grounded on the teacher's packable_mapPackables.go: a handful of
// map[string]X convenience wrappers plus an ordered-pair variant. vpack's
// cuckoo-indexed object has no dependency on member order the way a
// binary-searched sorted object would, so PackMap's Go-map iteration order
// (randomized per run) is semantically fine; PackMapSorted exists anyway
// for callers that want byte-for-byte reproducible output across runs.

type PackMap map[string]vpack.Packable

func (p PackMap) PackInto(b *vpack.Builder) error {
	if err := b.OpenObject(); err != nil {
		return err
	}
	for k, v := range p {
		if _, err := b.AddKey(k); err != nil {
			return err
		}
		if err := v.PackInto(b); err != nil {
			return err
		}
	}
	return b.Close()
}

type PackMapSorted map[string]vpack.Packable

func (p PackMapSorted) PackInto(b *vpack.Builder) error {
	if err := b.OpenObject(); err != nil {
		return err
	}
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := b.AddKey(k); err != nil {
			return err
		}
		if err := p[k].PackInto(b); err != nil {
			return err
		}
	}
	return b.Close()
}

type PackMapStr map[string]string

func (p PackMapStr) PackInto(b *vpack.Builder) error {
	if err := b.OpenObject(); err != nil {
		return err
	}
	for k, v := range p {
		if err := b.AddKV(k, vpack.NewString(v)); err != nil {
			return err
		}
	}
	return b.Close()
}

type PackMapStrInt64 map[string]int64

func (p PackMapStrInt64) PackInto(b *vpack.Builder) error {
	if err := b.OpenObject(); err != nil {
		return err
	}
	for k, v := range p {
		if err := b.AddKV(k, vpack.NewInt(v)); err != nil {
			return err
		}
	}
	return b.Close()
}

// PackPair is one key/value entry for PackMapOrdered.
type PackPair struct {
	Key   string
	Value vpack.Packable
}

func PP(key string, value vpack.Packable) PackPair {
	return PackPair{Key: key, Value: value}
}

// PackMapOrdered packs Packable values in the order the pairs were given,
// unlike PackMap/PackMapSorted.
type PackMapOrdered []PackPair

func NewPackMapOrdered(pairs ...PackPair) PackMapOrdered {
	return PackMapOrdered(pairs)
}

func (p PackMapOrdered) PackInto(b *vpack.Builder) error {
	if err := b.OpenObject(); err != nil {
		return err
	}
	for _, pair := range p {
		if _, err := b.AddKey(pair.Key); err != nil {
			return err
		}
		if err := pair.Value.PackInto(b); err != nil {
			return err
		}
	}
	return b.Close()
}
