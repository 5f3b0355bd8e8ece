package vpack

import (
	"encoding/json"
	"testing"

	goccyjson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack/v5"
)

// Grounded on the teacher's access/put_bench_test.go: same comparator set
// (encoding/json, goccy/go-json, json-iterator/go, vmihailenco/msgpack/v5)
// against an equivalent flat/nested payload shape, swapped from PutAccess's
// flat header format onto vpack.Builder's cuckoo-indexed objects.

type benchPayload struct {
	I0 int16             `json:"i0"`
	I1 int16             `json:"i1"`
	F0 bool              `json:"f0"`
	F1 bool              `json:"f1"`
	L0 string            `json:"l0"`
	L1 string            `json:"l1"`
	R0 []byte            `json:"r0"`
	M  map[string]string `json:"m"`
}

var benchFlat = benchPayload{
	I0: 1000, I1: 1001,
	F0: true, F1: false,
	L0: "label-0", L1: "label-1",
	R0: []byte{0, 1, 0xaa},
	M: map[string]string{
		"user": "alice",
		"role": "admin",
		"zone": "eu-west",
	},
}

func buildVpackPayload(b *Builder) error {
	if err := b.OpenObject(); err != nil {
		return err
	}
	if err := b.AddKV("i0", NewInt(int64(benchFlat.I0))); err != nil {
		return err
	}
	if err := b.AddKV("i1", NewInt(int64(benchFlat.I1))); err != nil {
		return err
	}
	if err := b.AddKV("f0", NewBool(benchFlat.F0)); err != nil {
		return err
	}
	if err := b.AddKV("f1", NewBool(benchFlat.F1)); err != nil {
		return err
	}
	if err := b.AddKV("l0", NewString(benchFlat.L0)); err != nil {
		return err
	}
	if err := b.AddKV("l1", NewString(benchFlat.L1)); err != nil {
		return err
	}
	if err := b.AddKV("r0", NewBinary(benchFlat.R0)); err != nil {
		return err
	}
	if _, err := b.AddKey("m"); err != nil {
		return err
	}
	if err := b.OpenObject(); err != nil {
		return err
	}
	for _, k := range []string{"user", "role", "zone"} {
		if err := b.AddKV(k, NewString(benchFlat.M[k])); err != nil {
			return err
		}
	}
	if err := b.Close(); err != nil {
		return err
	}
	return b.Close()
}

func BenchmarkVpackBuilder(b *testing.B) {
	builder := NewBuilder(DefaultOptions())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder.Reset(DefaultOptions())
		if err := buildVpackPayload(builder); err != nil {
			b.Fatal(err)
		}
		_ = builder.Bytes()
	}
}

func BenchmarkVpackBuilderPooled(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder := GetBuilder(DefaultOptions())
		if err := buildVpackPayload(builder); err != nil {
			b.Fatal(err)
		}
		_ = builder.Bytes()
		ReleaseBuilder(builder)
	}
}

func BenchmarkEncodingJSON(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := json.Marshal(benchFlat)
		if err != nil {
			b.Fatal(err)
		}
		_ = out
	}
}

func BenchmarkGoccyJSON(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := goccyjson.Marshal(benchFlat)
		if err != nil {
			b.Fatal(err)
		}
		_ = out
	}
}

func BenchmarkJsoniter(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := jsoniter.Marshal(benchFlat)
		if err != nil {
			b.Fatal(err)
		}
		_ = out
	}
}

func BenchmarkMsgpack(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := msgpack.Marshal(benchFlat)
		if err != nil {
			b.Fatal(err)
		}
		_ = out
	}
}
