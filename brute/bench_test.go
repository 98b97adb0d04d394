package brute_test

import (
	"testing"

	"github.com/awantae/setpack/brute"
	"github.com/awantae/setpack/core"
)

// chainInstance builds the chain collection: subset i = {i, i+1}.
// Every adjacent pair conflicts, so the sweep rejects roughly half of
// all candidates late rather than early, a reasonable worst-ish case.
func chainInstance(b *testing.B, n int) *core.Instance {
	b.Helper()
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = []int{i, i + 1}
	}
	inst, err := core.InstanceFromInts(rows)
	if err != nil {
		b.Fatalf("fixture: %v", err)
	}

	return inst
}

func BenchmarkMaxPacking_Sequential16(b *testing.B) {
	inst := chainInstance(b, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := brute.MaxPacking(inst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMaxPacking_Parallel16(b *testing.B) {
	inst := chainInstance(b, 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := brute.MaxPacking(inst, brute.WithWorkers(4)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCheckDisjoint(b *testing.B) {
	inst := chainInstance(b, 32)
	sel, err := core.Bitfield(0xAAAAAAAA, 32) // every other subset
	if err != nil {
		b.Fatalf("fixture: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := brute.CheckDisjoint(inst, sel); err != nil {
			b.Fatal(err)
		}
	}
}
