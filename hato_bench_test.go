package hato_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/hupe1980/hato"
)

// asI32 keeps the benchmark focused on iteration and cloning rather than
// method work.
type asI32 interface{ AsI32() int32 }

type u8v uint8

func (v u8v) AsI32() int32 { return int32(v) }

type i8v int8

func (v i8v) AsI32() int32 { return int32(v) }

const benchN = 100_000

// buildBench fills a plain slice of boxed values and an arena with the same
// randomized mix of two shapes, using a fixed seed for reproducibility.
func buildBench() ([]asI32, *hato.Hato[asI32, uint32, uint32], []hato.Handle[uint32, uint32]) {
	rng := rand.New(rand.NewSource(0))

	boxes := make([]asI32, 0, benchN)
	arena := hato.New[asI32]()
	handles := make([]hato.Handle[uint32, uint32], 0, benchN)

	for i := 0; i < benchN; i++ {
		if rng.Intn(2) == 0 {
			v := u8v(i)
			boxes = append(boxes, v)
			handles = append(handles, hato.Push(arena, v))
		} else {
			v := i8v(i)
			boxes = append(boxes, v)
			handles = append(handles, hato.Push(arena, v))
		}
	}

	return boxes, arena, handles
}

func sumArena(arena *hato.Hato[asI32, uint32, uint32], handles []hato.Handle[uint32, uint32]) int32 {
	var sum int32
	for _, h := range handles {
		sum += arena.Get(h).AsI32()
	}
	return sum
}

func BenchmarkIterate(b *testing.B) {
	boxes, arena, handles := buildBench()

	b.Run("boxes", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var sum int32
			for _, v := range boxes {
				sum += v.AsI32()
			}
			_ = sum
		}
	})

	b.Run("arena", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = sumArena(arena, handles)
		}
	})

	// Sorting helps with jump target prediction and cache locality.
	sorted := slices.Clone(handles)
	slices.SortFunc(sorted, hato.Handle[uint32, uint32].Compare)

	b.Run("arena_sorted", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = sumArena(arena, sorted)
		}
	})
}

func BenchmarkClone(b *testing.B) {
	boxes, arena, handles := buildBench()

	b.Run("boxes", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = slices.Clone(boxes)
		}
	})

	b.Run("arena", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			c := arena.Clone()
			_ = slices.Clone(handles)
			_ = c
		}
	})
}

func BenchmarkPush(b *testing.B) {
	b.Run("append_boxed", func(b *testing.B) {
		b.ReportAllocs()
		boxes := make([]asI32, 0, b.N)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			boxes = append(boxes, u8v(i))
		}
	})

	b.Run("arena", func(b *testing.B) {
		b.ReportAllocs()
		arena := hato.New[asI32]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = hato.Push(arena, u8v(i))
		}
	})
}
