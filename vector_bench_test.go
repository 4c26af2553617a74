package vector

import (
	"testing"
)

func BenchmarkPushBack(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var v Of[int]
		for i := 0; i < 1024; i++ {
			_ = v.PushBack(i)
		}
	}
}

func BenchmarkPushBackReserved(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var v Of[int]
		_ = v.Reserve(1024)
		for i := 0; i < 1024; i++ {
			_ = v.PushBack(i)
		}
	}
}

// baseline: the runtime's own growth
func BenchmarkAppendSlice(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var s []int
		for i := 0; i < 1024; i++ {
			s = append(s, i)
		}
		_ = s
	}
}

func BenchmarkInsertFront(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		var v Of[int]
		for i := 0; i < 256; i++ {
			_, _ = v.Insert(0, i)
		}
	}
}

func BenchmarkEraseFront(b *testing.B) {
	var v Of[int]
	b.ReportAllocs()
	for b.Loop() {
		for i := 0; i < 256; i++ {
			_ = v.PushBack(i)
		}
		for !v.Empty() {
			_, _ = v.Erase(0)
		}
	}
}

func BenchmarkGrowthRelocation(b *testing.B) {
	type record struct {
		key  string
		vals [4]int64
	}
	b.ReportAllocs()
	for b.Loop() {
		var v Of[record]
		for i := 0; i < 512; i++ {
			_ = v.PushBack(record{key: "k", vals: [4]int64{int64(i)}})
		}
	}
}
