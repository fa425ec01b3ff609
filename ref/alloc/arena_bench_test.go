package alloc

import "testing"

func BenchmarkArenaAllocate(b *testing.B) {
	a, err := NewArena(1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	defer a.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, err := a.Allocate(64)
		if err != nil {
			b.Fatal(err)
		}
		a.Deallocate(buf, 64) // tail free rewinds, keeping the arena flat
	}
}

func BenchmarkHeapAllocate(b *testing.B) {
	var h Heap

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf, err := h.Allocate(64)
		if err != nil {
			b.Fatal(err)
		}
		h.Deallocate(buf, 64)
	}
}
