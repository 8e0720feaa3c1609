package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 16

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestRangeCoversEveryIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 203
	hits := make([]int32, n)
	Range(n, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Errorf("index %d visited %d times, want 1", i, h)
		}
	}
}

func TestRange_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	calls := 0
	Range(100, func(lo, hi int) {
		calls++
		if lo != 0 || hi != 100 {
			t.Errorf("got chunk [%d, %d), want [0, 100)", lo, hi)
		}
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestRange_SmallChunk(t *testing.T) {
	// Small work units fall back to a single sequential chunk.
	cfg := DefaultConfig()

	calls := 0
	Range(cfg.MinChunkSize, func(_, _ int) {
		calls++
	}, cfg)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestRange_Empty(t *testing.T) {
	Range(0, func(_, _ int) {
		t.Error("f must not be called for n == 0")
	}, DefaultConfig())
}

func BenchmarkRange(b *testing.B) {
	cfg := DefaultConfig()
	data := make([]float64, 1<<20)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Range(len(data), func(lo, hi int) {
				for j := lo; j < hi; j++ {
					data[j] = 1
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			Range(len(data), func(lo, hi int) {
				for j := lo; j < hi; j++ {
					data[j] = 1
				}
			}, cfgSeq)
		}
	})
}
