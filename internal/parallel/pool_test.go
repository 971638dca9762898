package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// Pool Creation Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
}

func TestPool_CreateZeroWorkers(t *testing.T) {
	pool := NewPool(0)

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

func TestPool_CreateNegativeWorkers(t *testing.T) {
	pool := NewPool(-5)

	expected := runtime.GOMAXPROCS(0)
	if pool.Workers() != expected {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), expected)
	}
}

// =============================================================================
// ForEach Tests
// =============================================================================

func TestPool_ForEach(t *testing.T) {
	pool := NewPool(4)

	numTasks := 100
	hits := make([]int, numTasks)
	var counter atomic.Int64

	err := pool.ForEach(context.Background(), numTasks, func(_ context.Context, i int) error {
		hits[i]++
		counter.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach() error: %v", err)
	}

	if got := counter.Load(); got != int64(numTasks) {
		t.Errorf("counter = %d, want %d", got, numTasks)
	}
	for i, h := range hits {
		if h != 1 {
			t.Errorf("index %d ran %d times", i, h)
		}
	}
}

func TestPool_ForEachEmpty(t *testing.T) {
	pool := NewPool(2)
	called := false
	err := pool.ForEach(context.Background(), 0, func(context.Context, int) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Errorf("ForEach(0) = %v, called = %v", err, called)
	}
}

func TestPool_ForEachLimit(t *testing.T) {
	pool := NewPool(3)

	var active, peak atomic.Int64
	err := pool.ForEach(context.Background(), 30, func(context.Context, int) error {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		active.Add(-1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := peak.Load(); got > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", got)
	}
}

func TestPool_ForEachError(t *testing.T) {
	pool := NewPool(1)
	boom := errors.New("boom")

	var ran atomic.Int64
	err := pool.ForEach(context.Background(), 50, func(_ context.Context, i int) error {
		ran.Add(1)
		if i == 3 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("ForEach() = %v, want %v", err, boom)
	}
	if got := ran.Load(); got >= 50 {
		t.Errorf("ran %d jobs, want the remainder skipped", got)
	}
}

func TestPool_ForEachCanceled(t *testing.T) {
	pool := NewPool(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.ForEach(ctx, 10, func(context.Context, int) error {
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ForEach() = %v, want context.Canceled", err)
	}
}

// =============================================================================
// Map Tests
// =============================================================================

func TestMap_Order(t *testing.T) {
	pool := NewPool(8)
	in := make([]int, 200)
	for i := range in {
		in[i] = i
	}

	out, err := Map(context.Background(), pool, in, func(_ context.Context, v int) (int, error) {
		if v%7 == 0 {
			time.Sleep(100 * time.Microsecond)
		}
		return v * v, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestMap_Error(t *testing.T) {
	pool := NewPool(2)
	boom := errors.New("boom")
	out, err := Map(context.Background(), pool, []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	if !errors.Is(err, boom) || out != nil {
		t.Errorf("Map() = %v, %v, want nil, %v", out, err, boom)
	}
}

func BenchmarkPool_ForEach(b *testing.B) {
	pool := NewPool(0)
	buf := make([]float64, 1024)
	for b.Loop() {
		_ = pool.ForEach(context.Background(), len(buf), func(_ context.Context, i int) error {
			buf[i] = float64(i) * 0.5
			return nil
		})
	}
}
