package parallel

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestJobsClampsToMaxAndAuto(t *testing.T) {
	if got := Jobs(4); got != 4 {
		t.Errorf("Jobs(4) = %d, want 4", got)
	}
	if got := Jobs(MaxJobs + 100); got != MaxJobs {
		t.Errorf("Jobs(overlarge) = %d, want %d", got, MaxJobs)
	}
	if got := Jobs(0); got < 1 {
		t.Errorf("Jobs(0) = %d, want >= 1", got)
	}
}

func TestChunksCoverRangeExactlyOnce(t *testing.T) {
	const n = 1000
	for _, workers := range []int{1, 3, 7, 64, 1000, 5000} {
		chunks := Chunks(n, workers)
		var total uint64
		var prevHi uint64
		for i, c := range chunks {
			if c.Lo != prevHi {
				t.Fatalf("workers=%d: chunk %d starts at %d, want %d", workers, i, c.Lo, prevHi)
			}
			if c.Hi < c.Lo {
				t.Fatalf("workers=%d: chunk %d has Hi < Lo", workers, i)
			}
			total += c.Len()
			prevHi = c.Hi
		}
		if total != n {
			t.Errorf("workers=%d: chunks cover %d indices, want %d", workers, total, n)
		}
		if prevHi != n {
			t.Errorf("workers=%d: last chunk ends at %d, want %d", workers, prevHi, n)
		}
	}
}

func TestChunksNeverExceedsN(t *testing.T) {
	chunks := Chunks(3, 100)
	if len(chunks) > 3 {
		t.Errorf("Chunks(3, 100) produced %d chunks, want at most 3", len(chunks))
	}
}

func TestChunksZero(t *testing.T) {
	if chunks := Chunks(0, 4); len(chunks) != 0 {
		t.Errorf("Chunks(0, 4) = %v, want none", chunks)
	}
}

func TestRunCoversEveryIndex(t *testing.T) {
	const n = 997 // prime, to exercise uneven chunk sizes
	var mu sync.Mutex
	seen := make([]bool, n)

	err := Run(context.Background(), n, 8, func(ctx context.Context, r Range) error {
		mu.Lock()
		defer mu.Unlock()
		for i := r.Lo; i < r.Hi; i++ {
			seen[i] = true
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("index %d was never visited", i)
		}
	}
}

func TestRunPropagatesWorkerError(t *testing.T) {
	wantErr := errors.New("boom")
	err := Run(context.Background(), 100, 4, func(ctx context.Context, r Range) error {
		if r.Lo == 0 {
			return wantErr
		}
		return nil
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run error = %v, want %v", err, wantErr)
	}
}
