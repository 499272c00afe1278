package tracer

import (
	"math/rand"
	"sort"
	"sync"
	"testing"
)

func TestSplitRowsCoversEveryRowExactlyOnce(t *testing.T) {
	for _, workers := range []int{1, 3, 7, 100} {
		jobs := SplitRows(37, workers)

		seen := make([]bool, 37)
		for _, j := range jobs {
			for y := j.Y0; y < j.Y1; y++ {
				if seen[y] {
					t.Fatalf("[workers=%d] row %d covered by more than one job", workers, y)
				}
				seen[y] = true
			}
		}
		for y, ok := range seen {
			if !ok {
				t.Fatalf("[workers=%d] row %d not covered by any job", workers, y)
			}
		}
	}
}

func TestSplitRowsNeverExceedsRowCount(t *testing.T) {
	jobs := SplitRows(3, 16)
	if len(jobs) > 3 {
		t.Fatalf("expected at most 3 jobs for a 3-row frame; got %d", len(jobs))
	}
}

func TestRunVisitsEveryJob(t *testing.T) {
	jobs := SplitRows(50, 4)

	var mu sync.Mutex
	var visited []int

	Run(jobs, 4, func(job RowJob) {
		mu.Lock()
		visited = append(visited, job.Y0)
		mu.Unlock()
	})

	sort.Ints(visited)
	if len(visited) != len(jobs) {
		t.Fatalf("expected %d jobs visited, got %d", len(jobs), len(visited))
	}
}

func TestRunIsDeterministicByRowRegardlessOfWorkerCount(t *testing.T) {
	const height = 20
	jobs := SplitRows(height, 5)

	draw := func(workers int) []float32 {
		results := make([]float32, height)
		var mu sync.Mutex
		Run(jobs, workers, func(job RowJob) {
			for y := job.Y0; y < job.Y1; y++ {
				rng := rand.New(rand.NewSource(42 + int64(y)))
				v := rng.Float32()
				mu.Lock()
				results[y] = v
				mu.Unlock()
			}
		})
		return results
	}

	a := draw(1)
	b := draw(6)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("row %d: expected identical draws regardless of worker count; got %f vs %f", i, a[i], b[i])
		}
	}
}
