// Package tracer distributes a render across a pool of CPU worker
// goroutines, splitting the frame into row ranges and processing them
// concurrently. It is grounded on the worker-pool-over-a-job-channel
// pattern used throughout the example pack's concurrent ray tracers (see
// the parallel-raytracer reference in the example pack), generalized from a
// per-pixel job queue to per-row-range jobs so a single job amortizes a
// row's worth of camera-ray setup. The teacher's GPU-device block
// scheduler (which balanced row counts across heterogeneous compute
// backends by their measured speed) has no counterpart here: every worker
// is an equally fast CPU goroutine, so rows are split evenly instead.
package tracer

import "sync"

// RowJob is one unit of work: render every row in [Y0,Y1).
type RowJob struct {
	Y0, Y1 int
}

// SplitRows divides [0,height) into at most workers row ranges of roughly
// equal size. It never returns more ranges than there are rows. Job
// boundaries depend only on height and workers, not on scheduling order, so
// callers that key their own per-row RNG streams off row index (rather than
// job index) get output independent of worker count.
func SplitRows(height, workers int) []RowJob {
	if workers < 1 {
		workers = 1
	}
	if workers > height {
		workers = height
	}

	base := height / workers
	rem := height % workers

	jobs := make([]RowJob, 0, workers)
	y := 0
	for i := 0; i < workers; i++ {
		h := base
		if i < rem {
			h++
		}
		if h == 0 {
			continue
		}
		jobs = append(jobs, RowJob{Y0: y, Y1: y + h})
		y += h
	}
	return jobs
}

// Run fans jobs out across workers goroutines, calling render once per job.
// render is responsible for any randomness it needs; it carries no implicit
// ordering guarantees across jobs, so it must not share mutable state with
// other jobs. Run blocks until every job has completed.
func Run(jobs []RowJob, workers int, render func(job RowJob)) {
	if workers < 1 {
		workers = 1
	}

	queue := make(chan RowJob, len(jobs))
	for _, j := range jobs {
		queue <- j
	}
	close(queue)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				render(job)
			}
		}()
	}
	wg.Wait()
}
