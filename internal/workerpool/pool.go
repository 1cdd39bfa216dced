package workerpool

import "runtime"

// MaxBatch is the largest number of jobs Run will ever fan out in one call,
// mirroring the encoder's batch-of-16384 grouping (§4.2 step 3).
const MaxBatch = 1 << 14

// Job is one unit of work submitted to Run. index is the job's position in
// the batch, used only to place its Result back in order.
type Job struct {
	Index int
	Run   func() ([]byte, error)
}

// Result is the outcome of one Job, always returned at Results[job.Index].
type Result struct {
	Output []byte
	Err    error
}

// numWorkers is a package variable instead of a constant so tests can pin a
// deterministic worker count.
var numWorkers = runtime.GOMAXPROCS(0)

// Run executes jobs across a fixed pool of goroutines and returns their
// results indexed exactly as submitted — caller index 3 always lands at
// Results[3], no matter which worker finished it or when. A workers value
// <= 0 falls back to GOMAXPROCS.
func Run(jobs []Job, workers int) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	if workers <= 0 {
		workers = numWorkers
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobCh := make(chan Job, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	done := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		go func() {
			for j := range jobCh {
				out, err := j.Run()
				results[j.Index] = Result{Output: out, Err: err}
			}
			done <- struct{}{}
		}()
	}

	for i := 0; i < workers; i++ {
		<-done
	}

	return results
}
