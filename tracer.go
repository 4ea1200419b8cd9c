package dbscan

import "time"

// TimingEntry records how long one named phase of a clustering call took.
type TimingEntry struct {
	Label      string
	DurationMS float64
}

// tracer accumulates an ordered list of phase timings for a single
// clustering call. It is single-threaded: scopes are started and stopped
// only on the calling goroutine, never from inside worker closures spawned
// by run.
type tracer struct {
	entries []TimingEntry
}

// start begins timing a phase and returns a function that stops it. Go has
// no destructors, so the scoped-guard pattern from the reference
// implementation's ScopedTimer is realized as an explicit deferred stop:
//
//	stop := tr.start("sort_indices")
//	defer stop()
func (tr *tracer) start(label string) func() {
	begin := time.Now()
	return func() {
		tr.entries = append(tr.entries, TimingEntry{
			Label:      label,
			DurationMS: float64(time.Since(begin)) / float64(time.Millisecond),
		})
	}
}
