package harness

import (
	"sync"

	"github.com/roach88/patternlab/internal/catalog"
)

// Status is the terminal state of a single run.
type Status string

const (
	// StatusOK means the demonstration completed and its output was captured.
	StatusOK Status = "ok"

	// StatusFailed means resolution failed or the demonstration faulted.
	StatusFailed Status = "failed"
)

// RunResult is the outcome of executing one demonstration.
//
// The caller owns the result. Output is always the lines captured up to
// the moment the run ended: on a fault, partial output is preserved, never
// discarded.
type RunResult struct {
	// Key identifies the demonstration that was requested.
	Key catalog.Key `json:"key"`

	// RunID correlates this invocation in logs and reports.
	RunID string `json:"run_id"`

	// Seq is the harness clock reading for this run. Within one RunAll
	// batch, sequence numbers are strictly increasing in listed order.
	Seq int64 `json:"seq"`

	// Status is "ok" or "failed".
	Status Status `json:"status"`

	// Output holds the captured lines in emission order.
	Output []string `json:"output"`

	// Error describes the fault when Status is "failed".
	Error string `json:"error,omitempty"`
}

// OK reports whether the run completed successfully.
func (r RunResult) OK() bool {
	return r.Status == StatusOK
}

// Clock numbers runs. The harness ticks it once per invocation.
type Clock interface {
	// Next increments and returns the next sequence number.
	Next() int64
}

// seqClock is the default Clock: a process-local monotonic counter.
type seqClock struct {
	mu  sync.Mutex
	seq int64
}

func (c *seqClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}
