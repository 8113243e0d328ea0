package harness

import (
	"fmt"
	"sync"
)

// Output captures the lines a demonstration emits, in order.
//
// Each invocation gets its own Output, so concurrent Run calls never
// interleave captured lines. The mutex matters only when a wall-clock
// bound is enforced: the watchdog may snapshot lines while an abandoned
// callable is still writing.
type Output struct {
	mu    sync.Mutex
	lines []string
}

// NewOutput creates an empty capture buffer.
func NewOutput() *Output {
	return &Output{}
}

// Println records one output line.
func (o *Output) Println(line string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, line)
}

// Printf formats and records one output line.
func (o *Output) Printf(format string, args ...any) {
	o.Println(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the captured lines in emission order.
func (o *Output) Lines() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	snapshot := make([]string, len(o.lines))
	copy(snapshot, o.lines)
	return snapshot
}

// Len returns the number of captured lines.
func (o *Output) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.lines)
}
