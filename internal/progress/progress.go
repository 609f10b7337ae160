// Package progress prints a single-line progress indicator for non-verbose runs.
package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Indicator redraws "<stage> done/total" on one terminal line.
// It is safe for concurrent use; a nil Indicator does nothing.
type Indicator struct {
	mu      sync.Mutex
	w       io.Writer
	stage   string
	done    int
	total   int
	started time.Time
	drawn   bool
}

// New returns an indicator writing to w.
func New(w io.Writer) *Indicator {
	return &Indicator{w: w}
}

// Start begins a stage with total expected steps (0 when unknown).
func (p *Indicator) Start(stage string, total int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stage, p.done, p.total, p.started = stage, 0, total, time.Now()
	p.draw()
}

// Step records one finished unit of the current stage.
func (p *Indicator) Step() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.draw()
}

// Finish ends the current stage and moves to a new line.
func (p *Indicator) Finish() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.drawn {
		return
	}
	_, _ = fmt.Fprintf(p.w, "\r%s %s (%s)\n", p.stage, p.count(), time.Since(p.started).Round(time.Millisecond))
	p.drawn = false
}

func (p *Indicator) draw() {
	_, _ = fmt.Fprintf(p.w, "\r\033[K%s %s", p.stage, p.count())
	p.drawn = true
}

func (p *Indicator) count() string {
	if p.total > 0 {
		return fmt.Sprintf("%d/%d", p.done, p.total)
	}
	return fmt.Sprintf("%d", p.done)
}
