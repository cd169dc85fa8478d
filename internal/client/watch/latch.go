// Package watch drives a pending join attempt to exactly one terminal
// outcome by racing the push event stream against a polling loop.
package watch

import (
	"sync"

	"github.com/dkrasnenko/sharedtab/internal/client/models"
)

// Signal sources recorded by the latch.
const (
	SourcePush = "push"
	SourcePoll = "poll"
)

// OutcomeLatch is a single-assignment cell for a join attempt's outcome.
// Two independent signal sources deliver the same real-world fact; exactly
// one settle call wins and every later one is a no-op. The latch has no side
// effects of its own — callers use the returned boolean to decide whether
// to act.
type OutcomeLatch struct {
	mu      sync.Mutex
	outcome *models.Outcome
	source  string
}

func NewOutcomeLatch() *OutcomeLatch {
	return &OutcomeLatch{}
}

// TryResolve settles the latch with outcome, attributed to source. It
// returns true only for the call that actually settled it.
func (l *OutcomeLatch) TryResolve(source string, outcome models.Outcome) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.outcome != nil {
		return false
	}
	l.outcome = &outcome
	l.source = source
	return true
}

// Resolved reports whether the latch has settled.
func (l *OutcomeLatch) Resolved() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.outcome != nil
}

// Outcome returns the settled outcome and the winning source.
func (l *OutcomeLatch) Outcome() (models.Outcome, string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.outcome == nil {
		return models.Outcome{}, "", false
	}
	return *l.outcome, l.source, true
}
