package comment

import "sync/atomic"

// FadeTrigger is the one-shot flag raised when a comment's status changes
// and cleared by the next bind. The zero value is quiescent.
type FadeTrigger struct {
	pending atomic.Bool
}

// Arm marks a status transition. Arming an already pending trigger still
// yields a single animation.
func (f *FadeTrigger) Arm() {
	f.pending.Store(true)
}

// Consume reports whether a transition is pending and clears it.
func (f *FadeTrigger) Consume() bool {
	return f.pending.Swap(false)
}

// Pending reports the current state without clearing it.
func (f *FadeTrigger) Pending() bool {
	return f.pending.Load()
}
