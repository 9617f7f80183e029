package input

import (
	"image"
	"sync"
)

// Tracker turns successive held-key snapshots into per-tick states.
// Presses that happen between two Take calls are latched so a tap shorter
// than a tick is still reported as Down once.
type Tracker struct {
	mu          sync.Mutex
	held        Keys
	pending     Keys
	touch       image.Point
	homeBlocked bool
}

// Observe records the keys currently held.
func (t *Tracker) Observe(held Keys) {
	t.mu.Lock()
	t.pending |= held &^ t.held
	t.held = held
	t.mu.Unlock()
}

// Set marks k as held or released without touching the other keys.
func (t *Tracker) Set(k Keys, down bool) {
	t.mu.Lock()
	held := t.held
	if down {
		held |= k
	} else {
		held &^= k
	}
	t.pending |= held &^ t.held
	t.held = held
	t.mu.Unlock()
}

// SetTouch reports the pointer on the bottom surface, or its release.
func (t *Tracker) SetTouch(p image.Point, down bool) {
	t.Set(KeyTouch, down)
	if down {
		t.mu.Lock()
		t.touch = p
		t.mu.Unlock()
	}
}

// BlockHome latches a refused home request for the next Take.
func (t *Tracker) BlockHome() {
	t.mu.Lock()
	t.homeBlocked = true
	t.mu.Unlock()
}

// Take returns the state for one tick and clears latched presses.
func (t *Tracker) Take() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := State{Held: t.held, Down: t.pending, HomeBlocked: t.homeBlocked}
	if t.held.Has(KeyTouch) {
		st.Touch = t.touch
	}
	t.pending = 0
	t.homeBlocked = false
	return st
}
