package ui

import (
	"errors"
	"sync"
)

const (
	// RevealMarkerClass tags elements that animate in when scrolled into view
	RevealMarkerClass = "animate-on-scroll"
	// RevealedClass is added once and never removed
	RevealedClass = "animate-slide-up"

	DefaultRevealThreshold = 0.1
)

var ErrInvalidThreshold = errors.New("threshold must be within [0,1]")

// RevealFlag is the one-way visibility state of a single element
type RevealFlag struct {
	revealed bool
}

// Reveal moves the flag to revealed. It reports false when it already was.
func (f *RevealFlag) Reveal() bool {
	if f.revealed {
		return false
	}
	f.revealed = true
	return true
}

func (f *RevealFlag) Revealed() bool {
	return f.revealed
}

// RevealObserver watches a fixed set of elements and reveals each one the
// first time it is at least threshold visible. After Disconnect every
// intersection is ignored; flags that were set stay set.
type RevealObserver struct {
	threshold    float64
	flags        map[string]*RevealFlag
	disconnected bool
	mu           sync.Mutex
}

func NewRevealObserver(threshold float64, ids ...string) (*RevealObserver, error) {
	if threshold < 0 || threshold > 1 {
		return nil, ErrInvalidThreshold
	}
	o := &RevealObserver{
		threshold: threshold,
		flags:     make(map[string]*RevealFlag, len(ids)),
	}
	for _, id := range ids {
		o.flags[id] = &RevealFlag{}
	}
	return o, nil
}

// Intersect reports a visibility ratio for an element and returns true only
// when this call revealed it.
func (o *RevealObserver) Intersect(id string, ratio float64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.disconnected || ratio <= 0 || ratio < o.threshold {
		return false
	}
	flag, ok := o.flags[id]
	if !ok {
		return false
	}
	return flag.Reveal()
}

func (o *RevealObserver) Revealed(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	flag, ok := o.flags[id]
	return ok && flag.Revealed()
}

// Disconnect stops the observer. Calling it twice is harmless.
func (o *RevealObserver) Disconnect() {
	o.mu.Lock()
	o.disconnected = true
	o.mu.Unlock()
}
