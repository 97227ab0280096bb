package clipboard

import (
	"sync"
	"time"
)

// NoticeDuration is how long the "Copied!" affordance stays visible before
// reverting.
const NoticeDuration = 2 * time.Second

// Notice is the transient confirmation shown after a successful copy. It is
// a UI timer, not a correctness concern, but the revert delay is part of the
// observable contract.
type Notice struct {
	mu     sync.Mutex
	active bool

	// schedule is a seam for tests; it defaults to time.AfterFunc.
	schedule func(d time.Duration, fn func()) *time.Timer
}

// NewNotice returns an inactive notice.
func NewNotice() *Notice {
	return &Notice{schedule: time.AfterFunc}
}

// Trigger activates the notice and schedules its revert.
func (n *Notice) Trigger() {
	n.mu.Lock()
	n.active = true
	n.mu.Unlock()
	n.schedule(NoticeDuration, func() {
		n.mu.Lock()
		n.active = false
		n.mu.Unlock()
	})
}

// Active reports whether the notice is currently shown.
func (n *Notice) Active() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}
