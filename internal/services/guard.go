package services

import (
	"sync"
	"time"
)

type GuardState string

const (
	GuardIdle  GuardState = "idle"
	GuardArmed GuardState = "armed"
)

// DefaultGuardTimeout is how long an armed clear confirmation stays live.
const DefaultGuardTimeout = 3 * time.Second

// ClearGuard gates a destructive action behind a second confirming request.
// The first request arms the guard and starts a countdown; a second request
// while armed confirms. The countdown, a confirmation, or an external Disarm
// all return the guard to idle.
type ClearGuard struct {
	mu         sync.Mutex
	timeout    time.Duration
	state      GuardState
	timer      *time.Timer
	generation uint64
}

func NewClearGuard(timeout time.Duration) *ClearGuard {
	if timeout <= 0 {
		timeout = DefaultGuardTimeout
	}
	return &ClearGuard{timeout: timeout, state: GuardIdle}
}

// Request reports whether the caller should execute the guarded action:
// false arms the guard, true means this request confirmed an armed one.
func (g *ClearGuard) Request() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == GuardArmed {
		g.disarmLocked()
		return true
	}

	g.state = GuardArmed
	g.generation++
	gen := g.generation
	g.timer = time.AfterFunc(g.timeout, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		// A stale timer from an earlier armed period must not disarm a
		// newer one.
		if g.generation == gen && g.state == GuardArmed {
			g.state = GuardIdle
			g.timer = nil
		}
	})
	return false
}

// Disarm cancels any pending confirmation without executing anything.
func (g *ClearGuard) Disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disarmLocked()
}

func (g *ClearGuard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *ClearGuard) disarmLocked() {
	g.state = GuardIdle
	g.generation++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}
