package frame

// Ticker invokes a callback once per frame while active.
//
// Ticker is the low-level timing primitive used by animation drivers.
// The callback receives the current Frame, whose Delta is the elapsed
// time to advance by. Tickers are driven by their scheduler's Step.
type Ticker struct {
	sched  *Scheduler
	fn     func(Frame)
	active bool
}

// NewTicker creates an inactive ticker on this scheduler.
func (s *Scheduler) NewTicker(fn func(Frame)) *Ticker {
	return &Ticker{sched: s, fn: fn}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.fn == nil {
		return
	}
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.active {
		return
	}
	t.active = true
	t.sched.tickers[t] = struct{}{}
}

// Stop deactivates the ticker. Stopping an inactive ticker is a no-op.
func (t *Ticker) Stop() {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if !t.active {
		return
	}
	t.active = false
	delete(t.sched.tickers, t)
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	return t.active
}
