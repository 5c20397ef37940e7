package logging

import "sync"

// Scope is the close handle returned when a logger opens an activity or
// generic scope. Closing renders the matching end line.
type Scope struct {
	once  sync.Once
	close func()
}

func newScope(close func()) *Scope {
	return &Scope{close: close}
}

// Close renders the scope's end line. It fires exactly once; further calls
// are no-ops, so Close can be deferred and also called on an early-exit
// path without double-rendering.
func (s *Scope) Close() {
	s.once.Do(s.close)
}
