package testutils

import (
	"sync"

	"clamshell/pkg/clamtypes"
)

// RecordingSession is a session context that records the lifecycle
// callbacks the runtime delivers, for asserting on hook order and
// dispatch paths.
type RecordingSession struct {
	clamtypes.BaseContext

	mu          sync.Mutex
	interactive int
	dispatched  [][]string
}

// OnInteractive implements clamtypes.SessionListener.
func (s *RecordingSession) OnInteractive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactive++
}

// OnDispatch implements clamtypes.SessionListener.
func (s *RecordingSession) OnDispatch(path []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatched = append(s.dispatched, append([]string(nil), path...))
}

// InteractiveCalls reports how many times OnInteractive has fired.
func (s *RecordingSession) InteractiveCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interactive
}

// Dispatched returns the command paths delivered to OnDispatch, in order.
func (s *RecordingSession) Dispatched() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.dispatched))
	copy(out, s.dispatched)
	return out
}
