package interaction

import (
	"sync"
	"time"
)

// TimerClass groups pending timers by purpose so a whole class can be
// cancelled when a transition supersedes it.
type TimerClass string

const (
	TIMER_SHOW_CARD TimerClass = "show-card"
	TIMER_HIDE_CARD TimerClass = "hide-card"
)

// TimerKey addresses one pending timer: class + entity.
type TimerKey struct {
	Class    TimerClass
	EntityID string
}

// Scheduler manages the debounce timers of the controller. Cancellation is
// idempotent: cancelling a key that never fired, already fired, or was
// already cancelled is a no-op. Tests inject a fake implementation to avoid
// real wall-clock waits.
type Scheduler interface {
	Schedule(key TimerKey, delay time.Duration, fn func())
	Cancel(key TimerKey)
	CancelClass(class TimerClass)
	CancelAll()
}

// TimerScheduler is the production Scheduler on top of time.AfterFunc.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[TimerKey]*time.Timer
}

// NewTimerScheduler creates an empty TimerScheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		timers: make(map[TimerKey]*time.Timer),
	}
}

// Schedule arms a timer for the key, replacing any pending timer under the
// same key.
func (s *TimerScheduler) Schedule(key TimerKey, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[key]; ok {
		timer.Stop()
	}
	s.timers[key] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, key)
		s.mu.Unlock()
		fn()
	})
}

func (s *TimerScheduler) Cancel(key TimerKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[key]; ok {
		timer.Stop()
		delete(s.timers, key)
	}
}

func (s *TimerScheduler) CancelClass(class TimerClass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, timer := range s.timers {
		if key.Class == class {
			timer.Stop()
			delete(s.timers, key)
		}
	}
}

func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}
