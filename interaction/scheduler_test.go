package interaction

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTimerScheduler_FiresAfterDelay(t *testing.T) {
	scheduler := NewTimerScheduler()
	fired := make(chan struct{})

	scheduler.Schedule(TimerKey{Class: TIMER_SHOW_CARD, EntityID: "m1"}, 5*time.Millisecond, func() {
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatalf("Expected the timer to fire")
	}
}

func TestTimerScheduler_CancelPreventsFiring(t *testing.T) {
	scheduler := NewTimerScheduler()
	var fired int32

	key := TimerKey{Class: TIMER_SHOW_CARD, EntityID: "m1"}
	scheduler.Schedule(key, 20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	scheduler.Cancel(key)

	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Errorf("Expected a cancelled timer to stay silent")
	}

	// Cancelling again, or cancelling an unknown key, is a no-op.
	scheduler.Cancel(key)
	scheduler.Cancel(TimerKey{Class: TIMER_HIDE_CARD, EntityID: "ghost"})
}

func TestTimerScheduler_ScheduleReplacesPendingTimer(t *testing.T) {
	scheduler := NewTimerScheduler()
	var fired int32
	done := make(chan struct{})

	key := TimerKey{Class: TIMER_SHOW_CARD, EntityID: "m1"}
	scheduler.Schedule(key, 20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	scheduler.Schedule(key, 5*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Expected the replacement timer to fire")
	}
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&fired); got != 1 {
		t.Errorf("Expected exactly one firing, got %d", got)
	}
}

func TestTimerScheduler_CancelClass(t *testing.T) {
	scheduler := NewTimerScheduler()
	var showFired, hideFired int32
	hideDone := make(chan struct{})

	scheduler.Schedule(TimerKey{Class: TIMER_SHOW_CARD, EntityID: "m1"}, 20*time.Millisecond, func() {
		atomic.AddInt32(&showFired, 1)
	})
	scheduler.Schedule(TimerKey{Class: TIMER_SHOW_CARD, EntityID: "m2"}, 20*time.Millisecond, func() {
		atomic.AddInt32(&showFired, 1)
	})
	scheduler.Schedule(TimerKey{Class: TIMER_HIDE_CARD, EntityID: "m1"}, 20*time.Millisecond, func() {
		atomic.AddInt32(&hideFired, 1)
		close(hideDone)
	})

	scheduler.CancelClass(TIMER_SHOW_CARD)

	select {
	case <-hideDone:
	case <-time.After(time.Second):
		t.Fatalf("Expected the hide timer to survive the class cancel")
	}
	if atomic.LoadInt32(&showFired) != 0 {
		t.Errorf("Expected all show timers to be cancelled")
	}
}

func TestTimerScheduler_CancelAll(t *testing.T) {
	scheduler := NewTimerScheduler()
	var fired int32

	scheduler.Schedule(TimerKey{Class: TIMER_SHOW_CARD, EntityID: "m1"}, 20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})
	scheduler.Schedule(TimerKey{Class: TIMER_HIDE_CARD, EntityID: "m2"}, 20*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	scheduler.CancelAll()

	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Errorf("Expected no timers to fire after CancelAll")
	}
}
