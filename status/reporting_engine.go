package status

import (
	"log"
	"sync"
	"time"

	"festa-server/models/merchant"
)

// Reporter receives malformed-schedule reports.
type Reporter func(merchantID, dayKey string, err error)

func logReporter(merchantID, dayKey string, err error) {
	log.Printf("[StatusEngine] Malformed schedule for merchant=%s day=%s: %v", merchantID, dayKey, err)
}

// Engine wraps the pure classification functions with once-only reporting of
// malformed schedule entries. A bad day spec is reported the first time it is
// seen for a merchant, then degrades silently to closed on every later
// render.
type Engine struct {
	reporter Reporter
	mu       sync.Mutex
	reported map[string]struct{}
}

// NewEngine constructs an Engine. A nil reporter falls back to log output.
func NewEngine(reporter Reporter) *Engine {
	if reporter == nil {
		reporter = logReporter
	}
	return &Engine{
		reporter: reporter,
		reported: make(map[string]struct{}),
	}
}

// Classify classifies a merchant at the given wall-clock time.
func (e *Engine) Classify(m *merchant.Merchant, now time.Time) merchant.StatusResult {
	dayKey := merchant.DayKeyFor(now.Weekday())
	result, err := Classify(m.WeeklySchedule, dayKey, merchant.MinutesOfDay(now))
	if err != nil {
		e.reportOnce(m.MerchantID, dayKey, err)
	}
	return result
}

// VisualState returns the declarative visual value for a merchant.
func (e *Engine) VisualState(m *merchant.Merchant, now time.Time) merchant.VisualState {
	result := e.Classify(m, now)
	return merchant.VisualState{
		StatusClass: string(result.Status),
		PulseClass:  PulseClass(result.Status, Popularity(m.VisitCount)),
	}
}

// CountOpen counts open + closing-soon merchants through Classify.
func (e *Engine) CountOpen(merchants []merchant.Merchant, now time.Time) int {
	count := 0
	for i := range merchants {
		result := e.Classify(&merchants[i], now)
		if result.Status == merchant.StatusOpen || result.Status == merchant.StatusClosingSoon {
			count++
		}
	}
	return count
}

func (e *Engine) reportOnce(merchantID, dayKey string, err error) {
	key := merchantID + ":" + dayKey
	e.mu.Lock()
	_, seen := e.reported[key]
	if !seen {
		e.reported[key] = struct{}{}
	}
	e.mu.Unlock()
	if !seen {
		e.reporter(merchantID, dayKey, err)
	}
}
