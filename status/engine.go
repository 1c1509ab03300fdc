package status

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"festa-server/models/merchant"
)

// SOON_THRESHOLD_MINUTES is the window for "closing soon" / "opening soon".
const SOON_THRESHOLD_MINUTES = 30

// Popularity thresholds are strictly greater-than.
const POPULAR_VISITS_THRESHOLD = 20
const VERY_POPULAR_VISITS_THRESHOLD = 40

const LABEL_CLOSED = "Tancat"
const LABEL_CLOSING_SOON_FORMAT = "Tanca en %d min"
const LABEL_OPENING_SOON_FORMAT = "Obre en %d min"
const LABEL_OPEN_FORMAT = "Obert fins a les %s"

// TimeRange is a single open-to-close window within one day, in
// minutes-since-midnight. Open == Close denotes a never-open window.
type TimeRange struct {
	Open  int
	Close int
}

// MalformedScheduleError reports a day spec that could not be parsed.
type MalformedScheduleError struct {
	Spec   string
	Reason string
}

func (e *MalformedScheduleError) Error() string {
	return fmt.Sprintf("malformed schedule %q: %s", e.Spec, e.Reason)
}

// ParseRange parses a "HH:MM-HH:MM" textual range into minute offsets.
func ParseRange(rangeSpec string) (TimeRange, error) {
	parts := strings.Split(rangeSpec, "-")
	if len(parts) != 2 {
		return TimeRange{}, &MalformedScheduleError{Spec: rangeSpec, Reason: "expected open-close pair"}
	}
	open, err := parseClock(parts[0])
	if err != nil {
		return TimeRange{}, &MalformedScheduleError{Spec: rangeSpec, Reason: err.Error()}
	}
	close, err := parseClock(parts[1])
	if err != nil {
		return TimeRange{}, &MalformedScheduleError{Spec: rangeSpec, Reason: err.Error()}
	}
	if close < open {
		return TimeRange{}, &MalformedScheduleError{Spec: rangeSpec, Reason: "close before open"}
	}
	return TimeRange{Open: open, Close: close}, nil
}

// parseClock converts "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range in %q", s)
	}
	if minute < 0 || minute >= 60 {
		return 0, fmt.Errorf("minute out of range in %q", s)
	}
	return hour*60 + minute, nil
}

// ParseDay parses a full day spec ("closed" sentinel or a comma separated
// list of ranges) into its ranges. Ranges keep their listed order; they are
// not required to be sorted or disjoint.
func ParseDay(daySpec string) ([]TimeRange, error) {
	daySpec = strings.TrimSpace(daySpec)
	if daySpec == "" || daySpec == merchant.ClosedSentinel {
		return nil, nil
	}
	var ranges []TimeRange
	for _, spec := range strings.Split(daySpec, ",") {
		r, err := ParseRange(spec)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// FormatClock renders minutes-since-midnight as "H:MM" (no leading zero on
// the hour, zero-padded minute).
func FormatClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// Classify derives the merchant status for a schedule at nowMinutes on the
// given day. A malformed day spec classifies as closed and the parse error
// is returned alongside so callers can report it; the result is always
// usable.
func Classify(schedule merchant.WeeklySchedule, dayKey string, nowMinutes int) (merchant.StatusResult, error) {
	closed := merchant.StatusResult{Status: merchant.StatusClosed, Label: LABEL_CLOSED}

	daySpec, ok := schedule[dayKey]
	if !ok || strings.TrimSpace(daySpec) == merchant.ClosedSentinel {
		return closed, nil
	}

	ranges, err := ParseDay(daySpec)
	if err != nil {
		return closed, err
	}

	// First pass: is any range currently open? The closing minute itself is
	// exclusive, so nowMinutes == Close means closed.
	for _, r := range ranges {
		if r.Open == r.Close {
			continue
		}
		if nowMinutes >= r.Open && nowMinutes < r.Close {
			remaining := r.Close - nowMinutes
			if remaining <= SOON_THRESHOLD_MINUTES {
				return merchant.StatusResult{
					Status: merchant.StatusClosingSoon,
					Label:  fmt.Sprintf(LABEL_CLOSING_SOON_FORMAT, remaining),
				}, nil
			}
			return merchant.StatusResult{
				Status: merchant.StatusOpen,
				Label:  fmt.Sprintf(LABEL_OPEN_FORMAT, FormatClock(r.Close)),
			}, nil
		}
	}

	// Second pass: about to open? First qualifying range wins.
	for _, r := range ranges {
		until := r.Open - nowMinutes
		if until > 0 && until <= SOON_THRESHOLD_MINUTES {
			return merchant.StatusResult{
				Status: merchant.StatusOpeningSoon,
				Label:  fmt.Sprintf(LABEL_OPENING_SOON_FORMAT, until),
			}, nil
		}
	}

	return closed, nil
}

// ClassifyAt is Classify keyed by wall-clock time.
func ClassifyAt(schedule merchant.WeeklySchedule, now time.Time) (merchant.StatusResult, error) {
	return Classify(schedule, merchant.DayKeyFor(now.Weekday()), merchant.MinutesOfDay(now))
}

// Popularity maps a visit counter onto its tier.
func Popularity(visitCount int) merchant.Tier {
	if visitCount > VERY_POPULAR_VISITS_THRESHOLD {
		return merchant.TierVeryPopular
	}
	if visitCount > POPULAR_VISITS_THRESHOLD {
		return merchant.TierPopular
	}
	return merchant.TierNormal
}

// PulseClass returns the pulse class for a status+tier combination. A closed
// merchant never pulses regardless of popularity.
func PulseClass(status merchant.Status, tier merchant.Tier) string {
	if status == merchant.StatusClosed {
		return ""
	}
	switch tier {
	case merchant.TierVeryPopular:
		return "pulse-intense glow"
	case merchant.TierPopular:
		return "pulse-fast"
	default:
		return "pulse"
	}
}

// VisualStateFor combines classification and popularity into the declarative
// visual value. Malformed schedules degrade to closed.
func VisualStateFor(m *merchant.Merchant, now time.Time) merchant.VisualState {
	result, _ := ClassifyAt(m.WeeklySchedule, now)
	return merchant.VisualState{
		StatusClass: string(result.Status),
		PulseClass:  PulseClass(result.Status, Popularity(m.VisitCount)),
	}
}

// CountOpen counts the merchants currently open or closing soon. It reuses
// Classify so the count can never drift from the per-merchant status.
func CountOpen(merchants []merchant.Merchant, now time.Time) int {
	count := 0
	for i := range merchants {
		result, _ := ClassifyAt(merchants[i].WeeklySchedule, now)
		if result.Status == merchant.StatusOpen || result.Status == merchant.StatusClosingSoon {
			count++
		}
	}
	return count
}
