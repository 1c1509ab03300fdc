package merchant

import "time"

// ClosedSentinel marks a day the merchant never opens.
const ClosedSentinel = "closed"

// WeeklySchedule maps day keys to a day spec string. A day spec is either
// ClosedSentinel or an ordered list of "HH:MM-HH:MM" ranges separated by
// commas. Ranges crossing midnight are not supported; authoring must split
// them into two days.
type WeeklySchedule map[string]string

// DayKeys is the fixed Sunday-first day enumeration used by schedules.
var DayKeys = []string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// DayKeyFor converts a time.Weekday into the schedule day key.
func DayKeyFor(d time.Weekday) string {
	return DayKeys[int(d)%7]
}

// MinutesOfDay returns the minutes elapsed since local midnight for t.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
