package presence

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrSourceUnavailable = errors.New("presence source unavailable")
)

// TimeOfDay is a wall clock reading with whole-second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// timeOfDayPattern rejects anything after the seconds field; time.Parse would
// otherwise accept a fractional second suffix.
var timeOfDayPattern = regexp.MustCompile(`^\d{1,2}:\d{2}:\d{2}$`)

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	if !timeOfDayPattern.MatchString(value) {
		return TimeOfDay{}, fmt.Errorf("time %q does not match HH:MM:SS", value)
	}
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return TimeOfDay{}, err
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Entry is a single clock-in/clock-out pair. Start is not required to precede End.
type Entry struct {
	Start TimeOfDay
	End   TimeOfDay
}

type Record struct {
	UserId int
	Date   time.Time
	Entry
}

// Weekdays lists the abbreviations used as result keys, Monday first.
var Weekdays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayIndex maps a date onto Monday=0 ... Sunday=6.
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

// WeekdayValues holds per-weekday means keyed by Weekdays abbreviations.
type WeekdayValues map[string]float64

// WeekdayTotals holds per-weekday sums keyed by Weekdays abbreviations.
type WeekdayTotals map[string]int

type StartEnd struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
