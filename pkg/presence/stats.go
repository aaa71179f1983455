package presence

import (
	"fmt"
	"math"
)

const secondsPerDay = 24 * 60 * 60

func SecondsSinceMidnight(t TimeOfDay) int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Interval returns end minus start in seconds. Overnight pairs come out negative.
func Interval(start, end TimeOfDay) int {
	return SecondsSinceMidnight(end) - SecondsSinceMidnight(start)
}

// Mean is the arithmetic mean of items, or 0 for an empty slice.
func Mean(items []int) float64 {
	if len(items) == 0 {
		return 0
	}
	return float64(sum(items)) / float64(len(items))
}

func sum(items []int) int {
	total := 0
	for _, item := range items {
		total += item
	}
	return total
}

// FormatClock renders a number of seconds as H:MM:SS, dropping any fraction.
// Values outside a single day get a "N day(s), " prefix.
func FormatClock(seconds float64) string {
	total := int64(math.Floor(seconds))
	days := total / secondsPerDay
	rem := total % secondsPerDay
	if rem < 0 {
		days--
		rem += secondsPerDay
	}

	clock := fmt.Sprintf("%d:%02d:%02d", rem/3600, rem%3600/60, rem%60)
	if days == 0 {
		return clock
	}
	plural := "s"
	if days == 1 || days == -1 {
		plural = ""
	}
	return fmt.Sprintf("%d day%s, %s", days, plural, clock)
}

// MeanByWeekday returns the mean presence duration in seconds per weekday.
func MeanByWeekday(store *Store, userId int) (WeekdayValues, error) {
	entries, err := store.Entries(userId)
	if err != nil {
		return nil, err
	}
	buckets := GroupByWeekday(entries)
	result := make(WeekdayValues, len(Weekdays))
	for i, day := range Weekdays {
		result[day] = Mean(buckets[i])
	}
	return result, nil
}

// TotalByWeekday returns the summed presence duration in seconds per weekday.
func TotalByWeekday(store *Store, userId int) (WeekdayTotals, error) {
	entries, err := store.Entries(userId)
	if err != nil {
		return nil, err
	}
	buckets := GroupByWeekday(entries)
	result := make(WeekdayTotals, len(Weekdays))
	for i, day := range Weekdays {
		result[day] = sum(buckets[i])
	}
	return result, nil
}

// MeanStartEndByWeekday averages arrival and departure times per weekday.
func MeanStartEndByWeekday(store *Store, userId int) (map[string]StartEnd, error) {
	entries, err := store.Entries(userId)
	if err != nil {
		return nil, err
	}

	var starts, ends [7][]int
	for date, entry := range entries.All() {
		day := WeekdayIndex(date)
		starts[day] = append(starts[day], SecondsSinceMidnight(entry.Start))
		ends[day] = append(ends[day], SecondsSinceMidnight(entry.End))
	}

	result := make(map[string]StartEnd, len(Weekdays))
	for i, day := range Weekdays {
		result[day] = StartEnd{
			Start: FormatClock(Mean(starts[i])),
			End:   FormatClock(Mean(ends[i])),
		}
	}
	return result, nil
}
