package presence

// GroupByWeekday buckets the durations of a user's entries by weekday,
// Monday first. Durations keep the order of the entries.
func GroupByWeekday(entries *Entries) [7][]int {
	var result [7][]int
	for i := range result {
		result[i] = []int{}
	}
	for date, entry := range entries.All() {
		day := WeekdayIndex(date)
		result[day] = append(result[day], Interval(entry.Start, entry.End))
	}
	return result
}
