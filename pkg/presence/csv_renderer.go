package presence

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type StatsRenderer interface {
	RenderMeans(values WeekdayValues) (string, error)
	RenderTotals(totals WeekdayTotals) (string, error)
	RenderStartEnd(startEnd map[string]StartEnd) (string, error)
}

// CsvStatsRendererImpl renders weekday statistics as CSV, one row per weekday
// starting with Monday.
type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

func (r *CsvStatsRendererImpl) RenderMeans(values WeekdayValues) (string, error) {
	data := [][]string{{"Weekday", "Mean presence (s)"}}
	for _, day := range Weekdays {
		data = append(data, []string{day, strconv.FormatFloat(values[day], 'f', -1, 64)})
	}
	return writeCsv(data)
}

func (r *CsvStatsRendererImpl) RenderTotals(totals WeekdayTotals) (string, error) {
	data := [][]string{{"Weekday", "Presence (s)"}}
	for _, day := range Weekdays {
		data = append(data, []string{day, strconv.Itoa(totals[day])})
	}
	return writeCsv(data)
}

func (r *CsvStatsRendererImpl) RenderStartEnd(startEnd map[string]StartEnd) (string, error) {
	data := [][]string{{"Weekday", "Start", "End"}}
	for _, day := range Weekdays {
		data = append(data, []string{day, clockOrZero(startEnd[day].Start), clockOrZero(startEnd[day].End)})
	}
	return writeCsv(data)
}

func clockOrZero(value string) string {
	if value == "" {
		return FormatClock(0)
	}
	return value
}

func writeCsv(data [][]string) (string, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
