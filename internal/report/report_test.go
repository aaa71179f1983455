package report

import (
	"strings"
	"testing"

	"github.com/presence-analyzer/presence-analyzer/pkg/presence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals(t *testing.T) {
	out := Totals(presence.WeekdayTotals{"Thu": 45968, "Fri": 6426})

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Contains(t, lines[0], "Weekday")
	assert.Contains(t, lines[4], "Thu")
	assert.Contains(t, lines[4], "45968")
	assert.Contains(t, lines[4], "12:46:08")
	assert.Contains(t, lines[5], "6426")
	assert.Contains(t, lines[7], "Sun")
}

func TestMeans(t *testing.T) {
	out := Means(presence.WeekdayValues{"Thu": 22984})

	assert.Contains(t, out, "22984")
	assert.Contains(t, out, "6:23:04")
}

func TestStartEnd(t *testing.T) {
	out := StartEnd(map[string]presence.StartEnd{
		"Fri": {Start: "13:16:56", End: "15:04:02"},
	})

	assert.Contains(t, out, "13:16:56")
	assert.Contains(t, out, "15:04:02")
}

func TestUsers(t *testing.T) {
	out := Users([]int{10, 11})

	assert.Contains(t, out, "User 10")
	assert.Contains(t, out, "User 11")
}

func TestIsEmptyRow(t *testing.T) {
	assert.True(t, isEmptyRow([]string{"Sat", "0", "0:00:00"}))
	assert.False(t, isEmptyRow([]string{"Fri", "6426", "1:47:06"}))
}
