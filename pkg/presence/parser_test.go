package presence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	t.Run("Valid row", func(t *testing.T) {
		record, err := ParseRecord(1, []string{"10", "2013-09-10", "09:39:05", "17:59:52"})

		require.NoError(t, err)
		assert.Equal(t, 10, record.UserId)
		assert.Equal(t, time.Date(2013, time.September, 10, 0, 0, 0, 0, time.UTC), record.Date)
		assert.Equal(t, TimeOfDay{Hour: 9, Minute: 39, Second: 5}, record.Start)
		assert.Equal(t, TimeOfDay{Hour: 17, Minute: 59, Second: 52}, record.End)
		assert.Equal(t, "09:39:05", record.Start.String())
	})

	t.Run("Inverted interval is accepted", func(t *testing.T) {
		record, err := ParseRecord(0, []string{"3", "2013-09-10", "22:00:00", "06:00:00"})

		require.NoError(t, err)
		assert.Equal(t, -57600, Interval(record.Start, record.End))
	})

	tests := []struct {
		name   string
		fields []string
		field  string
	}{
		{name: "Too few fields", fields: []string{"10", "2013-09-10", "09:39:05"}},
		{name: "Too many fields", fields: []string{"10", "2013-09-10", "09:39:05", "17:59:52", "x"}},
		{name: "Non numeric user id", fields: []string{"ten", "2013-09-10", "09:39:05", "17:59:52"}, field: "user_id"},
		{name: "Negative user id", fields: []string{"-1", "2013-09-10", "09:39:05", "17:59:52"}, field: "user_id"},
		{name: "Bad date", fields: []string{"10", "2013-13-40", "09:39:05", "17:59:52"}, field: "date"},
		{name: "Bad start", fields: []string{"10", "2013-09-10", "25:00:00", "17:59:52"}, field: "start"},
		{name: "Bad end", fields: []string{"10", "2013-09-10", "09:39:05", "17:59"}, field: "end"},
		{name: "Fractional seconds", fields: []string{"1", "2013-09-10", "09:00:00.5", "17:00:00"}, field: "start"},
		{name: "Comma fraction", fields: []string{"1", "2013-09-10", "09:00:00", "17:00:00,123"}, field: "end"},
		{name: "Trailing text", fields: []string{"1", "2013-09-10", "09:00:00 ", "17:00:00"}, field: "start"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(7, tt.fields)

			var recordErr *RecordError
			require.ErrorAs(t, err, &recordErr)
			assert.Equal(t, 7, recordErr.Line)
			assert.Equal(t, tt.field, recordErr.Field)
			if tt.field == "" {
				assert.ErrorIs(t, err, ErrFieldCount)
			}
		})
	}
}
