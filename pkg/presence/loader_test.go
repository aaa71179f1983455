package presence

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Loads fixture file", func(t *testing.T) {
		store := loadTestData(t)
		sampleDate := time.Date(2013, time.September, 10, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, []int{10, 11}, store.Users())
		entries, err := store.Entries(10)
		require.NoError(t, err)
		entry, ok := entries.Get(sampleDate)
		require.True(t, ok)
		assert.Equal(t, TimeOfDay{Hour: 9, Minute: 39, Second: 5}, entry.Start)
		assert.Equal(t, 11, store.Rows())
		assert.Equal(t, 2, store.Skipped())
	})

	t.Run("Missing file is source unavailable", func(t *testing.T) {
		store, err := Load(context.Background(), FileSource{Path: "testdata/does_not_exist.csv"})

		assert.Nil(t, store)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Failing source open is source unavailable", func(t *testing.T) {
		source := &stubSource{err: errors.New("denied")}

		_, err := Load(context.Background(), source)

		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Cancelled context does not open the source", func(t *testing.T) {
		source := &stubSource{content: "1,2013-09-10,09:00:00,17:00:00\n"}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Load(ctx, source)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, source.opened)
	})
}

func TestLoadReader(t *testing.T) {
	t.Run("Malformed lines are skipped", func(t *testing.T) {
		input := strings.Join([]string{
			"header",
			"10,2013-09-10,09:39:05",
			"abc,2013-09-10,09:39:05,17:59:52",
			"10,2013-09-10,09:39:05,17:59:52",
			"10,2013-02-30,09:39:05,17:59:52",
			`10,2013"-09-11,09:00:00,17:00:00`,
			"11,2013-09-11,08:00:00,16:00:00",
		}, "\n")

		store, err := LoadReader(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []int{10, 11}, store.Users())
		entries, err := store.Entries(10)
		require.NoError(t, err)
		assert.Equal(t, 1, entries.Len())
	})

	t.Run("Later row for same date wins and keeps position", func(t *testing.T) {
		input := "1,2013-09-10,09:00:00,17:00:00\n" +
			"1,2013-09-11,10:00:00,18:00:00\n" +
			"1,2013-09-10,08:00:00,12:00:00\n"

		store, err := LoadReader(strings.NewReader(input))

		require.NoError(t, err)
		entries, err := store.Entries(1)
		require.NoError(t, err)
		var dates []string
		var starts []string
		for date, entry := range entries.All() {
			dates = append(dates, date.Format(DateLayout))
			starts = append(starts, entry.Start.String())
		}
		assert.Equal(t, []string{"2013-09-10", "2013-09-11"}, dates)
		assert.Equal(t, []string{"08:00:00", "10:00:00"}, starts)
	})

	t.Run("Read error aborts without partial store", func(t *testing.T) {
		store, err := LoadReader(&failingReader{data: "1,2013-09-10,09:00:00,17:00:00\n"})

		assert.Nil(t, store)
		assert.ErrorIs(t, err, ErrSourceUnavailable)
		assert.ErrorIs(t, err, errDiskGone)
	})

	t.Run("Skipped rows are logged with their file line", func(t *testing.T) {
		hook := test.NewGlobal()
		level := log.GetLevel()
		log.SetLevel(log.DebugLevel)
		defer func() {
			log.SetLevel(level)
			hook.Reset()
		}()
		input := "header\n\n\nabc,2013-09-10,09:00:00,17:00:00\n1,2013-09-10,09:00:00,17:00:00\n"

		store, err := LoadReader(strings.NewReader(input))

		require.NoError(t, err)
		assert.Equal(t, []int{1}, store.Users())
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, log.DebugLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "line 4:")
	})

	t.Run("Empty input gives empty store", func(t *testing.T) {
		store, err := LoadReader(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, store.Users())
	})
}
