package presence

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Load reads the whole source and builds a fresh Store from it.
func Load(ctx context.Context, source Source) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	reader, err := source.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, source.Name(), err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Warnf("failed to close presence source %s: %v", source.Name(), err)
		}
	}()

	store, err := LoadReader(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source.Name(), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Debugf("Loaded %d users from %s (%d rows, %d skipped)", len(store.users), source.Name(), store.rows, store.skipped)
	return store, nil
}

// LoadReader parses comma separated presence rows. Rows that do not parse are
// logged with their 1-based file line and skipped; only a failing reader
// aborts the load.
func LoadReader(r io.Reader) (*Store, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	csvReader.ReuseRecord = true

	store := newStore()
	for {
		fields, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		store.rows++

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			log.Debugf("Skipping malformed record: %v", err)
			store.skipped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
		}

		line, _ := csvReader.FieldPos(0)
		record, err := ParseRecord(line, fields)
		if err != nil {
			if errors.Is(err, ErrFieldCount) {
				// header and footer lines
				log.Tracef("Ignoring line %d with %d fields", line, len(fields))
			} else {
				log.Debugf("Skipping malformed record: %v", err)
			}
			store.skipped++
			continue
		}
		store.put(record)
	}
	return store, nil
}
