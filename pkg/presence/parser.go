package presence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const recordFields = 4

var ErrFieldCount = errors.New("wrong number of fields")

// RecordError describes a row that could not be turned into a Record.
type RecordError struct {
	Line  int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: invalid %s: %v", e.Line, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// ParseRecord converts the fields of a single row into a Record. line is the
// 1-based file line of the row and is only used for error reporting.
func ParseRecord(line int, fields []string) (Record, error) {
	if len(fields) != recordFields {
		return Record{}, &RecordError{Line: line, Err: ErrFieldCount}
	}

	userId, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Record{}, &RecordError{Line: line, Field: "user_id", Err: err}
	}
	if userId < 0 {
		return Record{}, &RecordError{Line: line, Field: "user_id", Err: fmt.Errorf("negative id %d", userId)}
	}

	date, err := time.Parse(DateLayout, fields[1])
	if err != nil {
		return Record{}, &RecordError{Line: line, Field: "date", Err: err}
	}

	start, err := ParseTimeOfDay(fields[2])
	if err != nil {
		return Record{}, &RecordError{Line: line, Field: "start", Err: err}
	}

	end, err := ParseTimeOfDay(fields[3])
	if err != nil {
		return Record{}, &RecordError{Line: line, Field: "end", Err: err}
	}

	return Record{
		UserId: userId,
		Date:   date,
		Entry:  Entry{Start: start, End: end},
	}, nil
}
