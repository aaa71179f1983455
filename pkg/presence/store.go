package presence

import (
	"iter"
	"slices"
	"time"
)

// Entries holds one user's presence entries keyed by date. Iteration follows the order
// in which each date was first seen; a repeated date replaces the entry in place.
type Entries struct {
	dates  []time.Time
	byDate map[time.Time]Entry
}

func newEntries() *Entries {
	return &Entries{byDate: make(map[time.Time]Entry)}
}

func (e *Entries) put(date time.Time, entry Entry) {
	if _, ok := e.byDate[date]; !ok {
		e.dates = append(e.dates, date)
	}
	e.byDate[date] = entry
}

func (e *Entries) Get(date time.Time) (Entry, bool) {
	entry, ok := e.byDate[date]
	return entry, ok
}

func (e *Entries) Len() int {
	return len(e.dates)
}

// All yields date/entry pairs in insertion order.
func (e *Entries) All() iter.Seq2[time.Time, Entry] {
	return func(yield func(time.Time, Entry) bool) {
		for _, date := range e.dates {
			if !yield(date, e.byDate[date]) {
				return
			}
		}
	}
}

// Store maps user ids to their presence entries. It is built once by the loader
// and never modified afterwards.
type Store struct {
	users   map[int]*Entries
	rows    int
	skipped int
}

func newStore() *Store {
	return &Store{users: make(map[int]*Entries)}
}

func (s *Store) put(record Record) {
	entries, ok := s.users[record.UserId]
	if !ok {
		entries = newEntries()
		s.users[record.UserId] = entries
	}
	entries.put(record.Date, record.Entry)
}

// Users returns all known user ids in ascending order.
func (s *Store) Users() []int {
	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) Entries(userId int) (*Entries, error) {
	entries, ok := s.users[userId]
	if !ok {
		return nil, ErrUserNotFound
	}
	return entries, nil
}

// Rows is the number of rows read from the source, including skipped ones.
func (s *Store) Rows() int {
	return s.rows
}

func (s *Store) Skipped() int {
	return s.skipped
}
