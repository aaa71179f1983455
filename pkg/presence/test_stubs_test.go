package presence

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testDataCsv = "testdata/test_data.csv"

func loadTestData(t *testing.T) *Store {
	t.Helper()
	store, err := Load(context.Background(), FileSource{Path: testDataCsv})
	require.NoError(t, err)
	return store
}

// stubSource serves fixed content and counts how often it was opened.
type stubSource struct {
	content string
	err     error
	opened  int
}

func (s *stubSource) Open(_ context.Context) (io.ReadCloser, error) {
	s.opened++
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.content)), nil
}

func (s *stubSource) Name() string {
	return "stub"
}

// failingReader returns some data and then a read error.
type failingReader struct {
	data string
	read bool
}

var errDiskGone = errors.New("disk gone")

func (r *failingReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, errDiskGone
	}
	r.read = true
	return copy(p, r.data), nil
}

// barrierSource holds every Open until want callers are inside Open at the same
// time, so it only succeeds when loads run concurrently.
type barrierSource struct {
	content string
	want    int

	mu      sync.Mutex
	arrived int
	release chan struct{}
}

func newBarrierSource(content string, want int) *barrierSource {
	return &barrierSource{content: content, want: want, release: make(chan struct{})}
}

func (s *barrierSource) Open(_ context.Context) (io.ReadCloser, error) {
	s.mu.Lock()
	s.arrived++
	if s.arrived == s.want {
		close(s.release)
	}
	s.mu.Unlock()

	select {
	case <-s.release:
		return io.NopCloser(strings.NewReader(s.content)), nil
	case <-time.After(2 * time.Second):
		return nil, errors.New("loads did not run concurrently")
	}
}

func (s *barrierSource) Name() string {
	return "barrier"
}

// gatedSource blocks every Open until release is closed.
type gatedSource struct {
	content string
	release chan struct{}
	opened  atomic.Int32
}

func (s *gatedSource) Open(_ context.Context) (io.ReadCloser, error) {
	s.opened.Add(1)
	<-s.release
	return io.NopCloser(strings.NewReader(s.content)), nil
}

func (s *gatedSource) Name() string {
	return "gated"
}
