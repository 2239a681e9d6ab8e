package id

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixes(t *testing.T) {
	req := NewRequestID().String()
	run := NewRunID().String()

	assert.True(t, strings.HasPrefix(req, "req_"))
	assert.True(t, strings.HasPrefix(run, "run_"))
	assert.Len(t, req, MaxLength)

	p, _, err := Parse(run)
	require.NoError(t, err)
	assert.Equal(t, RunPrefix, p)

	assert.True(t, IsRequestID(req))
	assert.False(t, IsRequestID(run))
}

func TestParseRejects(t *testing.T) {
	u := ulid.Make().String()

	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"not a ulid", "req_invalid"},
		{"bad characters", "req_" + strings.Repeat("U", ulid.EncodedSize)},
		{"unknown prefix", "usr_" + u},
		{"injected prefix", "not a prefix; DROP TABLE x_" + u},
		{"oversized prefix", strings.Repeat("A", 4096) + "_" + u},
		{"two separators", "req_run_" + u},
		{"trailing data", "req_" + u + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.in)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
			assert.False(t, IsValid(tt.in))
		})
	}
}

func TestBareULID(t *testing.T) {
	u := ulid.Make()
	p, parsed, err := Parse(u.String())
	require.NoError(t, err)
	assert.Equal(t, Prefix(""), p)
	assert.Equal(t, u, parsed)
	assert.False(t, IsRequestID(u.String()))
}

func TestTimestamp(t *testing.T) {
	before := time.Now().UnixMilli()
	rid := NewRunID().String()
	after := time.Now().UnixMilli()

	ts, err := Timestamp(rid)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ts.UnixMilli(), before)
	assert.LessOrEqual(t, ts.UnixMilli(), after)

	_, err = Timestamp("run_nope")
	assert.Error(t, err)
}

func TestConcurrentIDsAreUniqueAndOrdered(t *testing.T) {
	const workers, each = 20, 50

	var (
		mu   sync.Mutex
		seen = make(map[string]bool)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				rid := NewRequestID().String()
				mu.Lock()
				seen[rid] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*each)

	// one goroutine, one millisecond or not, the monotonic source keeps order
	prev := NewRunID().String()
	for i := 0; i < 100; i++ {
		next := NewRunID().String()
		require.Greater(t, next, prev)
		prev = next
	}
}
