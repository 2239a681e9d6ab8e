// Package id provides ULID-based identifiers for requests and batch runs.
//
// IDs are lexicographically sortable and carry a short type prefix
// (req_*, run_*) so they stay readable in logs. Parsing only accepts the
// prefixes this package issues, which keeps client-supplied request IDs
// bounded before they reach headers and log lines.
package id

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Prefix names the kind of object an ID refers to
type Prefix string

const (
	RequestPrefix Prefix = "req"
	RunPrefix     Prefix = "run"
)

// MaxLength bounds any ID this package accepts: a three letter prefix,
// the separator and a 26 character ULID.
const MaxLength = 3 + 1 + ulid.EncodedSize

// ErrInvalid is returned for strings that are not IDs issued here
var ErrInvalid = errors.New("invalid id")

// RequestID identifies an API request
type RequestID string

// RunID identifies a batch evaluation run
type RunID string

func (id RequestID) String() string { return string(id) }
func (id RunID) String() string     { return string(id) }

// source hands out monotonic ULIDs; ulid.Monotonic is not safe for
// concurrent use on its own.
type source struct {
	mu      sync.Mutex
	entropy io.Reader
}

var std = &source{entropy: ulid.Monotonic(rand.Reader, 0)}

func (s *source) next(now time.Time) ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), s.entropy)
}

func (s *source) prefixed(p Prefix) string {
	return fmt.Sprintf("%s_%s", p, s.next(time.Now()))
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(std.prefixed(RequestPrefix))
}

// NewRunID generates a new batch run ID
func NewRunID() RunID {
	return RunID(std.prefixed(RunPrefix))
}

// Parse splits an ID into its prefix and ULID. A bare ULID parses with an
// empty prefix; any prefix other than req or run is rejected.
func Parse(s string) (Prefix, ulid.ULID, error) {
	if len(s) > MaxLength {
		return "", ulid.ULID{}, fmt.Errorf("%w: longer than %d characters", ErrInvalid, MaxLength)
	}

	var prefix Prefix
	body := s
	if head, tail, ok := strings.Cut(s, "_"); ok {
		prefix, body = Prefix(head), tail
		if prefix != RequestPrefix && prefix != RunPrefix {
			return "", ulid.ULID{}, fmt.Errorf("%w: unknown prefix %q", ErrInvalid, head)
		}
	}

	u, err := ulid.ParseStrict(body)
	if err != nil {
		return "", ulid.ULID{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return prefix, u, nil
}

// IsValid reports whether s parses as an ID
func IsValid(s string) bool {
	_, _, err := Parse(s)
	return err == nil
}

// IsRequestID reports whether s is a well-formed request ID
func IsRequestID(s string) bool {
	p, _, err := Parse(s)
	return err == nil && p == RequestPrefix
}

// Timestamp extracts the creation time of an ID
func Timestamp(s string) (time.Time, error) {
	_, u, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}
