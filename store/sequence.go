package store

import "strconv"

// Sequence hands out resource ids for the lifetime of the process: a
// monotonic counter rendered as a decimal string. Every id it returns, and
// every seed id it was constructed with, is remembered so Next can never
// repeat one. There is no reset and Next cannot fail.
type Sequence struct {
	counter uint64
	used    map[string]struct{}
}

// NewSequence builds a generator that will never emit any of the given ids.
// Seed ids need not be numeric or sequential.
func NewSequence(seeded ...string) *Sequence {
	s := &Sequence{used: make(map[string]struct{}, len(seeded))}
	for _, id := range seeded {
		s.used[id] = struct{}{}
	}
	return s
}

// Next returns a fresh id. On an empty generator the first value is "1".
func (s *Sequence) Next() string {
	for {
		s.counter++
		id := strconv.FormatUint(s.counter, 10)
		if _, taken := s.used[id]; taken {
			continue
		}
		s.used[id] = struct{}{}
		return id
	}
}
