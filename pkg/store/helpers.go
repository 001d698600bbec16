package store

import (
	"strconv"
)

// ParseRef converts a stored cross-document reference to a numeric id. ok is
// false when the reference is not a plain integer; surrounding whitespace is
// not accepted. Callers skip the reference in that case.
func ParseRef(s string) (id int, ok bool) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseIDOrZero is used when deriving counters: non-numeric ids count as 0.
func parseIDOrZero(s string) int {
	id, ok := ParseRef(s)
	if !ok {
		return 0
	}
	return id
}
