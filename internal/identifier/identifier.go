// Package identifier generates record identifiers.
//
// Identifiers are UUIDv7: the leading 48 bits hold the Unix millisecond
// timestamp and google/uuid fills the following bits with a per-process
// sequence, so identifiers created later in the same process always
// sort after earlier ones, even within one millisecond and across
// goroutines.
package identifier

import "github.com/google/uuid"

// Generator produces a new identifier on every call.
type Generator func() uuid.UUID

// New returns a fresh UUIDv7.
//
// uuid.NewV7 only fails when the system random source fails, which
// leaves nothing sensible to return, so New panics in that case.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// Sequence returns a Generator that hands out ids in order and then
// falls back to New. Tests use it to pin builder output.
func Sequence(ids ...uuid.UUID) Generator {
	next := 0
	return func() uuid.UUID {
		if next < len(ids) {
			id := ids[next]
			next++
			return id
		}
		return New()
	}
}
