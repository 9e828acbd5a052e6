package alloc

import "fmt"

// Provider is the arena collaborator a Heap consumes: an
// extend(n_bytes) -> bytes | error primitive plus a fixed maximum
// size. It owns the actual memory source; Heap only ever asks it to
// grow and reads the slice it hands back.
//
// Extend must grow the backing region by exactly nBytes and return the
// full region granted so far. Bytes at offsets already granted by a
// prior call keep their values and their offsets — Extend may return a
// different Go slice value (e.g. after an internal reallocation) but
// never relocates previously-granted bytes to a different offset.
type Provider interface {
	Extend(nBytes int) ([]byte, error)

	// MaxSize returns the maximum number of bytes Extend will ever grant
	// cumulatively, or 0 for no fixed limit (bounded only by whatever
	// the provider's own backing store can hold).
	MaxSize() int
}

// errExhausted wraps a Provider failure with ErrArenaExhausted so
// callers can errors.Is against a single sentinel regardless of the
// concrete Provider in use.
func errExhausted(cause error) error {
	return fmt.Errorf("%w: %v", ErrArenaExhausted, cause)
}
