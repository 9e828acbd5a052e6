// Package provider implements the arena-provider collaborator that
// alloc.Heap consumes: the extend(n_bytes) -> bytes | error primitive
// plus a fixed maximum heap size.
package provider

import (
	"fmt"

	"github.com/bytedance/gopkg/lang/dirtmake"
)

// ByteArena is a reference alloc.Provider backed by a single growable
// []byte. Growth always copies forward into a freshly dirtmake'd
// slice rather than relying on append's amortised doubling, because
// Heap immediately overwrites every newly granted byte with boundary
// tags or free-list links, making the zero-fill a plain make would
// perform wasted work.
type ByteArena struct {
	mem     []byte
	maxSize int
}

// New creates a ByteArena that will never grant more than maxSize
// cumulative bytes. maxSize <= 0 means no fixed limit.
func New(maxSize int) *ByteArena {
	return &ByteArena{maxSize: maxSize}
}

// Extend implements alloc.Provider.
func (p *ByteArena) Extend(nBytes int) ([]byte, error) {
	if nBytes <= 0 {
		return nil, fmt.Errorf("provider: nBytes must be positive, got %d", nBytes)
	}
	newLen := len(p.mem) + nBytes
	if p.maxSize > 0 && newLen > p.maxSize {
		return nil, fmt.Errorf("provider: requested length %d exceeds max %d", newLen, p.maxSize)
	}

	grown := dirtmake.Bytes(newLen, newLen)
	copy(grown, p.mem)
	p.mem = grown
	return p.mem, nil
}

// MaxSize implements alloc.Provider.
func (p *ByteArena) MaxSize() int { return p.maxSize }

// Len returns the number of bytes granted so far.
func (p *ByteArena) Len() int { return len(p.mem) }
