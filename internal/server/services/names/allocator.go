// Package names allocates unique human-readable gadget names.
package names

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gadgetkeeper/internal/common"
)

const (
	// Prefix is prepended to every generated name.
	Prefix = "The "
	// MaxAttempts bounds the number of existence checks per allocation.
	MaxAttempts = 50
)

// ExistsFunc reports whether a name is already taken.
type ExistsFunc func(ctx context.Context, name string) (bool, error)

// Allocator draws candidate names from a fixed vocabulary until one is free.
// It does not reserve the name; the storage unique index stays authoritative.
type Allocator struct {
	words       []string
	randIntn    func(n int) int
	maxAttempts int
}

// Option customizes an Allocator.
type Option func(*Allocator)

// WithRand replaces the random source. randIntn must return a value in [0, n).
func WithRand(randIntn func(n int) int) Option {
	return func(a *Allocator) { a.randIntn = randIntn }
}

// WithWords replaces the vocabulary.
func WithWords(words []string) Option {
	return func(a *Allocator) { a.words = words }
}

func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{
		words:       vocabulary,
		randIntn:    common.RandIntn,
		maxAttempts: MaxAttempts,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Candidate returns one random name without checking availability.
func (a *Allocator) Candidate() string {
	return Prefix + a.words[a.randIntn(len(a.words))]
}

// Allocate returns the first candidate for which exists reports false.
// It gives up with common.ErrAllocationExhausted after MaxAttempts checks,
// and aborts on the first error from exists.
func (a *Allocator) Allocate(ctx context.Context, exists ExistsFunc) (string, error) {
	for i := 0; i < a.maxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name := a.Candidate()
		taken, err := exists(ctx, name)
		if err != nil {
			return "", fmt.Errorf("checking name %q: %w", name, err)
		}
		if !taken {
			return name, nil
		}
	}
	return "", common.ErrAllocationExhausted
}
