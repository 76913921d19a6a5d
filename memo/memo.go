// Package memo caches Sardinas–Patterson verdicts in a bounded LRU keyed
// by the canonical code key, so repeated or permuted codes are decided once.
package memo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/sardinas/udcode"
)

// DefaultSize is the cache capacity used when New receives size <= 0.
const DefaultSize = 1024

// ErrNilCode is returned when Check receives a nil code.
var ErrNilCode = errors.New("memo: code is nil")

// Stats reports cache effectiveness.
type Stats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

// Checker wraps udcode.Check with an LRU cache. It is safe for concurrent use.
type Checker struct {
	cache  *lru.Cache[string, udcode.Verdict]
	opts   []udcode.Option
	hits   atomic.Uint64
	misses atomic.Uint64
}

// New returns a Checker holding up to size verdicts; opts are applied to
// every uncached run.
func New(size int, opts ...udcode.Option) (*Checker, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[string, udcode.Verdict](size)
	if err != nil {
		return nil, fmt.Errorf("memo: create cache: %w", err)
	}

	return &Checker{cache: cache, opts: opts}, nil
}

// Check returns the cached verdict for code, computing it on a miss.
// Failed runs are not cached.
func (c *Checker) Check(code *udcode.Code) (udcode.Verdict, error) {
	return c.check(code, c.opts)
}

// CheckAll decides codes concurrently through the cache, preserving order.
func (c *Checker) CheckAll(ctx context.Context, codes []*udcode.Code) ([]udcode.Verdict, error) {
	return udcode.Batch(ctx, codes, func(runCtx context.Context, code *udcode.Code) (udcode.Verdict, error) {
		opts := append(append([]udcode.Option(nil), c.opts...), udcode.WithContext(runCtx))

		return c.check(code, opts)
	}, 0)
}

// Stats returns the current hit/miss counters and cache length.
func (c *Checker) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load(), Len: c.cache.Len()}
}

// Purge drops every cached verdict. Counters are kept.
func (c *Checker) Purge() {
	c.cache.Purge()
}

func (c *Checker) check(code *udcode.Code, opts []udcode.Option) (udcode.Verdict, error) {
	if code == nil {
		return udcode.Verdict{}, ErrNilCode
	}
	key := code.Key()
	if v, ok := c.cache.Get(key); ok {
		c.hits.Add(1)
		return cloneVerdict(v), nil
	}
	c.misses.Add(1)

	v, err := udcode.Check(code, opts...)
	if err != nil {
		return udcode.Verdict{}, err
	}
	c.cache.Add(key, v)

	return cloneVerdict(v), nil
}

// cloneVerdict copies the slices so callers cannot corrupt cached entries.
func cloneVerdict(v udcode.Verdict) udcode.Verdict {
	v.Witnesses = append([]string{}, v.Witnesses...)
	v.Dangling = append([]string{}, v.Dangling...)

	return v
}
