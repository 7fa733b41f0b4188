// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index wraps an avl.Tree for shared use. One RWMutex serialises
// writers against each other and against readers.
package index

import (
	"cmp"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cybrota/avlindex/avl"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	defaultExpectedKeys      = 1024
	defaultFalsePositiveRate = 0.01
	defaultQueryCacheTTL     = 5 * time.Minute
	// The filter is not rebuilt for fewer stale entries than this.
	minRebuildDeletes = 64
)

type Options struct {
	ExpectedKeys      uint          // sizing hint for the membership filter
	FalsePositiveRate float64       // target rate for the membership filter
	QueryCacheTTL     time.Duration // lifetime of memoised neighbour lookups
	Logger            *log.Logger
}

func DefaultOptions() Options {
	return Options{
		ExpectedKeys:      defaultExpectedKeys,
		FalsePositiveRate: defaultFalsePositiveRate,
		QueryCacheTTL:     defaultQueryCacheTTL,
	}
}

type Stats struct {
	Keys           int
	Height         int
	FilterRebuilds int
	CachedQueries  int
}

// Index is an ordered set of unique keys that is safe for concurrent use.
type Index[K any] struct {
	mu     sync.RWMutex
	tree   *avl.Tree[K]
	encode func(K) []byte

	filter      *bloom.BloomFilter
	staleDelete int // deletes since the filter was last rebuilt
	rebuilds    int

	queries *cache.Cache
	logger  *log.Logger
}

// New returns an index ordered by cmp.Compare. Keys are encoded for the
// membership filter with their fmt representation.
func New[K cmp.Ordered](opts Options) *Index[K] {
	return NewFunc(cmp.Compare[K], encodeOrdered[K], opts)
}

// encodeOrdered maps -0 to +0 first, since the two compare equal but
// print differently.
func encodeOrdered[K cmp.Ordered](key K) []byte {
	var zero K
	if key == zero {
		key = zero
	}
	return fmt.Append(nil, key)
}

// NewFunc returns an index ordered by compare. encode must map equal keys
// to equal bytes.
func NewFunc[K any](compare func(a, b K) int, encode func(K) []byte, opts Options) *Index[K] {
	if opts.ExpectedKeys == 0 {
		opts.ExpectedKeys = defaultExpectedKeys
	}
	if opts.FalsePositiveRate <= 0 || opts.FalsePositiveRate >= 1 {
		opts.FalsePositiveRate = defaultFalsePositiveRate
	}
	if opts.QueryCacheTTL <= 0 {
		opts.QueryCacheTTL = defaultQueryCacheTTL
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Index[K]{
		tree:    avl.NewFunc(compare),
		encode:  encode,
		filter:  bloom.NewWithEstimates(opts.ExpectedKeys, opts.FalsePositiveRate),
		queries: NewQueryCache(opts.QueryCacheTTL),
		logger:  opts.Logger,
	}
}

// Insert adds key and reports whether it was new.
func (ix *Index[K]) Insert(key K) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if !ix.tree.Insert(key) {
		return false
	}
	ix.filter.Add(ix.encode(key))
	ix.queries.Flush()
	return true
}

// Delete removes key and reports whether it was present.
func (ix *Index[K]) Delete(key K) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if !ix.tree.Delete(key) {
		return false
	}
	ix.queries.Flush()

	ix.staleDelete++
	if ix.staleDelete >= minRebuildDeletes && ix.staleDelete*2 >= ix.tree.Len() {
		ix.rebuildFilter()
	}
	return true
}

// rebuildFilter drops entries for deleted keys. Callers hold the write lock.
func (ix *Index[K]) rebuildFilter() {
	ix.filter.ClearAll()
	ix.tree.Walk(func(key K) bool {
		ix.filter.Add(ix.encode(key))
		return true
	})
	ix.logger.Printf("Rebuilt membership filter for %d keys after %d deletes", ix.tree.Len(), ix.staleDelete)
	ix.staleDelete = 0
	ix.rebuilds++
}

func (ix *Index[K]) Contains(key K) bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	// Every live key was added to the filter, so a miss is definitive.
	if !ix.filter.Test(ix.encode(key)) {
		return false
	}
	return ix.tree.Contains(key)
}

func (ix *Index[K]) Successor(key K) (K, bool) {
	return ix.neighbour("succ:", key, ix.tree.Successor)
}

func (ix *Index[K]) Predecessor(key K) (K, bool) {
	return ix.neighbour("pred:", key, ix.tree.Predecessor)
}

// neighbour serves a memoised lookup. The cache is written under the read
// lock, so a writer's flush cannot land between lookup and store.
func (ix *Index[K]) neighbour(kind string, key K, lookup func(K) (K, bool)) (K, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	cacheKey := kind + string(ix.encode(key))
	if hit, ok := GetNeighbour[K](ix.queries, cacheKey); ok {
		return hit.Key, hit.Found
	}

	found, ok := lookup(key)
	CacheNeighbour(ix.queries, cacheKey, Neighbour[K]{Key: found, Found: ok})
	return found, ok
}

// Min returns the smallest key or avl.ErrEmptyTree.
func (ix *Index[K]) Min() (K, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Min()
}

// Max returns the largest key or avl.ErrEmptyTree.
func (ix *Index[K]) Max() (K, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Max()
}

func (ix *Index[K]) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Len()
}

func (ix *Index[K]) Height() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Height()
}

// Keys returns a snapshot of all keys in ascending order.
func (ix *Index[K]) Keys() []K {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Keys()
}

// Range returns a snapshot of the keys k with lo <= k < hi.
func (ix *Index[K]) Range(lo, hi K) []K {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var keys []K
	for key := range ix.tree.Range(lo, hi) {
		keys = append(keys, key)
	}
	return keys
}

func (ix *Index[K]) Validate() error {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.tree.Validate()
}

func (ix *Index[K]) Stats() Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return Stats{
		Keys:           ix.tree.Len(),
		Height:         ix.tree.Height(),
		FilterRebuilds: ix.rebuilds,
		CachedQueries:  ix.queries.ItemCount(),
	}
}
