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

package index

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Expired entries are swept at this interval.
const queryCacheCleanup = time.Minute

// Neighbour is a memoised successor or predecessor answer.
type Neighbour[K any] struct {
	Key   K
	Found bool
}

// NewQueryCache creates the memo for neighbour lookups.
func NewQueryCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, queryCacheCleanup)
}

func CacheNeighbour[K any](c *cache.Cache, key string, n Neighbour[K]) {
	c.SetDefault(key, n)
}

func GetNeighbour[K any](c *cache.Cache, key string) (Neighbour[K], bool) {
	val, ok := c.Get(key)
	if !ok {
		return Neighbour[K]{}, false
	}
	n, ok := val.(Neighbour[K])
	return n, ok
}
