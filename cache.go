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

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Clean up expired range results every minute
	rangeCacheCleanup = time.Minute
)

// NewRangeCache creates a cache for range query results
func NewRangeCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, rangeCacheCleanup)
}

func rangeCacheKey(low int, high int) string {
	return fmt.Sprintf("%d:%d", low, high)
}

// CacheRange stores a copy of values so later edits by the caller do not
// leak into the cache
func CacheRange(c *cache.Cache, low int, high int, values []string) {
	c.SetDefault(rangeCacheKey(low, high), copyValues(values))
}

// GetRange returns a copy of the cached values for [low, high]
func GetRange(c *cache.Cache, low int, high int) ([]string, bool) {
	val, ok := c.Get(rangeCacheKey(low, high))
	if !ok {
		return nil, false
	}
	return copyValues(val.([]string)), true
}

func copyValues(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
