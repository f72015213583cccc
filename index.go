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
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/cybrota/keytree/avl"
	"github.com/cybrota/keytree/loaders"
	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// Index keeps an AVL tree together with the structures that speed up the
// queries run against it from the CLI and the shell
type Index struct {
	tree     *avl.Tree
	snapshot *avl.Tree
	filter   *bloom.BloomFilter // keys possibly present, never a false negative
	ranges   *cache.Cache       // range results, flushed on every change
	config   IndexConfig
	events   *eventLog
}

// LoadStats summarises a Load call
type LoadStats struct {
	Inserted   int
	Duplicates int
	Took       time.Duration
}

func NewIndex(config IndexConfig, events *eventLog) *Index {
	return &Index{
		tree:   avl.New(),
		filter: bloom.New(config.BloomSize, config.BloomHashes),
		ranges: NewRangeCache(config.RangeCacheTTL),
		config: config,
		events: events,
	}
}

func keyBytes(key int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(key))
	return b
}

// Insert adds key unless it is already present
func (idx *Index) Insert(key int, value string) bool {
	if !idx.tree.Insert(key, value) {
		return false
	}
	idx.filter.Add(keyBytes(key))
	if idx.ranges.ItemCount() > 0 {
		idx.ranges.Flush()
	}
	return true
}

// Find returns the value stored for key
func (idx *Index) Find(key int) (string, bool) {
	if !idx.filter.Test(keyBytes(key)) {
		return "", false
	}
	return idx.tree.Find(key)
}

// FindRange returns the values with keys in [low, high] in key order
func (idx *Index) FindRange(low int, high int) []string {
	if values, ok := GetRange(idx.ranges, low, high); ok {
		return values
	}
	values := idx.tree.FindRange(low, high)
	CacheRange(idx.ranges, low, high, values)
	return values
}

func (idx *Index) Height() int {
	return idx.tree.Height()
}

func (idx *Index) Size() int {
	return idx.tree.Size()
}

// Tree gives read access to the underlying tree
func (idx *Index) Tree() *avl.Tree {
	return idx.tree
}

// Snapshot saves a deep copy of the current tree, replacing any earlier one
func (idx *Index) Snapshot() {
	idx.snapshot = idx.tree.Clone()
	idx.events.Infof("snapshot: size: %d  height: %d", idx.snapshot.Size(), idx.snapshot.Height())
}

// HasSnapshot is true once Snapshot has been called
func (idx *Index) HasSnapshot() bool {
	return idx.snapshot != nil
}

// Restore replaces the tree with a copy of the snapshot. The snapshot is
// kept so it can be restored again. Returns false when there is none.
func (idx *Index) Restore() bool {
	if idx.snapshot == nil {
		return false
	}
	idx.tree.Assign(idx.snapshot)
	idx.rebuildFilter()
	idx.ranges.Flush()
	idx.events.Infof("restore: size: %d  height: %d", idx.tree.Size(), idx.tree.Height())
	return true
}

// Clear drops every entry, the snapshot is kept
func (idx *Index) Clear() {
	idx.tree.Clear()
	idx.filter.ClearAll()
	idx.ranges.Flush()
	idx.events.Infof("clear")
}

// the filter cannot forget keys, so it is rebuilt whenever the tree shrinks
func (idx *Index) rebuildFilter() {
	idx.filter.ClearAll()
	idx.tree.Walk(func(key int, value string) bool {
		idx.filter.Add(keyBytes(key))
		return true
	})
}

// Load inserts entries in order; a key seen earlier wins over later ones
func (idx *Index) Load(entries []loaders.Entry, showProgress bool) LoadStats {
	start := time.Now()
	stats := LoadStats{}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🌳 Building index..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
		)
	}

	for _, entry := range entries {
		if idx.Insert(entry.Key, entry.Value) {
			stats.Inserted++
		} else {
			stats.Duplicates++
			idx.events.Debugf("duplicate key: %d", entry.Key)
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	stats.Took = time.Since(start)
	idx.events.Infof("load: inserted: %d  duplicates: %d  took: %s", stats.Inserted, stats.Duplicates, stats.Took)
	return stats
}

// LoadSources reads every source file, forcing the named format when not empty
func (idx *Index) LoadSources(manager *loaders.LoaderManager, sources []string, format string) (LoadStats, error) {
	var entries []loaders.Entry
	for _, source := range sources {
		var loaded []loaders.Entry
		var err error
		if format != "" {
			loaded, err = manager.LoadFileAs(source, format)
		} else {
			loaded, err = manager.LoadFile(source)
		}
		if err != nil {
			return LoadStats{}, err
		}
		idx.events.Infof("source: %s  entries: %d", source, len(loaded))
		entries = append(entries, loaded...)
	}
	return idx.Load(entries, idx.config.ShowProgress), nil
}
