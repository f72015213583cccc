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

package avl

// Find looks up key and returns its value and whether it was found
func (tree *Tree) Find(key int) (string, bool) {
	p := tree.root
	for nil != p {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p.value, true
		}
	}
	return "", false
}

// FindRange returns the values of all keys k with low <= k <= high in
// ascending key order. The result is empty, never nil, when nothing matches.
func (tree *Tree) FindRange(low int, high int) []string {
	results := []string{}
	if low > high {
		return results
	}
	rangeSearch(tree.root, low, high, &results)
	return results
}

// rangeSearch appends the in-range values of the subtree at p, skipping
// subtrees that cannot hold keys inside [low, high]
func rangeSearch(p *Node, low int, high int, results *[]string) {
	if nil == p {
		return
	}

	// smaller keys live on the left, only useful while p.key >= low
	if low <= p.key {
		rangeSearch(p.left, low, high, results)
	}

	if low <= p.key && p.key <= high {
		*results = append(*results, p.value)
	}

	if high >= p.key {
		rangeSearch(p.right, low, high, results)
	}
}

// Walk visits every node in ascending key order until fn returns false
func (tree *Tree) Walk(fn func(key int, value string) bool) {
	walk(tree.root, fn)
}

func walk(p *Node, fn func(key int, value string) bool) bool {
	if nil == p {
		return true
	}
	if !walk(p.left, fn) {
		return false
	}
	if !fn(p.key, p.value) {
		return false
	}
	return walk(p.right, fn)
}

// LevelCounts returns the number of nodes found at each depth, index 0
// being the root level. An empty tree gives an empty slice.
func (tree *Tree) LevelCounts() []int {
	counts := make([]int, tree.Height())
	countLevels(tree.root, 0, counts)
	return counts
}

func countLevels(p *Node, depth int, counts []int) {
	if nil == p {
		return
	}
	counts[depth] += 1
	countLevels(p.left, depth+1, counts)
	countLevels(p.right, depth+1, counts)
}

// First returns the node with the smallest key, nil for an empty tree
func (tree *Tree) First() *Node {
	p := tree.root
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last returns the node with the largest key, nil for an empty tree
func (tree *Tree) Last() *Node {
	p := tree.root
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
