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

// Node is a single key/value entry of a tree.
type Node struct {
	key    int
	value  string
	height int   // height of the subtree rooted here, a leaf is 1
	parent *Node // back reference only
	left   *Node
	right  *Node
}

// Tree holds the root node and the number of nodes reachable from it.
type Tree struct {
	root  *Node
	count int
}

// New creates an empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

func newNode(key int, value string, parent *Node) *Node {
	return &Node{
		key:    key,
		value:  value,
		height: 1,
		parent: parent,
	}
}

// IsEmpty is true when the tree holds no nodes
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Size returns the number of nodes currently in the tree
func (tree *Tree) Size() int {
	return tree.count
}

// Height returns the height of the whole tree, 0 when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Root returns the root node, nil for an empty tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key returns the key of the node
func (p *Node) Key() int {
	return p.key
}

// Value returns the value stored with the key
func (p *Node) Value() string {
	return p.value
}

// Parent returns the parent node, nil for the root
func (p *Node) Parent() *Node {
	return p.parent
}

// Left returns the left child
func (p *Node) Left() *Node {
	return p.left
}

// Right returns the right child
func (p *Node) Right() *Node {
	return p.right
}

// Height returns the height of the subtree rooted at the node
func (p *Node) Height() int {
	return height(p)
}

// Depth counts the edges between the node and the root
func (p *Node) Depth() int {
	depth := 0
	for up := p.parent; up != nil; up = up.parent {
		depth += 1
	}
	return depth
}

func height(p *Node) int {
	if p == nil {
		return 0
	}
	return p.height
}

func updateHeight(p *Node) {
	p.height = max(height(p.left), height(p.right)) + 1
}

func balanceFactor(p *Node) int {
	if p == nil {
		return 0
	}
	return height(p.left) - height(p.right)
}
