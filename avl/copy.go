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

// Clone returns a deep copy of the tree that shares no nodes with it
func (tree *Tree) Clone() *Tree {
	return &Tree{
		root:  copyNodes(tree.root, nil),
		count: tree.count,
	}
}

// Assign replaces the contents of the tree with a deep copy of src.
// The existing nodes are released first. Assigning a tree to itself does
// nothing and a nil src leaves the tree empty.
func (tree *Tree) Assign(src *Tree) {
	if src == tree {
		return
	}
	tree.Clear()
	if nil == src {
		return
	}
	tree.root = copyNodes(src.root, nil)
	tree.count = src.count
}

// Clear releases every node, children before their parent
func (tree *Tree) Clear() {
	tree.release(tree.root)
	tree.root = nil
}

func (tree *Tree) release(p *Node) {
	if nil == p {
		return
	}
	tree.release(p.left)
	tree.release(p.right)

	p.left = nil
	p.right = nil
	p.parent = nil
	tree.count -= 1
}

// copy the subtree at old, hanging the copy below parent
func copyNodes(old *Node, parent *Node) *Node {
	if nil == old {
		return nil
	}
	p := &Node{
		key:    old.key,
		value:  old.value,
		height: old.height,
		parent: parent,
	}
	p.left = copyNodes(old.left, p)
	p.right = copyNodes(old.right, p)
	return p
}
