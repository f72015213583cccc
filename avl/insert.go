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

// Insert adds key with its value to the tree.
// It returns false, leaving the tree untouched, when the key is already
// present; a stored value is never replaced.
func (tree *Tree) Insert(key int, value string) bool {
	if nil == tree.root {
		tree.root = newNode(key, value, nil)
		tree.count += 1
		return true
	}

	// nodes visited on the way down, the last one is the new leaf's parent
	path := make([]*Node, 0, tree.root.height+1)

	p := tree.root
	for {
		if key == p.key {
			return false
		}
		path = append(path, p)
		if key > p.key {
			if nil == p.right {
				p.right = newNode(key, value, p)
				break
			}
			p = p.right
		} else {
			if nil == p.left {
				p.left = newNode(key, value, p)
				break
			}
			p = p.left
		}
	}
	tree.count += 1

	// repair bottom-up along the recorded path; rotations rewrite parent
	// pointers so they are not followed here
	for i := len(path) - 1; i >= 0; i -= 1 {
		tree.balance(path[i])
	}
	return true
}

// restore the balance invariant at a single node whose subtrees are
// already balanced
func (tree *Tree) balance(p *Node) {
	updateHeight(p)

	switch balanceFactor(p) {
	case -2: // right heavy
		if balanceFactor(p.right) < 0 {
			// right-right
			tree.rotateLeft(p)
		} else {
			// right-left
			tree.rotateRight(p.right)
			tree.rotateLeft(p)
		}
	case +2: // left heavy
		if balanceFactor(p.left) > 0 {
			// left-left
			tree.rotateRight(p)
		} else {
			// left-right
			tree.rotateLeft(p.left)
			tree.rotateRight(p)
		}
	}
}

// rotateRight lifts pivot.left into the pivot's place
//
//	    p          t
//	   / \        / \
//	  t   c  =>  a   p
//	 / \            / \
//	a   b          b   c
func (tree *Tree) rotateRight(pivot *Node) {
	t := pivot.left

	pivot.left = t.right
	if nil != pivot.left {
		pivot.left.parent = pivot
	}
	t.right = pivot
	tree.replaceChild(pivot, t)
	pivot.parent = t

	updateHeight(pivot)
	updateHeight(t)
}

// rotateLeft lifts pivot.right into the pivot's place
//
//	  p              t
//	 / \            / \
//	a   t    =>    p   c
//	   / \        / \
//	  b   c      a   b
func (tree *Tree) rotateLeft(pivot *Node) {
	t := pivot.right

	pivot.right = t.left
	if nil != pivot.right {
		pivot.right.parent = pivot
	}
	t.left = pivot
	tree.replaceChild(pivot, t)
	pivot.parent = t

	updateHeight(pivot)
	updateHeight(t)
}

// hang replacement where old was, fixing the parent's child link or the root
func (tree *Tree) replaceChild(old *Node, replacement *Node) {
	up := old.parent
	replacement.parent = up
	switch {
	case nil == up:
		tree.root = replacement
	case up.left == old:
		up.left = replacement
	default:
		up.right = replacement
	}
}
