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

import (
	"fmt"
	"io"
	"strings"
)

const emptyTree = "Empty Tree\n"

// WriteTo renders the tree rotated a quarter turn: larger keys first, each
// node on its own line indented by one tab per level of depth.
// This is a debugging aid, not a format meant to be parsed back.
func (tree *Tree) WriteTo(w io.Writer) (int64, error) {
	if nil == tree.root {
		n, err := io.WriteString(w, emptyTree)
		return int64(n), err
	}
	return printTree(w, tree.root, 0)
}

// String returns the same rendering as WriteTo
func (tree *Tree) String() string {
	var b strings.Builder
	tree.WriteTo(&b)
	return b.String()
}

// internal print, right subtree then node then left subtree
func printTree(w io.Writer, p *Node, depth int) (int64, error) {
	total := int64(0)

	if nil != p.right {
		n, err := printTree(w, p.right, depth+1)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err := fmt.Fprintf(w, "%s%d , %s\n", strings.Repeat("\t", depth), p.key, p.value)
	total += int64(n)
	if err != nil {
		return total, err
	}

	if nil != p.left {
		n, err := printTree(w, p.left, depth+1)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
