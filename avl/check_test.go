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
	"errors"
	"testing"
)

func sample() *Tree {
	tree := New()
	for _, key := range []int{50, 25, 75, 10, 30, 60, 80} {
		tree.Insert(key, "v")
	}
	return tree
}

func TestVerifyDetectsDamage(t *testing.T) {
	testCases := []struct {
		name     string
		damage   func(tree *Tree)
		expected error
	}{
		{
			name:     "parent link",
			damage:   func(tree *Tree) { tree.root.left.left.parent = tree.root },
			expected: ErrParentLink,
		},
		{
			name:     "order",
			damage:   func(tree *Tree) { tree.root.right.left.key = 40 },
			expected: ErrOrder,
		},
		{
			name:     "height",
			damage:   func(tree *Tree) { tree.root.right.height = 5 },
			expected: ErrHeight,
		},
		{
			name: "balance",
			damage: func(tree *Tree) {
				p := tree.root.right.right
				p.right = newNode(90, "v", p)
				p.right.right = newNode(95, "v", p.right)
				p.right.height = 2
				tree.count += 2
			},
			expected: ErrBalance,
		},
		{
			name:     "count",
			damage:   func(tree *Tree) { tree.count += 1 },
			expected: ErrCount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := sample()
			if err := tree.Verify(); err != nil {
				t.Fatalf("undamaged tree: %v", err)
			}
			tc.damage(tree)
			if err := tree.Verify(); !errors.Is(err, tc.expected) {
				t.Errorf("error: %v  expected: %v", err, tc.expected)
			}
		})
	}
}

func TestRotationsKeepParentLinks(t *testing.T) {
	tree := New()
	for key := 1; key <= 64; key += 1 {
		tree.Insert(key, "v")
		if !tree.CheckUp() {
			t.Fatalf("parent links broken after inserting %d", key)
		}
	}
	if err := tree.Verify(); err != nil {
		t.Fatal(err)
	}
}
