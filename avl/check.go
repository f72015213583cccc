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
	"fmt"
)

var (
	ErrParentLink = errors.New("parent link mismatch")
	ErrOrder      = errors.New("keys out of order")
	ErrBalance    = errors.New("node out of balance")
	ErrHeight     = errors.New("cached height is stale")
	ErrCount      = errors.New("node count mismatch")
)

// CheckUp verifies that every child points back at its parent
func (tree *Tree) CheckUp() bool {
	return checkUp(tree.root, nil)
}

func checkUp(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.parent != up {
		return false
	}
	return checkUp(p.left, p) && checkUp(p.right, p)
}

// Verify walks the whole tree and reports the first broken invariant
func (tree *Tree) Verify() error {
	if !tree.CheckUp() {
		return fmt.Errorf("verify: %w", ErrParentLink)
	}
	n, _, err := verify(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("verify: reachable: %d  count: %d: %w", n, tree.count, ErrCount)
	}
	return nil
}

// returns the number of nodes and the recomputed height of the subtree;
// lower and upper are exclusive bounds, nil meaning unbounded
func verify(p *Node, lower *int, upper *int) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if (nil != lower && p.key <= *lower) || (nil != upper && p.key >= *upper) {
		return 0, 0, fmt.Errorf("verify: key: %d: %w", p.key, ErrOrder)
	}

	nl, hl, err := verify(p.left, lower, &p.key)
	if err != nil {
		return 0, 0, err
	}
	nr, hr, err := verify(p.right, &p.key, upper)
	if err != nil {
		return 0, 0, err
	}

	if diff := hl - hr; diff < -1 || diff > 1 {
		return 0, 0, fmt.Errorf("verify: key: %d  left: %d  right: %d: %w", p.key, hl, hr, ErrBalance)
	}
	h := 1 + max(hl, hr)
	if h != p.height {
		return 0, 0, fmt.Errorf("verify: key: %d  cached: %d  actual: %d: %w", p.key, p.height, h, ErrHeight)
	}
	return 1 + nl + nr, h, nil
}
