// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

import "fmt"

// Validate - check the link structure, the key order, the node count and the
// invariant of the tree's variant. Returns the first violation found.
func (t *Tree) Validate() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("root %v has a parent: %w", t.root.key, ErrBrokenLink)
	}
	if t.variant == RB && isRed(t.root) {
		return fmt.Errorf("root %v: %w", t.root.key, ErrRedRoot)
	}
	count := 0
	if _, err := t.validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("counted %d nodes, expected %d: %w", count, t.count, ErrCount)
	}
	return nil
}

// validate checks the subtree rooted at n, whose keys must lie strictly
// between lo and hi (nil for unbounded). Returns its black height for RB
// trees and its height otherwise.
func (t *Tree) validate(n, lo, hi *Node, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	if n.owner != t {
		return 0, fmt.Errorf("node %v: %w", n.key, ErrForeignMember)
	}
	if lo != nil && !t.less(lo.key, n.key) {
		return 0, fmt.Errorf("node %v not after %v: %w", n.key, lo.key, ErrKeyOrder)
	}
	if hi != nil && !t.less(n.key, hi.key) {
		return 0, fmt.Errorf("node %v not before %v: %w", n.key, hi.key, ErrKeyOrder)
	}
	for _, child := range []*Node{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return 0, fmt.Errorf("child %v of %v: %w", child.key, n.key, ErrBrokenLink)
		}
		switch t.variant {
		case RB:
			if isRed(n) && isRed(child) {
				return 0, fmt.Errorf("node %v and child %v: %w", n.key, child.key, ErrRedAfterRed)
			}
		case Treap:
			if t.priorityLess(n.priority, child.priority) {
				return 0, fmt.Errorf("node %v below child %v: %w", n.key, child.key, ErrHeapOrder)
			}
		}
	}

	l, err := t.validate(n.left, lo, n, count)
	if err != nil {
		return 0, err
	}
	r, err := t.validate(n.right, n, hi, count)
	if err != nil {
		return 0, err
	}

	switch t.variant {
	case RB:
		if l != r {
			return 0, fmt.Errorf("node %v {%d,%d}: %w", n.key, l, r, ErrBlackHeight)
		}
		if n.color == Black {
			return l + 1, nil
		}
		return l, nil

	case AVL:
		if b := l - r; b < -1 || b > 1 {
			return 0, fmt.Errorf("node %v balance %d: %w", n.key, b, ErrUnbalanced)
		}
	}

	h := l + 1
	if r > l {
		h = r + 1
	}
	if t.variant == AVL && n.height != h {
		return 0, fmt.Errorf("node %v stores %d, is %d: %w", n.key, n.height, h, ErrHeight)
	}
	return h, nil
}
