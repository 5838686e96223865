// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

// A nil *Node is the sentinel: it stands for every absent child and for the
// parent of the root. It is never written; the helpers below give it the
// constant features the balancing layers expect.

// colorOf - the sentinel is always black.
func colorOf(n *Node) Color {
	if n == nil {
		return Black
	}
	return n.color
}

func isRed(n *Node) bool { return n != nil && n.color == Red }

func isBlack(n *Node) bool { return n == nil || n.color == Black }

// heightOf - the sentinel has height 0.
func heightOf(n *Node) int {
	if n == nil {
		return 0
	}
	return n.height
}

// priorityLessNode compares node priorities, the sentinel being the minimum.
func (t *Tree) priorityLessNode(a, b *Node) bool {
	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		return true
	case b == nil:
		return false
	}
	return t.priorityLess(a.priority, b.priority)
}
