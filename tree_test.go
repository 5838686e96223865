// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTree(t testing.TB, v Variant) *Tree {
	tree, err := New(Config{Variant: v, KeyLess: IntLess, PriorityLess: IntLess})
	require.NoError(t, err)
	return tree
}

// node with a priority so the same helper serves every variant.
func newIntNode(key, priority int) *Node {
	return NewTreapNode(key, key*10, priority)
}

var scenarioKeys = []int{1, 6, 4, 8, 5, 3}
var scenarioPriorities = []int{345, 232, 765, 1234, 55, 4622}

func buildScenario(t *testing.T, v Variant) (*Tree, map[int]*Node) {
	tree := newTree(t, v)
	nodes := make(map[int]*Node)
	for i, k := range scenarioKeys {
		n := newIntNode(k, scenarioPriorities[i])
		assert.Equal(t, n, tree.Insert(n))
		nodes[k] = n
	}
	require.NoError(t, tree.Validate())
	return tree, nodes
}

func searchHits(tree *Tree) []int {
	found := []int{}
	for k := 0; k < 10; k++ {
		if n := tree.Search(k); n != nil {
			found = append(found, n.Key().(int))
		}
	}
	return found
}

func TestNewRejectsIncompleteConfig(t *testing.T) {
	_, err := New(Config{Variant: RB})
	assert.Equal(t, ErrMissingKeyLess, err)

	_, err = New(Config{Variant: Treap, KeyLess: IntLess})
	assert.Equal(t, ErrMissingPriorityLess, err)

	_, err = New(Config{Variant: Variant(9), KeyLess: IntLess})
	assert.True(t, errors.Is(err, ErrUnknownVariant))

	tree, err := New(Config{Variant: AVL, KeyLess: IntLess})
	require.NoError(t, err)
	assert.Equal(t, AVL, tree.Variant())
	assert.True(t, tree.IsEmpty())
	assert.Zero(t, tree.Len())
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	_, err := ParseVariant("splay")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
	assert.Equal(t, "variant(7)", Variant(7).String())
}

// Scenario: insert 1,6,4,8,5,3 into every variant, search 0..9, min and max.
func TestScenarioInsertSearchMinMax(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			tree, _ := buildScenario(t, v)

			assert.Equal(t, []int{1, 3, 4, 5, 6, 8}, searchHits(tree))
			assert.Equal(t, 1, tree.Min(tree.Root()).Key())
			assert.Equal(t, 8, tree.Max(tree.Root()).Key())
			assert.Equal(t, 6, tree.Len())
		})
	}
}

// Scenario: delete key 4 from the tree above.
func TestScenarioDeleteFour(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			tree, nodes := buildScenario(t, v)

			four := tree.Search(4)
			require.Equal(t, nodes[4], four)
			tree.Delete(four)

			assert.Equal(t, []int{1, 3, 5, 6, 8}, searchHits(tree))
			assert.NoError(t, tree.Validate())
			assert.Equal(t, 5, tree.Len())

			// the node is caller owned again and may join another tree
			other := newTree(t, v)
			assert.Equal(t, four, other.Insert(four))
		})
	}
}

func TestEmptyTree(t *testing.T) {
	tree := newTree(t, RB)
	assert.Nil(t, tree.Search(1))
	assert.Nil(t, tree.Min(tree.Root()))
	assert.Nil(t, tree.Max(tree.Root()))
	assert.Zero(t, tree.Height(tree.Root()))
	assert.Empty(t, tree.Keys())
	assert.NoError(t, tree.Validate())

	visited := 0
	tree.Each(func(*Node) { visited++ })
	assert.Zero(t, visited)
}

func TestDuplicateInsertReturnsOccupant(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			tree, nodes := buildScenario(t, v)
			before := tree.Keys()

			dup := newIntNode(5, 1<<20)
			occupant := tree.Insert(dup)

			assert.Equal(t, nodes[5], occupant)
			assert.NotEqual(t, dup, occupant)
			assert.Equal(t, 50, occupant.Value())
			assert.Equal(t, before, tree.Keys())
			assert.Equal(t, 6, tree.Len())
			assert.NoError(t, tree.Validate())

			// upsert by hand
			occupant.SetValue(500)
			assert.Equal(t, 500, tree.Search(5).Value())

			// the rejected node is still free to join another tree
			other := newTree(t, v)
			assert.Equal(t, dup, other.Insert(dup))
		})
	}
}

func TestSuccessorPredecessor(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			tree, _ := buildScenario(t, v)

			var forward []Key
			for n := tree.Min(tree.Root()); n != nil; n = tree.Successor(n) {
				forward = append(forward, n.Key())
			}
			assert.Equal(t, []Key{1, 3, 4, 5, 6, 8}, forward)

			var backward []Key
			for n := tree.Max(tree.Root()); n != nil; n = tree.Predecessor(n) {
				backward = append(backward, n.Key())
			}
			assert.Equal(t, []Key{8, 6, 5, 4, 3, 1}, backward)
		})
	}
}

func TestMinMaxOfSubtree(t *testing.T) {
	tree := newTree(t, BST)
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80, 35} {
		tree.Insert(newIntNode(k, 0))
	}
	thirty := tree.Search(30)
	assert.Equal(t, 20, tree.Min(thirty).Key())
	assert.Equal(t, 40, tree.Max(thirty).Key())
	assert.Equal(t, 35, tree.Min(tree.Search(40)).Key())
	assert.Nil(t, tree.Min(nil))
	assert.Nil(t, tree.Max(nil))
}

// A traversal of the tree should be in preorder
func TestEachPreOrderness(t *testing.T) {
	tree := newTree(t, BST)
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(newIntNode(k, 0))
	}

	var traversal []Key
	tree.Each(func(n *Node) {
		traversal = append(traversal, n.Key())
	})
	assert.Equal(t, []Key{50, 30, 20, 40, 70, 60, 80}, traversal)

	traversal = nil
	tree.Traverse(tree.Search(70), func(n *Node) {
		traversal = append(traversal, n.Key())
	})
	assert.Equal(t, []Key{70, 60, 80}, traversal)

	traversal = nil
	tree.Walk(func(n *Node) {
		traversal = append(traversal, n.Key())
	})
	assert.Equal(t, []Key{20, 30, 40, 50, 60, 70, 80}, traversal)
}

func TestHeight(t *testing.T) {
	tree := newTree(t, BST)
	for k := 0; k < 100; k++ {
		tree.Insert(newIntNode(k, 0))
	}
	// sorted input degenerates the plain tree into a list
	assert.Equal(t, 100, tree.Height(tree.Root()))

	avl := newTree(t, AVL)
	for k := 0; k < 100; k++ {
		avl.Insert(newIntNode(k, 0))
	}
	assert.Equal(t, avl.Root().Height(), avl.Height(avl.Root()))
	assert.True(t, avl.Height(avl.Root()) <= 9)
}

func TestRotationsPreserveOrder(t *testing.T) {
	tree := newTree(t, BST)
	for _, k := range []int{50, 30, 70, 20, 40} {
		tree.Insert(newIntNode(k, 0))
	}
	root := tree.Root()
	tree.RightRotate(root)
	assert.Equal(t, 30, tree.Root().Key())
	assert.Nil(t, tree.Root().Parent())
	assert.Equal(t, root, tree.Root().Right())
	assert.Equal(t, 40, root.Left().Key())
	assert.NoError(t, tree.Validate())

	tree.LeftRotate(tree.Root())
	assert.Equal(t, root, tree.Root())
	assert.Equal(t, []Key{20, 30, 40, 50, 70}, tree.Keys())
	assert.NoError(t, tree.Validate())

	// rotating a non-root subtree rewires the parent's link
	tree.RightRotate(tree.Search(30))
	assert.Equal(t, 20, root.Left().Key())
	assert.NoError(t, tree.Validate())

	assert.Panics(t, func() { tree.LeftRotate(tree.Search(40)) })
}

func TestContractViolationsPanic(t *testing.T) {
	rb := newTree(t, RB)
	avl := newTree(t, AVL)

	assert.Panics(t, func() { rb.AVLInsert(newIntNode(1, 0)) })
	assert.Panics(t, func() { rb.BSTInsert(newIntNode(1, 0)) })
	assert.Panics(t, func() { avl.TreapInsert(newIntNode(1, 0)) })
	assert.Panics(t, func() { avl.Insert(nil) })

	n := newIntNode(1, 0)
	rb.Insert(n)
	assert.Panics(t, func() { avl.Insert(n) }, "node joined to another tree")
	assert.Panics(t, func() { avl.Delete(n) }, "node of another tree")
	assert.Panics(t, func() { rb.RBDelete(newIntNode(2, 0)) }, "detached node")
	assert.Panics(t, func() { rb.Successor(nil) })
}

func TestFprint(t *testing.T) {
	tree, _ := buildScenario(t, RB)
	var buf bytes.Buffer
	depth := tree.Fprint(&buf, true)

	assert.Equal(t, tree.Height(tree.Root()), depth)
	out := buf.String()
	assert.Equal(t, 6, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, out, "|------+ ")
	assert.Contains(t, out, "(black)")
	assert.Contains(t, out, "→ 80")
}

func TestStringAndBytesKeys(t *testing.T) {
	words := []string{"delta", "alpha", "echo", "charlie", "bravo"}

	st, err := New(Config{Variant: RB, KeyLess: StringLess})
	require.NoError(t, err)
	bt, err := New(Config{Variant: AVL, KeyLess: BytesLess})
	require.NoError(t, err)

	for _, w := range words {
		st.Insert(NewNode(w, len(w)))
		bt.Insert(NewNode([]byte(w), len(w)))
	}
	assert.Equal(t, []Key{"alpha", "bravo", "charlie", "delta", "echo"}, st.Keys())
	assert.Equal(t, []byte("alpha"), bt.Min(bt.Root()).Key())
	assert.Equal(t, 7, bt.Search([]byte("charlie")).Value())
	assert.NoError(t, st.Validate())
	assert.NoError(t, bt.Validate())
}

// After inserting many random keys and then deleting them in another random
// order, every intermediate tree must keep its invariant.
func TestRandomInsertDeleteKeepsInvariants(t *testing.T) {
	for _, v := range Variants() {
		t.Run(v.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			tree := newTree(t, v)
			nodes := make(map[int]*Node)

			for i := 0; i < 2000; i++ {
				k := rng.Intn(1000)
				n := newIntNode(k, rng.Int())
				got := tree.Insert(n)
				if old, ok := nodes[k]; ok {
					assert.Equal(t, old, got)
				} else {
					assert.Equal(t, n, got)
					nodes[k] = n
				}
				if i%97 == 0 {
					require.NoError(t, tree.Validate())
				}
			}
			require.NoError(t, tree.Validate())
			assert.Equal(t, len(nodes), tree.Len())

			keys := tree.Keys()
			for i := 1; i < len(keys); i++ {
				assert.True(t, keys[i-1].(int) < keys[i].(int))
			}

			order := rng.Perm(1000)
			for i, k := range order {
				n, ok := nodes[k]
				if !ok {
					assert.Nil(t, tree.Search(k))
					continue
				}
				require.Equal(t, n, tree.Search(k))
				tree.Delete(n)
				delete(nodes, k)
				assert.Nil(t, tree.Search(k))
				if i%31 == 0 {
					require.NoError(t, tree.Validate())
				}
			}
			require.NoError(t, tree.Validate())
			assert.True(t, tree.IsEmpty())
			assert.Zero(t, tree.Len())
		})
	}
}

func TestBalancedVariantsStayShallow(t *testing.T) {
	const n = 1 << 12
	for _, v := range []Variant{RB, AVL} {
		tree := newTree(t, v)
		for k := 0; k < n; k++ {
			tree.Insert(newIntNode(k, 0))
		}
		require.NoError(t, tree.Validate())
		// 2*log2(n+1) bounds both
		assert.True(t, tree.Height(tree.Root()) <= 2*13, v.String())
	}
}

//
// Benchmarks
//
func benchmarkInsertDelete(b *testing.B, v Variant) {
	rng := rand.New(rand.NewSource(1))
	keys := rng.Perm(1 << 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := newTree(b, v)
		nodes := make([]*Node, len(keys))
		for j, k := range keys {
			nodes[j] = tree.Insert(newIntNode(k, rng.Int()))
		}
		for _, n := range nodes {
			tree.Delete(n)
		}
	}
}

func BenchmarkBSTInsertDelete(b *testing.B)   { benchmarkInsertDelete(b, BST) }
func BenchmarkRBInsertDelete(b *testing.B)    { benchmarkInsertDelete(b, RB) }
func BenchmarkAVLInsertDelete(b *testing.B)   { benchmarkInsertDelete(b, AVL) }
func BenchmarkTreapInsertDelete(b *testing.B) { benchmarkInsertDelete(b, Treap) }
