// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package trees

import "fmt"

// Variant - balancing strategy of a tree.
type Variant uint8

// Supported variants.
const (
	BST Variant = iota
	RB
	AVL
	Treap
)

var variantNames = [...]string{
	BST:   "bst",
	RB:    "rb",
	AVL:   "avl",
	Treap: "treap",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// ParseVariant - map a variant name (as returned by String) back to its value.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownVariant)
}

// Variants - all variants, in declaration order.
func Variants() []Variant {
	return []Variant{BST, RB, AVL, Treap}
}

// Key type. Opaque to the tree, ordered only by Config.KeyLess.
type Key = interface{}

// Value type. Opaque payload owned by the caller.
type Value = interface{}

// Priority type. Opaque, ordered only by Config.PriorityLess.
type Priority = interface{}

// Less - strict weak order over keys or priorities.
type Less func(a, b interface{}) bool

// Callback - callback function that is passed in Each, Traverse and Walk.
type Callback func(node *Node)

// Config - per tree configuration, fixed for the lifetime of the tree.
type Config struct {
	Variant Variant

	// KeyLess is required for every variant.
	KeyLess Less

	// PriorityLess is required only by Treap.
	PriorityLess Less
}

// New - creates a new empty tree.
func New(config Config) (*Tree, error) {
	if config.Variant > Treap {
		return nil, fmt.Errorf("%v: %w", config.Variant, ErrUnknownVariant)
	}
	if config.KeyLess == nil {
		return nil, ErrMissingKeyLess
	}
	if config.Variant == Treap && config.PriorityLess == nil {
		return nil, ErrMissingPriorityLess
	}
	return &Tree{
		variant:      config.Variant,
		keyLess:      config.KeyLess,
		priorityLess: config.PriorityLess,
	}, nil
}
