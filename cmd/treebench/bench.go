// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	humanize "github.com/dustin/go-humanize"

	"github.com/k33nice/trees"
)

type result struct {
	variant trees.Variant
	keys    int
	height  int
	insert  time.Duration
	search  time.Duration
	remove  time.Duration
}

// runVariant times the three phases on a fresh tree of variant v. The tree is
// validated between phases, outside the timed sections.
func runVariant(v trees.Variant, keys []string, priorities []int64, dump func(*trees.Tree)) (result, error) {
	r := result{variant: v, keys: len(keys)}
	tree, err := trees.New(trees.Config{
		Variant:      v,
		KeyLess:      trees.StringLess,
		PriorityLess: trees.Int64Less,
	})
	if err != nil {
		return r, err
	}

	start := time.Now()
	for i, k := range keys {
		tree.Insert(trees.NewTreapNode(k, i, priorities[i]))
	}
	r.insert = time.Since(start)

	if err := tree.Validate(); err != nil {
		return r, fmt.Errorf("after insert: %w", err)
	}
	if tree.Len() != len(keys) {
		return r, fmt.Errorf("inserted %d keys, tree holds %d", len(keys), tree.Len())
	}
	r.height = tree.Height(tree.Root())
	if dump != nil {
		dump(tree)
	}

	missing := 0
	start = time.Now()
	for _, k := range keys {
		if tree.Search(k) == nil {
			missing++
		}
	}
	r.search = time.Since(start)
	if missing != 0 {
		return r, fmt.Errorf("%d keys not found", missing)
	}

	start = time.Now()
	for _, k := range keys {
		tree.Delete(tree.Search(k))
	}
	r.remove = time.Since(start)

	if !tree.IsEmpty() {
		return r, fmt.Errorf("%d nodes left after delete", tree.Len())
	}
	return r, nil
}

func opsPerSecond(n int, d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return humanize.Comma(int64(float64(n) / d.Seconds()))
}

func (r result) report(w io.Writer) {
	fmt.Fprintf(w, "%-6s height %-4d insert %-12v (%s/s)  search %-12v (%s/s)  delete %-12v (%s/s)\n",
		r.variant, r.height,
		r.insert, opsPerSecond(r.keys, r.insert),
		r.search, opsPerSecond(r.keys, r.search),
		r.remove, opsPerSecond(r.keys, r.remove),
	)
}
