// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
)

const charset = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz"

func randomString(rng *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rng.Intn(len(charset))]
	}
	return string(b)
}

// randomKeys returns n distinct keys of the given length in random order.
func randomKeys(rng *rand.Rand, n, length int) ([]string, error) {
	if !enoughKeys(n, length) {
		return nil, fmt.Errorf("cannot make %d distinct keys of length %d", n, length)
	}
	seen := make(map[string]struct{}, n)
	keys := make([]string, 0, n)
	for len(keys) < n {
		k := randomString(rng, length)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys, nil
}

// enoughKeys reports whether len(charset)^length >= n.
func enoughKeys(n, length int) bool {
	available := 1
	for i := 0; i < length && available < n; i++ {
		if available > n/len(charset) {
			return true
		}
		available *= len(charset)
	}
	return available >= n
}
