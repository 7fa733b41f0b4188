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
	"iter"
	"strings"
)

// All returns the keys in ascending order. Each call walks the tree afresh
// from the root.
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(tree.root, yield)
	}
}

// Walk calls fn for each key in ascending order until fn returns false.
func (tree *Tree[K]) Walk(fn func(key K) bool) {
	inOrder(tree.root, fn)
}

// Keys collects the keys in ascending order.
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.size)
	inOrder(tree.root, func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func inOrder[K any](node *Node[K], yield func(K) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.left, yield) && yield(node.key) && inOrder(node.right, yield)
}

// Range returns the keys k with lo <= k < hi in ascending order.
func (tree *Tree[K]) Range(lo, hi K) iter.Seq[K] {
	return func(yield func(K) bool) {
		tree.rangeSearch(tree.root, lo, hi, yield)
	}
}

// rangeSearch skips a left subtree when node.key < lo and a right subtree
// when node.key >= hi, since neither can hold a match.
func (tree *Tree[K]) rangeSearch(node *Node[K], lo, hi K, yield func(K) bool) bool {
	if node == nil {
		return true
	}

	aboveLo := tree.cmp(node.key, lo) >= 0
	belowHi := tree.cmp(node.key, hi) < 0

	if aboveLo && !tree.rangeSearch(node.left, lo, hi, yield) {
		return false
	}
	if aboveLo && belowHi && !yield(node.key) {
		return false
	}
	if belowHi {
		return tree.rangeSearch(node.right, lo, hi, yield)
	}
	return true
}

// ascendFrom visits the keys k >= lo in ascending order.
func (tree *Tree[K]) ascendFrom(node *Node[K], lo K, yield func(K) bool) bool {
	if node == nil {
		return true
	}
	if tree.cmp(node.key, lo) < 0 {
		return tree.ascendFrom(node.right, lo, yield)
	}
	return tree.ascendFrom(node.left, lo, yield) && yield(node.key) && inOrder(node.right, yield)
}

// Prefix returns the keys of a string tree that start with prefix. Keys
// sharing a prefix are contiguous, so the scan ends at the first miss.
func Prefix(tree *Tree[string], prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		tree.ascendFrom(tree.root, prefix, func(key string) bool {
			return strings.HasPrefix(key, prefix) && yield(key)
		})
	}
}
