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

// Package avl implements a height-balanced binary search tree over unique,
// totally ordered keys.
//
// A Tree is not safe for concurrent use. Any mutation invalidates nodes and
// iterators obtained before it.
package avl

import (
	"cmp"
	"errors"
)

var (
	// ErrEmptyTree is returned by Min and Max on a tree with no keys.
	ErrEmptyTree = errors.New("avl: empty tree")
	// ErrInvariant is wrapped by every Validate failure.
	ErrInvariant = errors.New("avl: invariant violated")
)

type Tree[K any] struct {
	root *Node[K]
	cmp  func(a, b K) int
	size int
}

// New returns an empty tree ordered by cmp.Compare.
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc[K](cmp.Compare[K])
}

// NewFunc returns an empty tree ordered by compare, which must define a
// total order and return a negative, zero or positive result.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	return &Tree[K]{cmp: compare}
}

func (tree *Tree[K]) Len() int {
	return tree.size
}

// Height of the whole tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Insert adds key and reports whether it was added. A key that is already
// present leaves the tree unchanged and returns false.
func (tree *Tree[K]) Insert(key K) bool {
	var inserted bool
	tree.root, inserted = tree.insertRecursive(tree.root, key)
	if inserted {
		tree.size++
	}
	return inserted
}

func (tree *Tree[K]) insertRecursive(node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return &Node[K]{key: key, height: 1}, true
	}

	var inserted bool
	switch c := tree.cmp(key, node.key); {
	case c < 0:
		node.left, inserted = tree.insertRecursive(node.left, key)
	case c > 0:
		node.right, inserted = tree.insertRecursive(node.right, key)
	default:
		return node, false
	}
	if !inserted {
		return node, false
	}

	updateHeight(node)

	// The new key sits below the heavy child, so comparing against that
	// child's key tells the outer case from the inner one.
	balance := balanceFactor(node)
	if balance > 1 {
		if tree.cmp(key, node.left.key) < 0 {
			return rotateRight(node), true
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node), true
	}
	if balance < -1 {
		if tree.cmp(key, node.right.key) > 0 {
			return rotateLeft(node), true
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node), true
	}

	return node, true
}

// Delete removes key and reports whether it was present.
func (tree *Tree[K]) Delete(key K) bool {
	var deleted bool
	tree.root, deleted = tree.deleteRecursive(tree.root, key)
	if deleted {
		tree.size--
	}
	return deleted
}

func (tree *Tree[K]) deleteRecursive(node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false // Key not found
	}

	var deleted bool
	switch c := tree.cmp(key, node.key); {
	case c < 0:
		node.left, deleted = tree.deleteRecursive(node.left, key)
	case c > 0:
		node.right, deleted = tree.deleteRecursive(node.right, key)
	default:
		// Zero or one child: the child takes this node's slot.
		if node.left == nil {
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}
		// Two children: pull the in-order successor's key up, then remove
		// the successor from the right subtree.
		successor := findMin(node.right)
		node.key = successor.key
		node.right, _ = tree.deleteRecursive(node.right, successor.key)
		deleted = true
	}
	if !deleted {
		return node, false
	}

	updateHeight(node)
	return rebalance(node), true
}

// rebalance restores the AVL property at node after a deletion below it.
// The heavier child's own balance picks single or double rotation.
func rebalance[K any](node *Node[K]) *Node[K] {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
