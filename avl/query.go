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

// Search returns the node holding key, or nil if the key is absent.
func (tree *Tree[K]) Search(key K) *Node[K] {
	node := tree.root
	for node != nil {
		c := tree.cmp(key, node.key)
		if c == 0 {
			return node
		}
		if c < 0 {
			node = node.left
		} else {
			node = node.right
		}
	}
	return nil
}

func (tree *Tree[K]) Contains(key K) bool {
	return tree.Search(key) != nil
}

// MinNode returns the node with the smallest key, nil on an empty tree.
func (tree *Tree[K]) MinNode() *Node[K] {
	if tree.root == nil {
		return nil
	}
	return findMin(tree.root)
}

// MaxNode returns the node with the largest key, nil on an empty tree.
func (tree *Tree[K]) MaxNode() *Node[K] {
	if tree.root == nil {
		return nil
	}
	return findMax(tree.root)
}

// Min returns the smallest key or ErrEmptyTree.
func (tree *Tree[K]) Min() (K, error) {
	node := tree.MinNode()
	if node == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return node.key, nil
}

// Max returns the largest key or ErrEmptyTree.
func (tree *Tree[K]) Max() (K, error) {
	node := tree.MaxNode()
	if node == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	return node.key, nil
}

// Successor returns the next key after key in ascending order. The second
// result is false when key is absent or is the largest key.
func (tree *Tree[K]) Successor(key K) (K, bool) {
	node := tree.successorNode(key)
	if node == nil {
		var zero K
		return zero, false
	}
	return node.key, true
}

// Predecessor returns the previous key before key in ascending order. The
// second result is false when key is absent or is the smallest key.
func (tree *Tree[K]) Predecessor(key K) (K, bool) {
	node := tree.predecessorNode(key)
	if node == nil {
		var zero K
		return zero, false
	}
	return node.key, true
}

func (tree *Tree[K]) successorNode(key K) *Node[K] {
	target := tree.Search(key)
	if target == nil {
		return nil
	}
	if target.right != nil {
		return findMin(target.right)
	}

	// No right subtree: the answer is the last ancestor we left by going left.
	var successor *Node[K]
	ancestor := tree.root
	for ancestor != target {
		if tree.cmp(target.key, ancestor.key) < 0 {
			successor = ancestor
			ancestor = ancestor.left
		} else {
			ancestor = ancestor.right
		}
	}
	return successor
}

func (tree *Tree[K]) predecessorNode(key K) *Node[K] {
	target := tree.Search(key)
	if target == nil {
		return nil
	}
	if target.left != nil {
		return findMax(target.left)
	}

	var predecessor *Node[K]
	ancestor := tree.root
	for ancestor != target {
		if tree.cmp(target.key, ancestor.key) > 0 {
			predecessor = ancestor
			ancestor = ancestor.right
		} else {
			ancestor = ancestor.left
		}
	}
	return predecessor
}
