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

// Node holds one key of the tree. A nil *Node is an absent subtree.
type Node[K any] struct {
	key    K
	left   *Node[K]
	right  *Node[K]
	height int // 1 for a leaf
}

func (n *Node[K]) Key() K {
	return n.key
}

// Height returns the cached height of the subtree rooted at n, 0 for nil.
func (n *Node[K]) Height() int {
	return height(n)
}

func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

func height[K any](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight[K any](node *Node[K]) {
	node.height = max(height(node.left), height(node.right)) + 1
}

func balanceFactor[K any](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

// rotateRight lifts y.left into y's place. y must have a left child.
func rotateRight[K any](y *Node[K]) *Node[K] {
	x := y.left
	t2 := x.right

	x.right = y
	y.left = t2

	// y is now below x, so it goes first
	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft lifts x.right into x's place. x must have a right child.
func rotateLeft[K any](x *Node[K]) *Node[K] {
	y := x.right
	t2 := y.left

	y.left = x
	x.right = t2

	updateHeight(x)
	updateHeight(y)

	return y
}

func findMin[K any](node *Node[K]) *Node[K] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func findMax[K any](node *Node[K]) *Node[K] {
	for node.right != nil {
		node = node.right
	}
	return node
}
