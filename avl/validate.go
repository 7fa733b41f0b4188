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
	"fmt"
	"math"
)

// MaxHeight is the worst-case AVL height for n keys.
func MaxHeight(n int) float64 {
	return 1.44 * math.Log2(float64(n)+2)
}

// Validate walks the whole tree and checks key order, uniqueness, the
// balance bound, every cached height and the key count.
func (tree *Tree[K]) Validate() error {
	count, err := tree.validate(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("%w: counted %d nodes, size is %d", ErrInvariant, count, tree.size)
	}
	return nil
}

// validate checks the subtree at node against the open bounds (lo, hi).
// Strict bounds also rule out duplicate keys.
func (tree *Tree[K]) validate(node *Node[K], lo, hi *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lo != nil && tree.cmp(node.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not above %v", ErrInvariant, node.key, *lo)
	}
	if hi != nil && tree.cmp(node.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not below %v", ErrInvariant, node.key, *hi)
	}

	left, err := tree.validate(node.left, lo, &node.key)
	if err != nil {
		return 0, err
	}
	right, err := tree.validate(node.right, &node.key, hi)
	if err != nil {
		return 0, err
	}

	if want := max(height(node.left), height(node.right)) + 1; node.height != want {
		return 0, fmt.Errorf("%w: key %v has height %d, want %d", ErrInvariant, node.key, node.height, want)
	}
	if bf := balanceFactor(node); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: key %v has balance factor %d", ErrInvariant, node.key, bf)
	}
	return left + right + 1, nil
}
