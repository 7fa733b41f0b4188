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
	"errors"
	"slices"
	"testing"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Duplicate Insertion",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"dog", "cat", "dog"},
			ExpectedOrder: []string{"cat", "dog"},
		},
		{
			Name:          "Delete Missing Key",
			InitialKeys:   []string{"dog", "cat"},
			KeysToDelete:  []string{"ant", "zebra"},
			ExpectedOrder: []string{"cat", "dog"},
		},
		{
			Name:          "Delete Everything",
			InitialKeys:   []string{"b", "a", "c"},
			KeysToDelete:  []string{"a", "b", "c"},
			ExpectedOrder: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[string]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			for _, key := range tc.KeysToDelete {
				tree.Delete(key)
			}
			if err := tree.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if got := tree.Keys(); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("In-order traversal = %v; want %v", got, tc.ExpectedOrder)
			}
			if tree.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len() = %d; want %d", tree.Len(), len(tc.ExpectedOrder))
			}
		})
	}
}

func TestReferenceScenario(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{50, 30, 70, 20, 40, 60, 80} {
		if !tree.Insert(key) {
			t.Fatalf("Insert(%d) = false; want true", key)
		}
	}

	if got, want := tree.Keys(), []int{20, 30, 40, 50, 60, 70, 80}; !slices.Equal(got, want) {
		t.Fatalf("Keys() = %v; want %v", got, want)
	}
	if node := tree.Search(40); node == nil || node.Key() != 40 {
		t.Errorf("Search(40) = %v; want node 40", node)
	}
	if got, ok := tree.Successor(30); !ok || got != 40 {
		t.Errorf("Successor(30) = %d, %v; want 40, true", got, ok)
	}
	if got, ok := tree.Predecessor(30); !ok || got != 20 {
		t.Errorf("Predecessor(30) = %d, %v; want 20, true", got, ok)
	}
	if got, err := tree.Min(); err != nil || got != 20 {
		t.Errorf("Min() = %d, %v; want 20", got, err)
	}
	if got, err := tree.Max(); err != nil || got != 80 {
		t.Errorf("Max() = %d, %v; want 80", got, err)
	}

	if !tree.Delete(30) {
		t.Fatalf("Delete(30) = false; want true")
	}
	if got, want := tree.Keys(), []int{20, 40, 50, 60, 70, 80}; !slices.Equal(got, want) {
		t.Errorf("Keys() after delete = %v; want %v", got, want)
	}
	// 30 had two children, so 40 was copied into its node.
	if left := tree.Root().Left(); left.Key() != 40 || left.Left().Key() != 20 || left.Right() != nil {
		t.Errorf("unexpected left subtree after delete: %v", tree.Keys())
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestInsertRotations(t *testing.T) {
	tests := []struct {
		name string
		keys []int
	}{
		{"Left-Left", []int{3, 2, 1}},
		{"Right-Right", []int{1, 2, 3}},
		{"Left-Right", []int{3, 1, 2}},
		{"Right-Left", []int{1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tt.keys {
				tree.Insert(key)
			}
			root := tree.Root()
			if root.Key() != 2 || root.Left().Key() != 1 || root.Right().Key() != 3 {
				t.Errorf("root = %d; want 2 with children 1 and 3", root.Key())
			}
			if root.Height() != 2 || root.Left().Height() != 1 || root.Right().Height() != 1 {
				t.Errorf("heights = %d/%d/%d; want 2/1/1", root.Height(), root.Left().Height(), root.Right().Height())
			}
		})
	}
}

func TestDeleteRotations(t *testing.T) {
	tests := []struct {
		name     string
		keys     []int
		remove   int
		wantRoot int
		want     []int
	}{
		{"Left-Left", []int{2, 1, 3, 0}, 3, 1, []int{0, 1, 2}},
		{"Left-Left balanced child", []int{4, 2, 6, 1, 3}, 6, 2, []int{1, 2, 3, 4}},
		{"Right-Right", []int{2, 1, 3, 4}, 1, 3, []int{2, 3, 4}},
		{"Left-Right", []int{2, 0, 3, 1}, 3, 1, []int{0, 1, 2}},
		{"Right-Left", []int{1, 0, 3, 2}, 0, 2, []int{1, 2, 3}},
		{"Two children", []int{2, 1, 3}, 2, 3, []int{1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tt.keys {
				tree.Insert(key)
			}
			if !tree.Delete(tt.remove) {
				t.Fatalf("Delete(%d) = false; want true", tt.remove)
			}
			if err := tree.Validate(); err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if got := tree.Root().Key(); got != tt.wantRoot {
				t.Errorf("root = %d; want %d", got, tt.wantRoot)
			}
			if got := tree.Keys(); !slices.Equal(got, tt.want) {
				t.Errorf("Keys() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIdempotentInsert(t *testing.T) {
	once := New[int]()
	twice := New[int]()
	for _, key := range []int{8, 4, 12, 2, 6, 10, 14, 1} {
		once.Insert(key)
		twice.Insert(key)
		if twice.Insert(key) {
			t.Fatalf("second Insert(%d) = true; want false", key)
		}
	}
	if !sameShape(once.Root(), twice.Root()) {
		t.Errorf("duplicate inserts changed the tree shape")
	}
	if once.Len() != twice.Len() {
		t.Errorf("Len() = %d and %d; want equal", once.Len(), twice.Len())
	}
}

func sameShape(a, b *Node[int]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Key() == b.Key() && a.Height() == b.Height() &&
		sameShape(a.Left(), b.Left()) && sameShape(a.Right(), b.Right())
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()

	if _, err := tree.Min(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("Min() error = %v; want ErrEmptyTree", err)
	}
	if _, err := tree.Max(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("Max() error = %v; want ErrEmptyTree", err)
	}
	if tree.MinNode() != nil || tree.MaxNode() != nil {
		t.Errorf("MinNode/MaxNode on empty tree should be nil")
	}
	if tree.Search(1) != nil {
		t.Errorf("Search on empty tree should be nil")
	}
	if _, ok := tree.Successor(1); ok {
		t.Errorf("Successor on empty tree should be absent")
	}
	if tree.Delete(1) {
		t.Errorf("Delete on empty tree = true; want false")
	}
	if tree.Height() != 0 || tree.Len() != 0 {
		t.Errorf("Height/Len = %d/%d; want 0/0", tree.Height(), tree.Len())
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestNewFuncDescending(t *testing.T) {
	tree := NewFunc(func(a, b int) int { return b - a })
	for _, key := range []int{1, 5, 3, 4, 2} {
		tree.Insert(key)
	}
	if got, want := tree.Keys(), []int{5, 4, 3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("Keys() = %v; want %v", got, want)
	}
	if got, _ := tree.Min(); got != 5 {
		t.Errorf("Min() = %d; want 5", got)
	}
	if err := tree.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
