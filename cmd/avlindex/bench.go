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

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/cybrota/avlindex/avl"
	"github.com/cybrota/avlindex/index"
	"github.com/schollz/progressbar/v3"
)

type BenchResult struct {
	Keys        int
	Height      int
	Bound       float64
	AfterDelete int // height once half the keys are gone
}

// runBench inserts n shuffled keys, checks the tree, removes every other
// key and checks it again. Progress is drawn on progress.
func runBench(ix *index.Index[int], n int, seed uint64, progress io.Writer) (BenchResult, error) {
	keys := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)).Perm(n)

	bar := progressbar.NewOptions(n*2,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Inserting keys..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	for _, key := range keys {
		ix.Insert(key)
		bar.Add(1)
	}
	if err := ix.Validate(); err != nil {
		return BenchResult{}, fmt.Errorf("after inserts: %w", err)
	}
	result := BenchResult{
		Keys:   ix.Len(),
		Height: ix.Height(),
		Bound:  avl.MaxHeight(ix.Len()),
	}
	if err := checkHeightBound(result.Height, result.Keys); err != nil {
		return result, fmt.Errorf("after inserts: %w", err)
	}

	bar.Describe("Deleting keys...")
	for i, key := range keys {
		if i%2 == 0 {
			ix.Delete(key)
		}
		bar.Add(1)
	}
	bar.Finish()

	if err := ix.Validate(); err != nil {
		return BenchResult{}, fmt.Errorf("after deletes: %w", err)
	}
	result.AfterDelete = ix.Height()
	if err := checkHeightBound(result.AfterDelete, ix.Len()); err != nil {
		return result, fmt.Errorf("after deletes: %w", err)
	}
	return result, nil
}

var errHeightBound = errors.New("height exceeds AVL bound")

func checkHeightBound(height, keys int) error {
	if bound := avl.MaxHeight(keys); float64(height) > bound {
		return fmt.Errorf("%w: height %d for %d keys, bound %.2f", errHeightBound, height, keys, bound)
	}
	return nil
}
