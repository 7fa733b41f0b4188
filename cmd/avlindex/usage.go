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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getUsageMessage() string {
	message := fmt.Sprintf(`

 **avlindex %s**

An in-memory ordered index built on a height-balanced (AVL) binary search tree.

Built with Go %s

# 1. Commands
* **demo**: run the reference scenario (the default)
* **run <file>**: run an op script, one op per line
* **bench**: insert shuffled keys, check the height bound, delete half
* **settings**: show or create ~/.avlindex.yaml
* **version**: print the version

# 2. Script ops
* insert k... / delete k...
* search k / successor k / predecessor k
* min / max / print / range lo hi
* validate / stats

Lines starting with # are comments. Keys are integers.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
