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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/avlindex/avl"
	"github.com/cybrota/avlindex/index"
	"github.com/mattn/go-shellwords"
)

var (
	errUnknownOp = errors.New("unknown op")
	errArgs      = errors.New("wrong number of arguments")
)

// demoScript is the reference scenario: seven inserts, a few queries and
// one two-child delete.
const demoScript = `# reference scenario
insert 50 30 70 20 40 60 80
print
search 40
successor 30
predecessor 30
min
max
delete 30
print
`

// ScriptRunner applies op lines to an integer index and reports results.
type ScriptRunner struct {
	ix  *index.Index[int]
	out io.Writer
	st  Styles
}

func NewScriptRunner(ix *index.Index[int], out io.Writer, st Styles) *ScriptRunner {
	return &ScriptRunner{ix: ix, out: out, st: st}
}

// Run executes every line of r, stopping at the first failing line.
func (sr *ScriptRunner) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := sr.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return scanner.Err()
}

// Exec runs a single op line. Blank lines and comments are skipped.
func (sr *ScriptRunner) Exec(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	op, rest := strings.ToLower(args[0]), args[1:]
	keys, err := parseKeys(rest)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch op {
	case "insert":
		if len(keys) == 0 {
			return fmt.Errorf("%s: %w", op, errArgs)
		}
		for _, key := range keys {
			sr.ix.Insert(key)
		}
	case "delete":
		if len(keys) == 0 {
			return fmt.Errorf("%s: %w", op, errArgs)
		}
		for _, key := range keys {
			result := "not found"
			if sr.ix.Delete(key) {
				result = "removed"
			}
			sr.report(fmt.Sprintf("delete %d:", key), result)
		}
	case "search":
		if len(keys) != 1 {
			return fmt.Errorf("%s: %w", op, errArgs)
		}
		result := "not found"
		if sr.ix.Contains(keys[0]) {
			result = "found"
		}
		sr.report(fmt.Sprintf("search %d:", keys[0]), result)
	case "successor", "predecessor":
		if len(keys) != 1 {
			return fmt.Errorf("%s: %w", op, errArgs)
		}
		lookup := sr.ix.Successor
		if op == "predecessor" {
			lookup = sr.ix.Predecessor
		}
		result := "none"
		if key, ok := lookup(keys[0]); ok {
			result = strconv.Itoa(key)
		}
		sr.report(fmt.Sprintf("%s %d:", op, keys[0]), result)
	case "min", "max":
		if len(keys) != 0 {
			return fmt.Errorf("%s: %w", op, errArgs)
		}
		find := sr.ix.Min
		if op == "max" {
			find = sr.ix.Max
		}
		key, err := find()
		if errors.Is(err, avl.ErrEmptyTree) {
			sr.report(op+":", "empty tree")
			return nil
		}
		sr.report(op+":", strconv.Itoa(key))
	case "print":
		sr.report("in-order:", joinKeys(sr.ix.Keys()))
	case "range":
		if len(keys) != 2 {
			return fmt.Errorf("%s: %w", op, errArgs)
		}
		sr.report(fmt.Sprintf("range %d %d:", keys[0], keys[1]), joinKeys(sr.ix.Range(keys[0], keys[1])))
	case "validate":
		if err := sr.ix.Validate(); err != nil {
			return err
		}
		sr.report("validate:", "ok")
	case "stats":
		stats := sr.ix.Stats()
		sr.report("stats:", fmt.Sprintf("keys=%d height=%d filter_rebuilds=%d cached_queries=%d",
			stats.Keys, stats.Height, stats.FilterRebuilds, stats.CachedQueries))
	default:
		return fmt.Errorf("%w %q", errUnknownOp, op)
	}
	return nil
}

func (sr *ScriptRunner) report(label, value string) {
	if value == "" {
		fmt.Fprintln(sr.out, sr.st.Label(label))
		return
	}
	fmt.Fprintf(sr.out, "%s %s\n", sr.st.Label(label), sr.st.Value(value))
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", arg, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = strconv.Itoa(key)
	}
	return strings.Join(parts, " ")
}
