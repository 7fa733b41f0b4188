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
	"log"
	"os"
	"strings"

	"github.com/cybrota/avlindex/index"
	"github.com/spf13/cobra"
)

var version = "dev"

func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func stylesFor(cmd *cobra.Command, config *Config) Styles {
	plain, _ := cmd.Flags().GetBool("plain")
	return NewStyles(config.Output.Color && !plain)
}

func runDemo(cmd *cobra.Command) {
	config := loadConfigOrDefault()
	ix := index.New[int](config.IndexOptions())
	st := stylesFor(cmd, config)
	runner := NewScriptRunner(ix, os.Stdout, st)
	if err := runner.Run(strings.NewReader(demoScript)); err != nil {
		log.Fatalf("%s %v", st.Error("Demo failed:"), err)
	}
}

func main() {
	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the reference insert/query/delete scenario",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runDemo(cmd)
		},
	}

	var cmdRun = &cobra.Command{
		Use:   "run <script>",
		Short: "Run an op script against a fresh index",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			file, err := os.Open(args[0])
			if err != nil {
				log.Fatalf("Error opening script: %v", err)
			}
			defer file.Close()

			ix := index.New[int](config.IndexOptions())
			st := stylesFor(cmd, config)
			runner := NewScriptRunner(ix, os.Stdout, st)
			if err := runner.Run(file); err != nil {
				log.Fatalf("%s %v", st.Error(args[0]+":"), err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Insert shuffled keys and check the AVL height bound",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if cmd.Flags().Changed("keys") {
				config.Bench.Keys, _ = cmd.Flags().GetInt("keys")
			}
			if cmd.Flags().Changed("seed") {
				config.Bench.Seed, _ = cmd.Flags().GetUint64("seed")
			}
			if config.Bench.Keys <= 0 {
				log.Fatalf("bench needs a positive key count, got %d", config.Bench.Keys)
			}

			opts := config.IndexOptions()
			opts.ExpectedKeys = uint(config.Bench.Keys)
			ix := index.New[int](opts)

			st := stylesFor(cmd, config)
			res, err := runBench(ix, config.Bench.Keys, config.Bench.Seed, os.Stderr)
			if err != nil {
				log.Fatalf("%s %v", st.Error("Bench failed:"), err)
			}

			fmt.Println()
			fmt.Printf("%s %s\n", st.Label("keys:"), st.Value(res.Keys))
			fmt.Printf("%s %s %s\n", st.Label("height:"), st.Value(res.Height), st.Muted(fmt.Sprintf("(bound %.2f)", res.Bound)))
			fmt.Printf("%s %s\n", st.Label("height after deleting half:"), st.Value(res.AfterDelete))
		},
	}
	cmdBench.Flags().Int("keys", defaultConfig.Bench.Keys, "number of keys to insert")
	cmdBench.Flags().Uint64("seed", defaultConfig.Bench.Seed, "shuffle seed")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avlindex configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadConfigOrDefault()
			if err := displaySettings(stylesFor(cmd, config)); err != nil {
				log.Fatalf("Settings failed: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlindex usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getUsageMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlindex version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlindex",
		Version: version,
		Short:   "Ordered in-memory index on an AVL tree",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the demo when no subcommand is provided
			runDemo(cmd)
		},
	}
	rootCmd.PersistentFlags().Bool("plain", false, "disable colored output")
	rootCmd.AddCommand(cmdDemo, cmdRun, cmdBench, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
