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
	"os"
	"path/filepath"
	"time"

	"github.com/cybrota/avlindex/index"
	"gopkg.in/yaml.v3"
)

const configFileName = ".avlindex.yaml"

type IndexConfig struct {
	ExpectedKeys      uint          `yaml:"expected_keys"`
	FalsePositiveRate float64       `yaml:"false_positive_rate"`
	QueryCacheTTL     time.Duration `yaml:"query_cache_ttl"`
}

type OutputConfig struct {
	Color bool `yaml:"color"`
}

type BenchConfig struct {
	Keys int    `yaml:"keys"`
	Seed uint64 `yaml:"seed"`
}

type Config struct {
	Index  IndexConfig  `yaml:"index"`
	Output OutputConfig `yaml:"output"`
	Bench  BenchConfig  `yaml:"bench"`
}

var defaultConfig = Config{
	Index: IndexConfig{
		ExpectedKeys:      1024,
		FalsePositiveRate: 0.01,
		QueryCacheTTL:     5 * time.Minute,
	},
	Output: OutputConfig{
		Color: true,
	},
	Bench: BenchConfig{
		Keys: 100000,
		Seed: 1,
	},
}

// IndexOptions maps the index section onto index.Options.
func (c *Config) IndexOptions() index.Options {
	return index.Options{
		ExpectedKeys:      c.Index.ExpectedKeys,
		FalsePositiveRate: c.Index.FalsePositiveRate,
		QueryCacheTTL:     c.Index.QueryCacheTTL,
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avlindex.yaml. A missing or unreadable file yields
// the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return defaults(), fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	// Fields missing from the file keep their defaults.
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	return config, nil
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

func writeDefaultConfig(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func displaySettings(st Styles) error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Printf("Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n\n", st.Label("Config file:"), configPath)
	fmt.Printf("%s\n", st.Label("index"))
	fmt.Printf("  expected_keys: %s\n", st.Value(config.Index.ExpectedKeys))
	fmt.Printf("  false_positive_rate: %s\n", st.Value(config.Index.FalsePositiveRate))
	fmt.Printf("  query_cache_ttl: %s\n", st.Value(config.Index.QueryCacheTTL))
	fmt.Printf("%s\n", st.Label("output"))
	fmt.Printf("  color: %s\n", st.Value(config.Output.Color))
	fmt.Printf("%s\n", st.Label("bench"))
	fmt.Printf("  keys: %s\n", st.Value(config.Bench.Keys))
	fmt.Printf("  seed: %s\n", st.Value(config.Bench.Seed))
	return nil
}
