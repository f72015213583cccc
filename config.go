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

	"gopkg.in/yaml.v3"
)

const configFileName = ".keytree.yaml"

type IndexConfig struct {
	BloomSize     uint          `yaml:"bloom_size"`
	BloomHashes   uint          `yaml:"bloom_hashes"`
	RangeCacheTTL time.Duration `yaml:"range_cache_ttl"`
	ShowProgress  bool          `yaml:"show_progress"`
}

type OutputConfig struct {
	MaxPrintBytes int64 `yaml:"max_print_bytes"`
}

type LoggingConfig struct {
	Directory string `yaml:"directory"`
	Level     string `yaml:"level"`
}

type Config struct {
	Sources []string      `yaml:"sources"`
	Format  string        `yaml:"format"`
	Index   IndexConfig   `yaml:"index"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

var defaultConfig = Config{
	Sources: []string{},
	Index: IndexConfig{
		BloomSize:     65536,
		BloomHashes:   4,
		RangeCacheTTL: 5 * time.Minute,
		ShowProgress:  false,
	},
	Output: OutputConfig{
		MaxPrintBytes: 0,
	},
	Logging: LoggingConfig{
		Directory: "",
		Level:     "info",
	},
}

// configPathOverride is set by the --config flag
var configPathOverride string

func getConfigPath() (string, error) {
	if configPathOverride != "" {
		return configPathOverride, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the configuration file. A missing or broken file is not
// an error, the defaults are used instead.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	// start from the defaults so that a partial file only overrides what it names
	config := defaults()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return defaults(), fmt.Errorf("invalid config file %s: %v", configPath, err)
	}
	config.fillZeroes()

	return config, nil
}

func defaults() *Config {
	config := defaultConfig
	config.Sources = append([]string{}, defaultConfig.Sources...)
	return &config
}

// fillZeroes replaces settings the index cannot work with
func (c *Config) fillZeroes() {
	if c.Index.BloomSize == 0 {
		c.Index.BloomSize = defaultConfig.Index.BloomSize
	}
	if c.Index.BloomHashes == 0 {
		c.Index.BloomHashes = defaultConfig.Index.BloomHashes
	}
	if c.Index.RangeCacheTTL <= 0 {
		c.Index.RangeCacheTTL = defaultConfig.Index.RangeCacheTTL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultConfig.Logging.Level
	}
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 Keytree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("📂 %sSources:%s\n", Green, Reset)
	if len(config.Sources) == 0 {
		fmt.Printf("  • (none, the current shell history is loaded)\n")
	}
	for _, source := range config.Sources {
		fmt.Printf("  • %s\n", source)
	}
	if config.Format != "" {
		fmt.Printf("  • format: %s\n", config.Format)
	}

	fmt.Printf("\n🌳 %sIndex:%s\n", Green, Reset)
	fmt.Printf("  • %sbloom_size%s: %d\n", Green, Reset, config.Index.BloomSize)
	fmt.Printf("  • %sbloom_hashes%s: %d\n", Green, Reset, config.Index.BloomHashes)
	fmt.Printf("  • %srange_cache_ttl%s: %s\n", Green, Reset, config.Index.RangeCacheTTL)
	fmt.Printf("  • %sshow_progress%s: %v\n", Green, Reset, config.Index.ShowProgress)

	fmt.Printf("\n🖨  %sOutput:%s\n", Green, Reset)
	if config.Output.MaxPrintBytes == 0 {
		fmt.Printf("  • %smax_print_bytes%s: unlimited\n", Green, Reset)
	} else {
		fmt.Printf("  • %smax_print_bytes%s: %d\n", Green, Reset, config.Output.MaxPrintBytes)
	}

	fmt.Printf("\n📜 %sLogging:%s\n", Green, Reset)
	if config.Logging.Directory == "" {
		fmt.Printf("  • %sdirectory%s: (disabled)\n", Green, Reset)
	} else {
		fmt.Printf("  • %sdirectory%s: %s\n", Green, Reset, config.Logging.Directory)
	}
	fmt.Printf("  • %slevel%s: %s\n\n", Green, Reset, config.Logging.Level)

	fmt.Printf("💡 To load your own data, edit %s:\n", configPath)
	fmt.Printf("   sources:\n     - ~/data/entries.txt\n\n")
}
