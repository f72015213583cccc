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
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/keytree/loaders"
	"github.com/spf13/cobra"
)

const version = "0.3.0"

var (
	sourceFlags  []string
	formatFlag   string
	progressFlag bool
)

// session is everything a command needs after loading its sources
type session struct {
	config *Config
	index  *Index
	stats  LoadStats
	close  func()
}

// expandHome resolves a leading ~/ in configured paths
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}

// resolveSources picks the files to load: flags first, then the config,
// then the history file of the current shell
func resolveSources(config *Config) ([]string, string, error) {
	format := config.Format
	if formatFlag != "" {
		format = formatFlag
	}

	sources := sourceFlags
	if len(sources) == 0 {
		sources = config.Sources
	}
	if len(sources) == 0 {
		historyPath, err := loaders.DefaultHistoryPath()
		if err != nil {
			return nil, "", err
		}
		return []string{historyPath}, format, nil
	}

	resolved := make([]string, len(sources))
	for i, source := range sources {
		resolved[i] = expandHome(source)
	}
	return resolved, format, nil
}

// openSession loads the config and the sources into a fresh index
func openSession() *session {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	if progressFlag {
		config.Index.ShowProgress = true
	}

	events, closeLog, err := setupLogging(config.Logging)
	if err != nil {
		log.Printf("File logging disabled: %v", err)
	}

	sources, format, err := resolveSources(config)
	if err != nil {
		log.Fatalf("Error resolving sources: %v", err)
	}

	idx := NewIndex(config.Index, events)
	stats, err := idx.LoadSources(loaders.NewLoaderManager(), sources, format)
	if err != nil {
		log.Fatalf("Error loading sources: %v", err)
	}

	return &session{config: config, index: idx, stats: stats, close: closeLog}
}

func main() {
	InitializeColors()

	asciiLogo := `
██╗  ██╗███████╗██╗   ██╗████████╗██████╗ ███████╗███████╗
██║ ██╔╝██╔════╝╚██╗ ██╔╝╚══██╔══╝██╔══██╗██╔════╝██╔════╝
█████╔╝ █████╗   ╚████╔╝    ██║   ██████╔╝█████╗  █████╗
██╔═██╗ ██╔══╝    ╚██╔╝     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██╗███████╗   ██║      ██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝╚══════╝   ╚═╝      ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Ordered key lookups and range queries over a balanced tree [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Load the sources and print index statistics",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Stats loads every source and reports size, height and rejected duplicates"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := openSession()
			defer s.close()

			fmt.Printf("%sKeys%s:        %d\n", Green, Reset, s.index.Size())
			fmt.Printf("%sHeight%s:      %d\n", Green, Reset, s.index.Height())
			fmt.Printf("%sDuplicates%s:  %d\n", Green, Reset, s.stats.Duplicates)
			fmt.Printf("%sLoad time%s:   %s\n", Green, Reset, s.stats.Took)
			if first := s.index.Tree().First(); first != nil {
				last := s.index.Tree().Last()
				fmt.Printf("%sKey range%s:   %d .. %d\n", Green, Reset, first.Key(), last.Key())
				fmt.Printf("%sAs dates%s:    %s .. %s\n", Green, Reset, FormatEpochKey(first.Key()), FormatEpochKey(last.Key()))
			}
		},
	}

	var cmdFind = &cobra.Command{
		Use:   "find KEY",
		Short: "Print the value stored for a key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			key, err := parseKey(args[0])
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			s := openSession()
			defer s.close()

			value, ok := s.index.Find(key)
			if !ok {
				fmt.Fprintf(os.Stderr, "%s%d not found%s\n", Error, key, Reset)
				s.close()
				os.Exit(1)
			}
			fmt.Println(value)
		},
	}

	var cmdRange = &cobra.Command{
		Use:   "range [LOW HIGH]",
		Short: "Print the values with keys between LOW and HIGH, inclusive",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Range prints values in key order. Bounds are integers or dates
(YYYY-MM-DD, "YYYY-MM-DD hh:mm:ss") read as Unix seconds in UTC.
--since and --until replace LOW and HIGH.`),
		Args: cobra.RangeArgs(0, 2),
		Run: func(cmd *cobra.Command, args []string) {
			lowText, highText := cmd.Flag("since").Value.String(), cmd.Flag("until").Value.String()
			switch len(args) {
			case 2:
				lowText, highText = args[0], args[1]
			case 1:
				log.Fatalf("Error: range needs both LOW and HIGH")
			}
			if lowText == "" || highText == "" {
				log.Fatalf("Error: range needs both LOW and HIGH (or --since and --until)")
			}

			low, err := ParseKeyBound(lowText)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			high, err := ParseKeyBound(highText)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			s := openSession()
			defer s.close()

			values := s.index.FindRange(low, high)
			if len(values) > 0 {
				fmt.Println(strings.Join(values, "\n"))
			}
		},
	}
	cmdRange.Flags().String("since", "", "lower bound, integer or date")
	cmdRange.Flags().String("until", "", "upper bound, integer or date")

	var cmdPrint = &cobra.Command{
		Use:   "print",
		Short: "Draw the tree rotated a quarter turn",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := openSession()
			defer s.close()

			maxBytes, _ := cmd.Flags().GetInt64("max-bytes")
			if !cmd.Flags().Changed("max-bytes") {
				maxBytes = s.config.Output.MaxPrintBytes
			}

			lw := NewLimitedWriter(os.Stdout, maxBytes)
			if _, err := s.index.Tree().WriteTo(lw); err != nil {
				log.Fatalf("Error printing tree: %v", err)
			}
			if lw.Truncated() {
				fmt.Fprintf(os.Stderr, "\n%s[OUTPUT TRUNCATED - Size limit exceeded]%s\n", Warning, Reset)
			}

			if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
				if err := clipboard.WriteAll(s.index.Tree().String()); err != nil {
					log.Printf("Failed to copy text: %v", err)
				} else {
					fmt.Fprintf(os.Stderr, "📋 Copied %s%d%s lines to clipboard.\n", Green, s.index.Size(), Reset)
				}
			}
		},
	}
	cmdPrint.Flags().Bool("copy", false, "also copy the full rendering to the clipboard")
	cmdPrint.Flags().Int64("max-bytes", 0, "stop printing after this many bytes (0 = unlimited)")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Launches the interactive keytree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Shell opens a terminal UI to insert, query, snapshot and check the index"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := openSession()
			defer s.close()

			if err := runShellApp(s.index); err != nil {
				log.Fatalf("Error running shell: %v", err)
			}
		},
	}

	var cmdDashboard = &cobra.Command{
		Use:   "dashboard",
		Short: "Show index statistics and the tree shape",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			s := openSession()
			defer s.close()

			runDashboard(s.index, s.stats)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings shows the configuration and creates the default file when missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Keytree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the keytree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Keytree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "keytree",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringArrayVar(&sourceFlags, "source", nil, "file to load (repeatable)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "force a loader: text, yaml, zsh or bash")
	rootCmd.PersistentFlags().BoolVar(&progressFlag, "progress", false, "show a progress bar while loading")
	rootCmd.PersistentFlags().StringVar(&configPathOverride, "config", "", "config file (default ~/.keytree.yaml)")

	rootCmd.AddCommand(cmdStats, cmdFind, cmdRange, cmdPrint, cmdShell, cmdDashboard, cmdSettings, cmdUsage, cmdVersion)
	rootCmd.Execute()
}
