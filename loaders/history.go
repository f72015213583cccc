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

package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ZshHistoryLoader reads an extended zsh history file, keyed by the epoch
// of each command. Lines without the ": <epoch>:<duration>;" prefix carry
// no key and are skipped.
type ZshHistoryLoader struct{}

func (zl *ZshHistoryLoader) Name() string {
	return "zsh"
}

func (zl *ZshHistoryLoader) SupportsFile(path string) bool {
	return strings.Contains(filepath.Base(path), "zsh_history")
}

func (zl *ZshHistoryLoader) Priority() int {
	return 1
}

func (zl *ZshHistoryLoader) Load(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ": ") {
			continue
		}

		// Example line: ": 1673291850:0;ls -la"
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}

		epoch, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}

		// parts[2] is "0;ls -la", the duration comes before the semicolon
		subParts := strings.SplitN(parts[2], ";", 2)
		if len(subParts) < 2 || subParts[1] == "" {
			continue
		}

		entries = append(entries, Entry{Key: epoch, Value: subParts[1]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// BashHistoryLoader reads a bash history written with HISTTIMEFORMAT set,
// where a "#<epoch>" line precedes each command. Commands without a
// timestamp are skipped.
type BashHistoryLoader struct{}

func (bl *BashHistoryLoader) Name() string {
	return "bash"
}

func (bl *BashHistoryLoader) SupportsFile(path string) bool {
	return strings.Contains(filepath.Base(path), "bash_history")
}

func (bl *BashHistoryLoader) Priority() int {
	return 2
}

func (bl *BashHistoryLoader) Load(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var lastEpoch *int

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			epochStr := strings.TrimSpace(strings.TrimPrefix(line, "#"))
			if epoch, err := strconv.Atoi(epochStr); err == nil {
				lastEpoch = &epoch
			} else {
				lastEpoch = nil
			}
			continue
		}

		if lastEpoch != nil && line != "" {
			entries = append(entries, Entry{Key: *lastEpoch, Value: line})
		}
		// the timestamp only applies to the command right after it
		lastEpoch = nil
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// DetectShell returns the name of the current Unix shell, bash when $SHELL
// is not set
func DetectShell() string {
	currentShellPath, ok := os.LookupEnv("SHELL")
	if !ok || currentShellPath == "" {
		return "bash"
	}
	return filepath.Base(currentShellPath)
}

// DefaultHistoryPath returns the history file of the current shell
func DefaultHistoryPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch s := DetectShell(); s {
	case "zsh":
		return filepath.Join(homeDir, ".zsh_history"), nil
	case "bash":
		return filepath.Join(homeDir, ".bash_history"), nil
	default:
		return "", fmt.Errorf("unknown shell: %s", s)
	}
}
