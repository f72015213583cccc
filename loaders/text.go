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
	"strconv"
	"strings"
)

const (
	maxLineSize = 1024 * 1024 // 1MB
)

// TextLoader reads one "KEY VALUE" or "KEY,VALUE" entry per line.
// Blank lines and lines starting with '#' are ignored.
type TextLoader struct{}

func (tl *TextLoader) Name() string {
	return "text"
}

// SupportsFile accepts anything, it is the fallback loader
func (tl *TextLoader) SupportsFile(path string) bool {
	return true
}

func (tl *TextLoader) Priority() int {
	return 9
}

func (tl *TextLoader) Load(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseTextLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNumber, err)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// parseTextLine splits at the first comma or run of whitespace
func parseTextLine(line string) (Entry, error) {
	cut := strings.IndexFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	keyStr := line
	value := ""
	if cut >= 0 {
		keyStr = line[:cut]
		value = strings.TrimSpace(line[cut+1:])
	}

	key, err := strconv.Atoi(keyStr)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid key %q", keyStr)
	}
	return Entry{Key: key, Value: value}, nil
}
