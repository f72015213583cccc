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
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

var ErrUnknownCommand = errors.New("unknown command")

const shellHelp = `insert KEY VALUE...   add a key, existing keys are never replaced
find KEY              show the value stored for KEY
range LOW HIGH        values with LOW <= key <= HIGH (integers or dates)
height                height of the tree
size                  number of keys
print                 draw the tree rotated a quarter turn
snapshot              keep a copy of the current tree
restore               replace the tree with the last snapshot
clear                 remove every key
check                 verify the tree invariants
help                  this text`

// Shell runs text commands against an index
type Shell struct {
	idx *Index
}

func NewShell(idx *Index) *Shell {
	return &Shell{idx: idx}
}

// splitCommand splits a full command line into words.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

// Execute runs a single command line and returns its output
func (s *Shell) Execute(line string) (string, error) {
	args, err := splitCommand(line)
	if err != nil {
		return "", err
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, params := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "insert", "add":
		if len(params) < 2 {
			return "", usageError("insert KEY VALUE...")
		}
		key, err := parseKey(params[0])
		if err != nil {
			return "", err
		}
		if !s.idx.Insert(key, strings.Join(params[1:], " ")) {
			return fmt.Sprintf("duplicate key %d, nothing inserted", key), nil
		}
		return fmt.Sprintf("inserted %d", key), nil

	case "find", "get":
		if len(params) != 1 {
			return "", usageError("find KEY")
		}
		key, err := parseKey(params[0])
		if err != nil {
			return "", err
		}
		value, ok := s.idx.Find(key)
		if !ok {
			return fmt.Sprintf("%d not found", key), nil
		}
		return value, nil

	case "range":
		if len(params) != 2 {
			return "", usageError("range LOW HIGH")
		}
		low, err := ParseKeyBound(params[0])
		if err != nil {
			return "", err
		}
		high, err := ParseKeyBound(params[1])
		if err != nil {
			return "", err
		}
		values := s.idx.FindRange(low, high)
		if len(values) == 0 {
			return "no keys in range", nil
		}
		return strings.Join(values, "\n"), nil

	case "height":
		return strconv.Itoa(s.idx.Height()), nil

	case "size", "count":
		return strconv.Itoa(s.idx.Size()), nil

	case "print", "show":
		return strings.TrimSuffix(s.idx.Tree().String(), "\n"), nil

	case "snapshot":
		s.idx.Snapshot()
		return fmt.Sprintf("snapshot of %d keys taken", s.idx.Size()), nil

	case "restore":
		if !s.idx.Restore() {
			return "", errors.New("no snapshot to restore")
		}
		return fmt.Sprintf("restored %d keys", s.idx.Size()), nil

	case "clear":
		s.idx.Clear()
		return "cleared", nil

	case "check", "verify":
		if err := s.idx.Tree().Verify(); err != nil {
			return "", err
		}
		return fmt.Sprintf("ok: %d keys, height %d", s.idx.Size(), s.idx.Height()), nil

	case "help", "?":
		return shellHelp, nil
	}

	return "", fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
}

func usageError(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}

func parseKey(s string) (int, error) {
	key, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q", s)
	}
	return key, nil
}
