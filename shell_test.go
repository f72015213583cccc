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
	"strings"
	"testing"
)

func TestShellExecute(t *testing.T) {
	shell := NewShell(testIndex())

	steps := []struct {
		line     string
		expected string
	}{
		{"", ""},
		{"size", "0"},
		{"height", "0"},
		{"print", "Empty Tree"},
		{"insert 10 ten", "inserted 10"},
		{`insert 20 "twenty, quoted"`, "inserted 20"},
		{"insert 30 thirty and more", "inserted 30"},
		{"insert 10 other", "duplicate key 10, nothing inserted"},
		{"size", "3"},
		{"height", "2"},
		{"find 20", "twenty, quoted"},
		{"find 30", "thirty and more"},
		{"find 25", "25 not found"},
		{"range 15 30", "twenty, quoted\nthirty and more"},
		{"range 31 40", "no keys in range"},
		{"print", "\t30 , thirty and more\n20 , twenty, quoted\n\t10 , ten"},
		{"check", "ok: 3 keys, height 2"},
		{"snapshot", "snapshot of 3 keys taken"},
		{"insert 40 forty", "inserted 40"},
		{"restore", "restored 3 keys"},
		{"find 40", "40 not found"},
		{"clear", "cleared"},
		{"size", "0"},
		{"RESTORE", "restored 3 keys"},
	}

	for _, step := range steps {
		got, err := shell.Execute(step.line)
		if err != nil {
			t.Fatalf("Execute(%q) returned error: %v", step.line, err)
		}
		if got != step.expected {
			t.Fatalf("Execute(%q) = %q; want %q", step.line, got, step.expected)
		}
	}
}

func TestShellErrors(t *testing.T) {
	shell := NewShell(testIndex())

	tests := []struct {
		line    string
		message string
	}{
		{"insert 1", "usage: insert"},
		{"insert one 1", "invalid key"},
		{"find", "usage: find"},
		{"find x", "invalid key"},
		{"range 1", "usage: range"},
		{"range 1 soon", "invalid key or date"},
		{"restore", "no snapshot"},
		{`insert 1 "unterminated`, "failed to parse"},
	}

	for _, tc := range tests {
		_, err := shell.Execute(tc.line)
		if err == nil {
			t.Errorf("Execute(%q): expected an error", tc.line)
			continue
		}
		if !strings.Contains(err.Error(), tc.message) {
			t.Errorf("Execute(%q) error = %q; want it to contain %q", tc.line, err, tc.message)
		}
	}

	_, err := shell.Execute("delete 5")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Execute(\"delete 5\") error = %v; want ErrUnknownCommand", err)
	}
}

func TestShellRangeWithDates(t *testing.T) {
	shell := NewShell(testIndex())
	shell.Execute("insert 86400 second-day")
	shell.Execute("insert 172800 third-day")

	got, err := shell.Execute("range 1970-01-02 1970-01-02")
	if err != nil {
		t.Fatal(err)
	}
	if got != "second-day" {
		t.Errorf("range by date = %q; want second-day", got)
	}
}

// TestSplitCommand verifies that splitCommand correctly tokenizes a command line.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"find 1", []string{"find", "1"}},
		{`insert 5 "hello world"`, []string{"insert", "5", "hello world"}},
		{"range  -3   9", []string{"range", "-3", "9"}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		if err != nil {
			t.Errorf("splitCommand(%q) returned error: %v", tc.input, err)
			continue
		}
		if strings.Join(parts, "|") != strings.Join(tc.expected, "|") {
			t.Errorf("splitCommand(%q): expected %v, got %v", tc.input, tc.expected, parts)
		}
	}
}
