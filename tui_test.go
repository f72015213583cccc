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

	tea "github.com/charmbracelet/bubbletea"
)

func typeAndRun(t *testing.T, m shellModel, line string) shellModel {
	t.Helper()
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(shellModel)
}

func TestShellModelExecute(t *testing.T) {
	m := newShellModel(NewShell(testIndex()))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = next.(shellModel)

	m = typeAndRun(t, m, "insert 7 seven")
	if m.lastOutput != "inserted 7" {
		t.Errorf("lastOutput = %q; want %q", m.lastOutput, "inserted 7")
	}
	if m.input.Value() != "" {
		t.Errorf("input not reset: %q", m.input.Value())
	}

	m = typeAndRun(t, m, "find 7")
	if m.lastOutput != "seven" {
		t.Errorf("lastOutput = %q; want seven", m.lastOutput)
	}
	if m.status != "size 1 • height 1" {
		t.Errorf("status = %q", m.status)
	}

	m = typeAndRun(t, m, "bogus")
	if m.lastOutput != "seven" {
		t.Errorf("a failed command must keep the last output, got %q", m.lastOutput)
	}
	last := m.transcript[len(m.transcript)-1]
	if !strings.Contains(last, "unknown command") {
		t.Errorf("transcript does not show the error: %q", last)
	}

	if !strings.Contains(m.View(), "keytree>") {
		t.Error("view does not show the prompt")
	}
}

func TestShellModelQuit(t *testing.T) {
	m := newShellModel(NewShell(testIndex()))
	m.input.SetValue("quit")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestShellModelCopyStatus(t *testing.T) {
	m := newShellModel(NewShell(testIndex()))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if cmd != nil {
		t.Error("nothing to copy must not start a clipboard command")
	}
	if next.(shellModel).status != "nothing to copy" {
		t.Errorf("status = %q", next.(shellModel).status)
	}

	next, _ = m.Update(copiedMsg{err: errors.New("no clipboard")})
	if !strings.Contains(next.(shellModel).status, "copy failed") {
		t.Errorf("status = %q", next.(shellModel).status)
	}
}

func TestShellModelNotReady(t *testing.T) {
	m := newShellModel(NewShell(testIndex()))
	if m.View() != "Initializing..." {
		t.Errorf("View() = %q", m.View())
	}
}
