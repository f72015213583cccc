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
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the styling for the shell
type Styles struct {
	Border         lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	Echo           lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Echo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// copiedMsg reports the outcome of a clipboard copy
type copiedMsg struct {
	err error
}

// shellModel is the Bubble Tea state of the interactive shell
type shellModel struct {
	ready bool

	input  textinput.Model
	output viewport.Model

	shell      *Shell
	transcript []string
	lastOutput string
	status     string
	showHelp   bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

func newShellModel(shell *Shell) shellModel {
	ti := textinput.New()
	ti.Placeholder = "insert 42 answer, find 42, range 1 100, help..."
	ti.Prompt = "keytree> "
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	output := viewport.New(0, 0)
	output.SetContent("Type a command and press enter. F1 shows the command list.")

	return shellModel{
		input:      ti,
		output:     output,
		shell:      shell,
		transcript: []string{},
		styles:     NewStyles(),
	}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.execute()
		case "ctrl+y":
			if m.lastOutput == "" {
				m.status = "nothing to copy"
				return m, nil
			}
			text := m.lastOutput
			return m, func() tea.Msg {
				return copiedMsg{err: clipboard.WriteAll(text)}
			}
		case "f1":
			m.showHelp = !m.showHelp
			m.refresh()
			return m, nil
		case "pgup":
			m.output.LineUp(m.output.Height)
			return m, nil
		case "pgdown":
			m.output.LineDown(m.output.Height)
			return m, nil
		}

	case copiedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.status = "📋 output copied to clipboard"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		m.ready = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs the typed line and appends it with its result to the transcript
func (m shellModel) execute() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	if line == "quit" || line == "exit" {
		return m, tea.Quit
	}

	m.showHelp = false
	m.transcript = append(m.transcript, m.styles.Echo.Render("> "+line))

	result, err := m.shell.Execute(line)
	if err != nil {
		m.transcript = append(m.transcript, m.styles.ErrorMessage.Render("error: "+err.Error()))
		m.status = ""
	} else {
		m.lastOutput = result
		if result != "" {
			m.transcript = append(m.transcript, result)
		}
		m.status = fmt.Sprintf("size %d • height %d", m.shell.idx.Size(), m.shell.idx.Height())
	}

	m.refresh()
	return m, nil
}

// refresh puts either the transcript or the command help in the viewport
func (m *shellModel) refresh() {
	if m.showHelp {
		m.output.SetContent(m.renderCommandHelp())
		m.output.GotoTop()
		return
	}
	m.output.SetContent(strings.Join(m.transcript, "\n"))
	m.output.GotoBottom()
}

func (m *shellModel) renderCommandHelp() string {
	text := "# Shell commands\n\n```\n" + shellHelp + "\n```\n"
	if m.glamourRenderer == nil {
		width := m.output.Width - 4
		if width < 20 {
			width = 72
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return shellHelp
		}
		m.glamourRenderer = renderer
	}
	if rendered, err := m.glamourRenderer.Render(text); err == nil {
		return rendered
	}
	return shellHelp
}

func (m *shellModel) updateLayout() {
	m.input.Width = m.width - 4 - len(m.input.Prompt)
	m.output.Width = m.width - 4
	m.output.Height = m.height - 10
	if m.output.Height < 1 {
		m.output.Height = 1
	}
}

func (m shellModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	title := " 🌳 Output "
	if m.showHelp {
		title = " 📖 Commands "
	}
	outputBox := m.styles.Border.
		Width(m.width - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(title),
			m.output.View(),
		))

	inputBox := m.styles.Border.
		Width(m.width - 2).
		Render(m.input.View())

	status := m.styles.SuccessMessage.Render(m.status)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		outputBox,
		inputBox,
		status,
		m.renderKeyHelp(),
	)
}

// renderKeyHelp renders the key binding footer
func (m shellModel) renderKeyHelp() string {
	keys := []string{"enter", "ctrl+y", "f1", "pgup/pgdown", "esc"}
	descs := []string{"run command", "copy last output", "commands", "scroll", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runShellApp starts the interactive shell on idx
func runShellApp(idx *Index) error {
	InitializeColors()

	program := tea.NewProgram(
		newShellModel(NewShell(idx)),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
