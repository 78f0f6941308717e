// tui.go
package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/programme-lv/scoreboard/cli"
	"github.com/programme-lv/scoreboard/render"
	"github.com/programme-lv/scoreboard/scoreboard"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3498db"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#9b59b6"))
	frozenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e67e22"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95a5a6"))
)

type model struct {
	srvc       *scoreboard.ScoreboardSrvc
	input      textinput.Model
	board      []string
	lastOutput string
	done       bool
}

func initialModel(srvc *scoreboard.ScoreboardSrvc) model {
	ti := textinput.New()
	ti.Placeholder = "SUBMIT A BY team WITH Accepted AT 10"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 80

	m := model{srvc: srvc, input: ti}
	m.refreshBoard()
	return m
}

func (m *model) refreshBoard() {
	m.board = render.Scoreboard(m.srvc.Flush())
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "" {
				return m, nil
			}

			var buf bytes.Buffer
			quit := cli.New(m.srvc, &buf).Execute(line)
			m.lastOutput = strings.TrimRight(buf.String(), "\n")
			m.refreshBoard()
			if quit {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var sb strings.Builder

	title := "Contest scoreboard"
	if m.srvc.Frozen() {
		title += frozenStyle.Render("  [FROZEN]")
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	if problems := m.srvc.Problems(); len(problems) > 0 {
		sb.WriteString(headerStyle.Render("team rank solved penalty " + strings.Join(problems, " ")))
		sb.WriteString("\n")
	}
	for _, line := range m.board {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.lastOutput != "" {
		sb.WriteString("\n")
		sb.WriteString(outputStyle.Render(m.lastOutput))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\nPress esc to quit.\n")
	return sb.String()
}
