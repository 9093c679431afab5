package main

import (
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/partsim/internal/render"
	"github.com/joshuapare/partsim/internal/script"
	"github.com/joshuapare/partsim/internal/session"
)

// tuiHistoryLimit bounds the number of result lines kept on screen.
const tuiHistoryLimit = 8

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	tuiErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4B4B"))
	tuiStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type clearStatusMsg struct{}

type historyEntry struct {
	text string
	ok   bool
}

type tuiModel struct {
	sess    *session.Session
	input   textinput.Model
	history []historyEntry
	status  string
	color   bool
	width   int
}

func newTUIModel(sess *session.Session, color bool) tuiModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "allocate P1 90"
	ti.CharLimit = 256
	ti.Focus()

	return tuiModel{
		sess:  sess,
		input: ti,
		color: color,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			if strings.EqualFold(strings.TrimSpace(line), "quit") {
				return m, tea.Quit
			}
			m = m.submit(line)
			return m, nil
		case tea.KeyCtrlY:
			report := render.Report(m.sess.Allocator().Snapshot())
			if err := copyToClipboard(report); err != nil {
				m.status = "Failed to copy report"
			} else {
				m.status = "Report copied to clipboard"
			}
			// Clear status after 2 seconds
			return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
				return clearStatusMsg{}
			})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses and runs one command line.
func (m tuiModel) submit(line string) tuiModel {
	cmd, err := script.ParseLine(line)
	if errors.Is(err, script.ErrEmpty) {
		return m
	}
	if err != nil {
		return m.push(historyEntry{text: err.Error()})
	}

	o := m.sess.Exec(cmd)
	if o.Views != nil {
		// The table is always on screen; just acknowledge.
		return m.push(historyEntry{text: "report refreshed", ok: true})
	}
	return m.push(historyEntry{text: render.Outcome(o), ok: o.OK()})
}

func (m tuiModel) push(e historyEntry) tuiModel {
	h := append(append([]historyEntry(nil), m.history...), e)
	if len(h) > tuiHistoryLimit {
		h = h[len(h)-tuiHistoryLimit:]
	}
	m.history = h
	return m
}

func (m tuiModel) View() string {
	a := m.sess.Allocator()

	var b strings.Builder
	b.WriteString(tuiTitleStyle.Render("partsim - fixed partitions, first fit"))
	b.WriteString("\n")
	b.WriteString(render.Table(a.Snapshot(), a.Stats(), render.Style{Color: m.color}))
	b.WriteString("\n\n")

	for _, e := range m.history {
		line := e.text
		if !e.ok && m.color {
			line = tuiErrorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	status := m.status
	if status == "" {
		status = "enter: run  ctrl+y: copy report  esc: quit"
	}
	b.WriteString(tuiStatusStyle.Render(status))
	return b.String()
}
