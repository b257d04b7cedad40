package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cwbudde/algo-siggen/dsp/chunk"
)

const barWidth = 40

// progressMsg carries a completion percentage from the job.
type progressMsg int

// doneMsg carries the terminal status of the job.
type doneMsg struct {
	status chunk.Status
	err    error
}

// model is the progress view shown while a job runs.
type model struct {
	title      string
	percent    int
	status     chunk.Status
	err        error
	cancelling bool
	cancel     context.CancelFunc
	updates    chan tea.Msg
}

func newModel(title string, cancel context.CancelFunc) model {
	return model{
		title:   title,
		status:  chunk.Running,
		cancel:  cancel,
		updates: make(chan tea.Msg, 128),
	}
}

// observer forwards job notifications into the model's channel. At most
// 101 progress messages and one done message are ever sent, so the
// buffered channel never blocks the job.
func (m model) observer() chunk.Observer {
	return chunk.ObserverFuncs{
		OnProgress: func(p int) { m.updates <- progressMsg(p) },
		OnDone:     func(s chunk.Status, err error) { m.updates <- doneMsg{status: s, err: err} },
	}
}

func waitForUpdate(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m model) Init() tea.Cmd {
	return waitForUpdate(m.updates)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if !m.cancelling && m.cancel != nil {
				m.cancel()
			}
			m.cancelling = true
		}
		return m, nil

	case progressMsg:
		m.percent = int(msg)
		return m, waitForUpdate(m.updates)

	case doneMsg:
		m.status = msg.status
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(m.title))
	sb.WriteString("\n")
	sb.WriteString(renderProgressBar(m.percent, barWidth))
	sb.WriteString("\n")

	switch {
	case m.status.Terminal():
		sb.WriteString(KeyStyle.Render("status"))
		sb.WriteString(ValueStyle.Render(m.status.String()))
	case m.cancelling:
		sb.WriteString(WarnStyle.Render("cancelling at next chunk..."))
	default:
		sb.WriteString(KeyStyle.Render("q to cancel"))
	}
	sb.WriteString("\n")

	return sb.String()
}

func renderProgressBar(percent, width int) string {
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", BarStyle.Render(bar), percent)
}
