package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/domino14/foxgrid/internal/foxcount"
)

var errInterrupted = errors.New("interrupted")

const maxBarWidth = 60

type progressMsg struct {
	done, total uint64
}

type finishedMsg struct {
	hist *foxcount.Histogram
	err  error
}

type progressModel struct {
	bar         progress.Model
	label       string
	done, total uint64
	hist        *foxcount.Histogram
	err         error
	interrupted bool
}

func newProgressModel(label string) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(maxBarWidth)),
		label: label,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.interrupted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, maxBarWidth)
	case progressMsg:
		m.done, m.total = msg.done, msg.total
	case finishedMsg:
		m.hist, m.err = msg.hist, msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) fraction() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	return fmt.Sprintf("%s\n%s  %d/%d\n", m.label, m.bar.ViewAs(m.fraction()), m.done, m.total)
}

// runWithProgress counts on a separate goroutine while a progress bar is
// drawn on stderr, so stdout only ever carries the report.
func runWithProgress(counter *foxcount.Counter, label string) (*foxcount.Histogram, error) {
	p := tea.NewProgram(newProgressModel(label), tea.WithOutput(os.Stderr))
	counter.OnProgress = func(done, total uint64) {
		p.Send(progressMsg{done, total})
	}
	go func() {
		h, err := counter.Run()
		p.Send(finishedMsg{h, err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := final.(progressModel)
	if m.interrupted {
		return nil, errInterrupted
	}
	return m.hist, m.err
}
