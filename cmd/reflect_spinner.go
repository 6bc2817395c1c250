package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type reflectionDoneMsg struct {
	err error
}

type reflectionSpinnerModel struct {
	spinner spinner.Model
	label   string
	run     tea.Cmd
	started time.Time
	err     error
	done    bool
}

func newReflectionSpinnerModel(label string, run tea.Cmd) reflectionSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return reflectionSpinnerModel{
		spinner: s,
		label:   label,
		run:     run,
		started: time.Now(),
	}
}

func (m reflectionSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m reflectionSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case reflectionDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m reflectionSpinnerModel) elapsedStyle(elapsed time.Duration) string {
	return lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("(%s)", elapsed))
}

func (m reflectionSpinnerModel) View() string {
	if m.done {
		return ""
	}

	elapsed := time.Since(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, m.elapsedStyle(elapsed))
}

// runReflectionSpinner shows progress on output until run returns.
func runReflectionSpinner(ctx context.Context, output io.Writer, label string, run func(context.Context) error) error {
	runCmd := func() tea.Msg {
		return reflectionDoneMsg{err: run(ctx)}
	}

	p := tea.NewProgram(
		newReflectionSpinnerModel(label, runCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(reflectionSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
