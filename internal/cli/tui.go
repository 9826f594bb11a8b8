package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/wordhaze/wordhaze/pkg/pipeline"
)

// progressBarWidth is the character width of the placement progress bar.
const progressBarWidth = 30

// placementMsg reports one placed word.
type placementMsg struct {
	placed int
	total  int
	word   string
	size   int
}

// generateDoneMsg carries the pipeline result once it finishes.
type generateDoneMsg struct {
	result *pipeline.Result
	err    error
}

// progressModel is the bubbletea model for the live placement display.
type progressModel struct {
	placed int
	total  int
	word   string
	size   int

	result *pipeline.Result
	err    error
	quit   bool
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		}
	case placementMsg:
		m.placed = msg.placed
		m.total = msg.total
		m.word = msg.word
		m.size = msg.size
	case generateDoneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Placing words"))
	b.WriteString("\n\n")

	filled := 0
	if m.total > 0 {
		filled = m.placed * progressBarWidth / m.total
	}
	bar := StyleHighlight.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", progressBarWidth-filled))
	b.WriteString("  " + bar)
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d/%d", m.placed, m.total)))
	b.WriteString("\n")

	if m.word != "" {
		b.WriteString("  " + StyleValue.Render(m.word) +
			StyleDim.Render(fmt.Sprintf("  %dpx", m.size)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	return b.String()
}

// runWithProgress executes the pipeline behind a live placement display.
// Pipeline logs below warn level are suppressed while the display owns
// the terminal.
func (c *CLI) runWithProgress(ctx context.Context, opts pipeline.Options) (*pipeline.Result, error) {
	prev := c.Logger.GetLevel()
	c.Logger.SetLevel(log.WarnLevel)
	defer c.Logger.SetLevel(prev)

	p := tea.NewProgram(progressModel{}, tea.WithOutput(os.Stderr), tea.WithContext(ctx))

	opts.OnPlace = func(placed, total int, word string, size int) {
		p.Send(placementMsg{placed: placed, total: total, word: word, size: size})
	}

	runner := pipeline.NewRunner(c.Logger)
	go func() {
		result, err := runner.Execute(ctx, opts)
		p.Send(generateDoneMsg{result: result, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(progressModel)
	if m.err != nil {
		return nil, m.err
	}
	if m.quit || m.result == nil {
		return nil, context.Canceled
	}
	return m.result, nil
}
