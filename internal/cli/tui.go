package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	apperrors "github.com/fibspiral/fibspiral/pkg/errors"
	"github.com/fibspiral/fibspiral/pkg/fib"
	"github.com/fibspiral/fibspiral/pkg/render"
	"github.com/fibspiral/fibspiral/pkg/spiral"
)

// maxInputDigits bounds the input field; valid indices are at most two
// digits anyway.
const maxInputDigits = 3

// spiralStyles color the preview blocks, echoing the golden palette of
// the SVG output.
var spiralStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("179")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("222")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("185")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("186")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
}

// tuiCommand creates the tui command for the interactive front end.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive Fibonacci spiral explorer",
		Long: `Interactive Fibonacci spiral explorer.

Type an index and press enter to compute the Fibonacci number, its
sequence, and a terminal preview of the golden spiral. Press s to save
the current spiral as an SVG file, r to reset, and q to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(newTUIModel(c), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

// =============================================================================
// tuiModel - Interactive spiral explorer
// =============================================================================

// tuiModel is the bubbletea model for the interactive front end.
type tuiModel struct {
	cli    *CLI
	input  string
	errMsg string
	status string

	// computed state, populated on enter
	n        uint32
	value    uint64
	sequence []uint64
	rects    []spiral.PositionedRect
	hasRun   bool

	termWidth  int
	termHeight int
}

func newTUIModel(c *CLI) tuiModel {
	return tuiModel{cli: c, termWidth: 80, termHeight: 24}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m.reset(), nil
		case "s":
			m = m.saveSVG()
		case "enter":
			m = m.compute()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' && len(m.input) < maxInputDigits {
				m.input += string(msg.Runes)
			}
		}
	}
	return m, nil
}

// reset clears the input and all computed state.
func (m tuiModel) reset() tuiModel {
	return newTUIModel(m.cli).withSize(m.termWidth, m.termHeight)
}

func (m tuiModel) withSize(w, h int) tuiModel {
	m.termWidth = w
	m.termHeight = h
	return m
}

// compute validates the input and recomputes sequence and layout.
func (m tuiModel) compute() tuiModel {
	m.errMsg = ""
	m.status = ""

	n, err := fib.ParseIndex(m.input, m.cli.Config.MaxIndex.TUI)
	if err != nil {
		m.errMsg = apperrors.UserMessage(err)
		return m
	}

	m.n = n
	m.sequence = fib.SequenceIterative(n)
	m.value = m.sequence[n]
	m.rects = spiral.Compute(m.sequence, spiral.Viewport{
		Width:  m.cli.Config.Viewport.Width,
		Height: m.cli.Config.Viewport.Height,
	})
	m.hasRun = true
	return m
}

// saveSVG writes the current spiral to an SVG file in the working directory.
func (m tuiModel) saveSVG() tuiModel {
	if !m.hasRun {
		m.errMsg = "nothing to save yet"
		return m
	}

	vp := spiral.Viewport{
		Width:  m.cli.Config.Viewport.Width,
		Height: m.cli.Config.Viewport.Height,
	}
	data := render.SVG(m.rects, vp, render.WithTitle(m.n))

	path := fmt.Sprintf("fibspiral_%d.svg", m.n)
	if err := os.WriteFile(path, data, 0644); err != nil {
		m.errMsg = fmt.Sprintf("save failed: %v", err)
		return m
	}
	m.status = "saved " + path
	return m
}

func (m tuiModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Fibonacci Spiral"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("enter an index between 0 and %d", m.cli.Config.MaxIndex.TUI)))
	b.WriteString("\n\n")

	b.WriteString(StyleHighlight.Render("n: ") + StyleValue.Render(m.input) + StyleHighlight.Render("▌"))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(StyleError.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(StyleSuccess.Render(m.status))
		b.WriteString("\n")
	}

	if m.hasRun {
		b.WriteString("\n")
		b.WriteString(StyleNumber.Render(fmt.Sprintf("F(%d) = %d", m.n, m.value)))
		b.WriteString("\n\n")
		b.WriteString(m.viewSpiral())
		b.WriteString(m.viewSequence())
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("enter compute · s save svg · r reset · q quit"))
	return b.String()
}

// viewSequence renders the sequence listing and its aggregate properties.
func (m tuiModel) viewSequence() string {
	var b strings.Builder

	b.WriteString(StyleDim.Render(fib.FormatSequence(m.sequence)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("sum: %d", fib.Sum(m.sequence))))
	if m.n >= 2 {
		ratio := fib.RatioApproximation(m.sequence[m.n], m.sequence[m.n-1])
		b.WriteString(StyleDim.Render(fmt.Sprintf("  ·  ratio: %.6f (φ ≈ %.6f)", ratio, fib.GoldenRatio)))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("Displaying %d terms | Largest: F(%d) = %d", len(m.sequence), m.n, m.value)))
	b.WriteString("\n")
	return b.String()
}

// viewSpiral paints the layout onto a character grid. Terminal cells are
// roughly twice as tall as wide, so the row count is halved to keep the
// squares square.
func (m tuiModel) viewSpiral() string {
	if len(m.rects) == 0 {
		return ""
	}

	bbox := spiral.BoundingBox(m.rects)
	if bbox.W <= 0 || bbox.H <= 0 {
		return ""
	}

	cols := m.termWidth - 4
	if cols > 64 {
		cols = 64
	}
	if cols < 16 {
		cols = 16
	}
	rows := int(float64(cols) * (bbox.H / bbox.W) / 2)
	if rows < 4 {
		rows = 4
	}
	if maxRows := m.termHeight - 14; maxRows >= 4 && rows > maxRows {
		rows = maxRows
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := bbox.X + (float64(col)+0.5)/float64(cols)*bbox.W
			y := bbox.Y + (float64(row)+0.5)/float64(rows)*bbox.H
			b.WriteString(cellAt(m.rects, x, y))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cellAt returns the styled character for the topmost rect containing
// the point, or a space when the point is outside the tiling.
func cellAt(rects []spiral.PositionedRect, x, y float64) string {
	for i := len(rects) - 1; i >= 0; i-- {
		r := rects[i]
		if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
			return spiralStyles[r.Index%len(spiralStyles)].Render("█")
		}
	}
	return " "
}
