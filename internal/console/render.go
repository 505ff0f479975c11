package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var numberColors = [9]lipgloss.Color{
	1: "#0000FF", // blue
	2: "#008000", // green
	3: "#FF0000", // red
	4: "#800080", // purple
	5: "#800000", // maroon
	6: "#40E0D0", // turquoise
	7: "#000000", // black
	8: "#808080", // gray
}

// Renderer draws games as text. Colours are dropped when the output is not
// a terminal.
type Renderer struct {
	numbers  [9]lipgloss.Style
	hidden   lipgloss.Style
	flag     lipgloss.Style
	question lipgloss.Style
	mine     lipgloss.Style
	exploded lipgloss.Style
	wrong    lipgloss.Style
	axis     lipgloss.Style
	status   lipgloss.Style
}

func NewRenderer(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	rd := &Renderer{
		hidden:   r.NewStyle().Faint(true),
		flag:     r.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
		question: r.NewStyle().Foreground(lipgloss.Color("#FFA500")),
		mine:     r.NewStyle().Bold(true),
		exploded: r.NewStyle().Background(lipgloss.Color("#FF0000")).Bold(true),
		wrong:    r.NewStyle().Strikethrough(true),
		axis:     r.NewStyle().Faint(true),
		status:   r.NewStyle().Bold(true),
	}
	for n, color := range numberColors {
		rd.numbers[n] = r.NewStyle().Foreground(color).Bold(true)
	}
	return rd
}

// Cell glyphs:
//
//	#  hidden       F  flagged     ?  questioned
//	.  empty        1-8 number
//	*  mine         X  exploded mine   x  wrong flag
func (rd *Renderer) cell(v mines.CellView) string {
	switch {
	case v.Exploded:
		return rd.exploded.Render("X")
	case v.WrongFlag:
		return rd.wrong.Render("x")
	case v.State == mines.Flagged:
		return rd.flag.Render("F")
	case v.Mine:
		return rd.mine.Render("*")
	case v.State == mines.Questioned:
		return rd.question.Render("?")
	case v.State == mines.Hidden:
		return rd.hidden.Render("#")
	case v.Number > 0:
		return rd.numbers[v.Number].Render(fmt.Sprint(v.Number))
	default:
		return "."
	}
}

func (rd *Renderer) Board(g *mines.Game) string {
	view := g.View()
	width := len(fmt.Sprint(g.Size - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width+1))
	for x := range g.Size {
		sb.WriteString(rd.axis.Render(fmt.Sprintf("%*d", width, x)))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')
	for y, row := range view {
		sb.WriteString(rd.axis.Render(fmt.Sprintf("%*d", width, y)))
		sb.WriteByte(' ')
		for _, v := range row {
			sb.WriteString(strings.Repeat(" ", width-1))
			sb.WriteString(rd.cell(v))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (rd *Renderer) Status(g *mines.Game) string {
	var s string
	switch g.Status() {
	case mines.Won:
		s = "You won!"
	case mines.Lost:
		s = "BOOM! You lost."
	default:
		s = fmt.Sprintf("Mines left: %d", g.Remaining())
	}
	return rd.status.Render(fmt.Sprintf("[%s %s] %s", g.Preset(), g.Seed(), s))
}
