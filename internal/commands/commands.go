package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type Op uint8

const (
	Get Op = iota
	Open
	Flag
	Chord
	Restart
)

func (op Op) String() string {
	switch op {
	case Get:
		return "get"
	case Open:
		return "open"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	case Restart:
		return "restart"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// [Op] implements [encoding.TextMarshaler]
func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// Maps known commands to their op and number of arguments
var commandNargs = map[string]struct {
	op    Op
	nargs int
}{
	"g": {Get, 0},
	"o": {Open, 2},
	"f": {Flag, 2},
	"c": {Chord, 2},
	"r": {Restart, 0},
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
)

type Command struct {
	Op    Op
	Point mines.Point
}

func (c Command) String() string {
	switch c.Op {
	case Open, Flag, Chord:
		return fmt.Sprintf("%s %s", c.Op, c.Point)
	}
	return c.Op.String()
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// Parse reads a single command line:
//
//	g      // fetch the game, changes nothing
//	o x y  // open the cell at x:y
//	f x y  // cycle the mark of the cell at x:y
//	c x y  // chord the cell at x:y
//	r      // restart the game
//
// A blank line parses as g.
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{Op: Get}, nil
	}
	known, ok := commandNargs[strings.ToLower(parts[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if known.nargs != len(parts)-1 {
		return Command{}, ErrNargs
	}
	c := Command{Op: known.op}
	if known.nargs == 2 {
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return Command{}, err
		}
		c.Point = mines.Point{X: x, Y: y}
	}
	return c, nil
}

// Result describes what a command did to a game. Applied is false when the
// engine refused the move, e.g. opening a flagged cell.
type Result struct {
	Command Command
	Outcome mines.Outcome
	Mark    mines.CellState
	Applied bool
}

func (c Command) Apply(g *mines.Game) (res Result, err error) {
	res.Command = c
	switch c.Op {
	case Get:
		res.Applied = true
	case Open:
		res.Outcome, err = g.Reveal(c.Point)
		res.Applied = res.Outcome.Kind != mines.Blocked
	case Flag:
		res.Mark, res.Applied, err = g.ToggleMark(c.Point)
	case Chord:
		res.Outcome, err = g.Chord(c.Point)
		res.Applied = res.Outcome.Kind != mines.Blocked
	case Restart:
		g.Restart()
		res.Applied = true
	default:
		err = ErrUnknownCommand
	}
	if err != nil {
		return res, fmt.Errorf("%s: %w", c, err)
	}
	return res, nil
}

func Execute(g *mines.Game, line string) (Result, error) {
	c, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return c.Apply(g)
}
