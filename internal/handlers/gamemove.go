package handlers

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/commands"
)

var moves = []commands.Op{commands.Open, commands.Flag, commands.Chord}

var ErrBadMove error

func init() {
	var allowedMoves []string
	for _, move := range moves {
		allowedMoves = append(allowedMoves, "'"+move.String()+"'")
	}
	ErrBadMove = fmt.Errorf(
		"move must be one of %s",
		strings.Join(allowedMoves, ", "),
	)
}

func ParseGameMove(s string) (commands.Op, error) {
	s = strings.ToLower(s)
	for _, move := range moves {
		if move.String() == s {
			return move, nil
		}
	}
	return 0, ErrBadMove
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src map[string][]string) (Position, error) {
	positionDecoder := schema.NewDecoder()
	positionDecoder.IgnoreUnknownKeys(true)
	var pos Position
	err := positionDecoder.Decode(&pos, src)
	return pos, err
}
