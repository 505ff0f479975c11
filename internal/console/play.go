package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

const help = `commands:
  o x y   open a cell
  f x y   cycle flag / question mark
  c x y   open the neighbours of a satisfied number
  r       restart with a new board
  q       quit
`

// lineReader scans in on its own goroutine so a pending read can be
// abandoned when the context ends.
type lineReader struct {
	lines chan string
	err   error // set before lines is closed
}

func newLineReader(ctx context.Context, in io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string)}
	go func() {
		defer close(lr.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lr.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		lr.err = scanner.Err()
	}()
	return lr
}

// next returns the next line. ok is false at the end of input or once ctx
// is done.
func (lr *lineReader) next(ctx context.Context) (line string, ok bool, err error) {
	select {
	case <-ctx.Done():
		return "", false, nil
	case line, ok := <-lr.lines:
		if !ok {
			return "", false, lr.err
		}
		return line, true, nil
	}
}

// Play runs an interactive session on g until in is exhausted, the player
// quits or declines a replay, or ctx is done. Cancellation counts as a quit.
func Play(ctx context.Context, in io.Reader, out io.Writer, g *mines.Game) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rd := NewRenderer(out)
	reader := newLineReader(ctx, in)

	draw := func() {
		fmt.Fprint(out, rd.Board(g))
		fmt.Fprintln(out, rd.Status(g))
	}

	draw()
	fmt.Fprint(out, help)
	for {
		if ctx.Err() != nil {
			fmt.Fprintln(out)
			return nil
		}
		fmt.Fprint(out, "> ")
		line, ok, err := reader.next(ctx)
		if !ok {
			return err
		}
		line = strings.TrimSpace(line)

		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprint(out, help)
			continue
		}

		res, err := commands.Execute(g, line)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		if !res.Applied {
			fmt.Fprintln(out, "nothing to do there")
		}
		draw()

		if !g.Over() {
			continue
		}
		fmt.Fprint(out, "Play again? [y/n] ")
		answer, ok, err := reader.next(ctx)
		if !ok {
			return err
		}
		if answer = strings.ToLower(strings.TrimSpace(answer)); answer != "y" && answer != "yes" {
			return nil
		}
		g.Restart()
		draw()
	}
}
