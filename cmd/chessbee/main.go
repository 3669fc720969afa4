// Command chessbee plays a two-player game at the terminal. Moves are entered as
// coordinate pairs such as "e2 e4".
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benbeisheim/chessbee-backend/internal/engine"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const help = `commands:
  e2 e4      move the piece on e2 to e4 (also e2e4)
  moves e2   list the legal destinations of the piece on e2
  board      print the board
  reset      start over
  quit       leave
`

func main() {
	noColor := flag.Bool("no-color", false, "disable coloured output")
	flag.Parse()

	colored := !*noColor && term.IsTerminal(int(os.Stdout.Fd()))
	if err := play(os.Stdin, os.Stdout, colored); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type session struct {
	board   *engine.Board
	out     io.Writer
	colored bool
	warn    *color.Color
}

// play runs the read-move-print loop until quit, checkmate, stalemate or end of input.
func play(in io.Reader, out io.Writer, colored bool) error {
	s := &session{
		board:   engine.NewBoard(),
		out:     out,
		colored: colored,
		warn:    color.New(color.FgRed),
	}
	if colored {
		s.warn.EnableColor()
	} else {
		s.warn.DisableColor()
	}

	fmt.Fprint(out, help)
	if err := s.printBoard(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s to move> ", s.board.Turn())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		done, err := s.handle(strings.Fields(strings.ToLower(scanner.Text())))
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handle runs one command and reports whether the session is over.
func (s *session) handle(fields []string) (bool, error) {
	switch {
	case len(fields) == 0:
		return false, nil
	case fields[0] == "quit" || fields[0] == "exit":
		return true, nil
	case fields[0] == "help":
		fmt.Fprint(s.out, help)
	case fields[0] == "board":
		return false, s.printBoard()
	case fields[0] == "reset":
		s.board.Reset()
		return false, s.printBoard()
	case fields[0] == "moves" && len(fields) == 2:
		s.listMoves(fields[1])
	case len(fields) == 2:
		return s.move(fields[0], fields[1])
	case len(fields) == 1 && len(fields[0]) == 4:
		return s.move(fields[0][:2], fields[0][2:])
	default:
		s.warn.Fprintf(s.out, "unrecognised command %q\n", strings.Join(fields, " "))
	}
	return false, nil
}

func (s *session) listMoves(name string) {
	sq, err := s.board.Lookup(name)
	if err != nil {
		s.warn.Fprintln(s.out, err)
		return
	}
	moves := s.board.LegalMoves(sq)
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	fmt.Fprintf(s.out, "%s: %s\n", name, strings.Join(names, " "))
}

func (s *session) move(fromName, toName string) (bool, error) {
	from, err := s.board.Lookup(fromName)
	if err != nil {
		s.warn.Fprintln(s.out, err)
		return false, nil
	}
	to, err := s.board.Lookup(toName)
	if err != nil {
		s.warn.Fprintln(s.out, err)
		return false, nil
	}
	if p := from.Piece(); p != nil && p.Color != s.board.Turn() {
		s.warn.Fprintf(s.out, "%s: it is %s's turn\n", fromName, s.board.Turn())
		return false, nil
	}

	m, err := s.board.MovePiece(from, to)
	if err != nil {
		if errors.Is(err, engine.ErrIllegalMove) || errors.Is(err, engine.ErrEmptySquare) {
			s.warn.Fprintln(s.out, err)
			return false, nil
		}
		return false, err
	}
	s.board.ChangeTurn()
	if m.Captured != nil {
		fmt.Fprintf(s.out, "%s takes %s\n", m.Piece, m.Captured)
	}
	if err := s.printBoard(); err != nil {
		return false, err
	}

	switch s.board.Status() {
	case engine.Checkmate:
		fmt.Fprintf(s.out, "checkmate, %s wins\n", s.board.Turn().Opponent())
		return true, nil
	case engine.Stalemate:
		fmt.Fprintln(s.out, "stalemate, draw")
		return true, nil
	}
	if s.board.InCheck(s.board.Turn()) {
		s.warn.Fprintf(s.out, "%s is in check\n", s.board.Turn())
	}
	return false, nil
}

func (s *session) printBoard() error {
	return s.board.Render(s.out, s.colored)
}
