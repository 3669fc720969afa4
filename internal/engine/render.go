package engine

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// String draws the board as text, file 8 at the top, "." for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb, false)
	return sb.String()
}

// Render writes the board to w. With colored set, White pieces are painted yellow and
// Black pieces blue.
func (b *Board) Render(w io.Writer, colored bool) error {
	white := color.New(color.FgYellow, color.Bold)
	black := color.New(color.FgBlue, color.Bold)
	if colored {
		white.EnableColor()
		black.EnableColor()
	} else {
		white.DisableColor()
		black.DisableColor()
	}

	var sb strings.Builder
	for f := MaxFile; f >= MinFile; f-- {
		sb.WriteByte(byte('0' + f))
		for r := MinRank; r <= MaxRank; r++ {
			sb.WriteByte(' ')
			p := b.at(r, f).piece
			switch {
			case p == nil:
				sb.WriteByte('.')
			case p.Color == White:
				sb.WriteString(white.Sprint(p.Tag()))
			default:
				sb.WriteString(black.Sprint(p.Tag()))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
