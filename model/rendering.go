package model

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

const (
	liveGlyph = "#"
	deadGlyph = " "

	escClearScreen = "\x1b[2J"
	escCursorHome  = "\x1b[H"
	escHideCursor  = "\x1b[?25l"
	escShowCursor  = "\x1b[?25h"
)

// TerminalRenderer paints grids onto a terminal as a stream of ANSI
// control sequences. All draws for a frame are buffered and flushed once,
// so the frame is presented atomically.
type TerminalRenderer struct {
	out  *bufio.Writer
	live string
	dead string
}

// NewTerminalRenderer creates a renderer writing to out. When colorOn is
// set, live cells are drawn with a green foreground.
func NewTerminalRenderer(out io.Writer, colorOn bool) *TerminalRenderer {
	live := liveGlyph
	if colorOn {
		live = color.New(color.FgGreen).Sprint(liveGlyph)
	}
	return &TerminalRenderer{
		out:  bufio.NewWriter(out),
		live: live,
		dead: deadGlyph,
	}
}

// PaintFull writes every cell of the grid, top-left origin, row-major
func (r *TerminalRenderer) PaintFull(g *Grid) error {
	for y := 0; y < g.height; y++ {
		// Position once per row, cells advance the cursor themselves
		if _, err := fmt.Fprintf(r.out, "\x1b[%d;1H", y+1); err != nil {
			return errors.Wrap(err, "[PaintFull] failed to position cursor")
		}
		for x := 0; x < g.width; x++ {
			if _, err := r.out.WriteString(r.glyph(g.cells[y][x])); err != nil {
				return errors.Wrap(err, "[PaintFull] failed to write cell")
			}
		}
	}
	return r.flush("PaintFull")
}

// PaintDiff writes only the cells that differ from the previous
// generation, leaving unchanged positions untouched
func (r *TerminalRenderer) PaintDiff(g, prev *Grid) error {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == prev.cells[y][x] {
				continue
			}
			if _, err := fmt.Fprintf(r.out, "\x1b[%d;%dH%s", y+1, x+1, r.glyph(g.cells[y][x])); err != nil {
				return errors.Wrap(err, "[PaintDiff] failed to write cell")
			}
		}
	}
	return r.flush("PaintDiff")
}

// ClearScreen erases the whole screen and homes the cursor
func (r *TerminalRenderer) ClearScreen() error {
	if _, err := r.out.WriteString(escClearScreen + escCursorHome); err != nil {
		return errors.Wrap(err, "[ClearScreen] failed to write")
	}
	return r.flush("ClearScreen")
}

// HideCursor hides the terminal cursor for the duration of the run
func (r *TerminalRenderer) HideCursor() error {
	if _, err := r.out.WriteString(escHideCursor); err != nil {
		return errors.Wrap(err, "[HideCursor] failed to write")
	}
	return r.flush("HideCursor")
}

// ShowCursor restores the terminal cursor
func (r *TerminalRenderer) ShowCursor() error {
	if _, err := r.out.WriteString(escShowCursor); err != nil {
		return errors.Wrap(err, "[ShowCursor] failed to write")
	}
	return r.flush("ShowCursor")
}

func (r *TerminalRenderer) glyph(alive bool) string {
	if alive {
		return r.live
	}
	return r.dead
}

func (r *TerminalRenderer) flush(op string) error {
	if err := r.out.Flush(); err != nil {
		return errors.Wrapf(err, "[%s] failed to flush frame", op)
	}
	return nil
}
