package model

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ConsoleSize holds the dimensions of the hosting terminal, captured once
// at startup. Resizing the terminal mid-run is not handled.
type ConsoleSize struct {
	Rows int
	Cols int
}

// DetectConsoleSize queries the terminal attached to stdout for its
// dimensions. Failure is fatal to startup: without a size there is
// nothing to draw into.
func DetectConsoleSize() (ConsoleSize, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return ConsoleSize{}, errors.Wrap(err, "[DetectConsoleSize] failed to query terminal size")
	}
	return ConsoleSize{Rows: rows, Cols: cols}, nil
}
