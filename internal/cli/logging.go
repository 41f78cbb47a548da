package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// newLogger builds the root logger. Colour is only used when w is a terminal.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        appName,
		Level:       level,
		Output:      w,
		Color:       colorOption(w),
		DisableTime: !verbose,
	})
}

func colorOption(w io.Writer) hclog.ColorOption {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return hclog.ColorOff
	}
	return hclog.ForceColor
}
