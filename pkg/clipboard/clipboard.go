// Package clipboard copies text to the system clipboard through the
// terminal using OSC52 escape sequences.
//
// OSC52 works over SSH and inside most terminal emulators without any
// platform clipboard tool. Inside tmux the sequence must be wrapped in a
// DCS passthrough, see [Writer.Tmux].
package clipboard

import (
	"context"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/matzehuels/ordinatrix/pkg/errors"
	"github.com/matzehuels/ordinatrix/pkg/observability"
)

// Writer emits OSC52 copy sequences to a terminal.
type Writer struct {
	Out  io.Writer
	Tmux bool
}

// New returns a Writer for out. If out is nil, os.Stderr is used so the
// sequence reaches the terminal even when stdout is redirected.
func New(out io.Writer, tmux bool) *Writer {
	if out == nil {
		out = os.Stderr
	}
	return &Writer{Out: out, Tmux: tmux}
}

// InTmux reports whether the process runs inside tmux.
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// Sequence returns the escape sequence that copies text.
func (w *Writer) Sequence(text string) string {
	seq := osc52.New(text)
	if w.Tmux {
		seq = seq.Tmux()
	}
	return seq.String()
}

// Copy writes text to the clipboard.
func (w *Writer) Copy(ctx context.Context, text string) error {
	_, err := io.WriteString(w.Out, w.Sequence(text))
	if err != nil {
		err = errors.Wrap(errors.ErrCodeClipboard, err, "copy to clipboard")
	}
	observability.Clipboard().OnCopy(ctx, len(text), err)
	return err
}
