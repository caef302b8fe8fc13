package cli

import (
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"golang.org/x/term"

	"github.com/matzehuels/ordinatrix/pkg/errors"
)

// stdinPath names standard input on the command line.
const stdinPath = "-"

// readInput returns the text to transform and a name for its source.
// The first argument names a file; "-" or no argument reads stdin. With
// no argument and an interactive stdin there is nothing to read, which is
// an error rather than a silent wait.
func readInput(args []string, stdin io.Reader) (string, string, error) {
	if len(args) == 0 {
		if isTerminal(stdin) {
			return "", "", errors.New(errors.ErrCodeInvalidInput, "no input: pass a file or pipe points on stdin")
		}
		return readStdin(stdin)
	}

	path := args[0]
	if err := errors.ValidateInputPath(path); err != nil {
		return "", "", err
	}
	if path == stdinPath {
		return readStdin(stdin)
	}

	data, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return "", "", errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %s", path)
	}
	if err != nil {
		return "", "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return string(data), path, nil
}

func readStdin(stdin io.Reader) (string, string, error) {
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
	}
	return string(data), "stdin", nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
