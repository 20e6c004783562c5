package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

// newTestInteractiveCLI wires scripted input and a capture buffer in place
// of the terminal.
func newTestInteractiveCLI(t *testing.T, input string, out *bytes.Buffer) *InteractiveCLI {
	t.Helper()

	color.NoColor = true
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(strings.NewReader(input)),
		stdoutWriter: out,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
	}
}
