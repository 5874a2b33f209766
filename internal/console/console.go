package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const clearSequence = "\033[H\033[2J"

type line struct {
	text string
	err  error
}

// Console talks to the player over a line-oriented terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	log logrus.FieldLogger

	// pending holds the result of a read started by a prompt that was
	// abandoned. The next prompt picks it up instead of reading again.
	pending <-chan line

	// Debug shows hazard locations on every rendered grid.
	Debug bool
	// ClearScreen enables clearing the terminal between turns.
	ClearScreen bool
}

// New returns a console over in and out. Nothing is read from in until a
// prompt is shown.
func New(in io.Reader, out io.Writer, log logrus.FieldLogger) *Console {
	return &Console{in: bufio.NewReader(in), out: out, log: log}
}

// readLine reads up to and including the next newline. Lines of any length
// are accepted. A final line without a newline is returned before [io.EOF].
func readLine(r *bufio.Reader) line {
	text, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) && text != "" {
		err = nil
	}
	return line{text: text, err: err}
}

// ask prints the prompt and waits for the next line. End of input is
// reported as [io.EOF]. The read runs on its own goroutine so that ctx can
// abandon it.
func (c *Console) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if c.pending == nil {
		ch := make(chan line, 1)
		go func() {
			ch <- readLine(c.in)
		}()
		c.pending = ch
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l := <-c.pending:
		c.pending = nil
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) clear() {
	if c.ClearScreen {
		fmt.Fprint(c.out, clearSequence)
	}
}
