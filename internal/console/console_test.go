package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(lines ...string) (*Console, *bytes.Buffer) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	var out bytes.Buffer
	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}
	return New(strings.NewReader(input), &out, log), &out
}

func TestAsk(t *testing.T) {
	c, out := newTestConsole("  hello  ")

	text, err := c.ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, "> ", out.String())

	_, err = c.ask(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
	_, err = c.ask(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := New(pr, io.Discard, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ask(ctx, "> ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAskReadsOnlyWhenPrompted(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := New(pr, io.Discard, log)

	written := make(chan struct{})
	go func() {
		pw.Write([]byte("0 0\n"))
		close(written)
	}()
	consumed := func() bool {
		select {
		case <-written:
			return true
		default:
			return false
		}
	}
	assert.Never(t, consumed, 50*time.Millisecond, 5*time.Millisecond,
		"input read with no prompt pending")

	text, err := c.ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "0 0", text)
	assert.Eventually(t, consumed, time.Second, 5*time.Millisecond)
}

func TestAskResumesAbandonedRead(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := New(pr, io.Discard, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ask(ctx, "> ")
	require.ErrorIs(t, err, context.Canceled)

	go pw.Write([]byte("1 2\n"))
	text, err := c.ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "1 2", text)
}

func TestAskLastLineWithoutNewline(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	c := New(strings.NewReader("first\r\nlast"), io.Discard, log)

	text, err := c.ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "first", text)

	text, err = c.ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "last", text)

	_, err = c.ask(context.Background(), "> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestAskLongLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	c, _ := newTestConsole(long, "q")

	text, err := c.ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Len(t, text, len(long))

	text, err = c.ask(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "q", text)
}

func TestClear(t *testing.T) {
	c, out := newTestConsole()
	c.clear()
	assert.Empty(t, out.String())

	c.ClearScreen = true
	c.clear()
	assert.Equal(t, clearSequence, out.String())
}
