// Package input reads lines typed by the player.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
)

// ErrInterrupted is returned by ReadLine when the user interrupts the read
// (Ctrl+C) before a line arrives.
var ErrInterrupted = errors.New("input interrupted")

type lineResult struct {
	text string
}

// LineReader reads newline-terminated lines from an input stream.
//
// A single background goroutine owns the underlying reader, so a read that
// was abandoned because of an interrupt or a cancelled context hands its line
// to the next ReadLine call instead of racing it.
type LineReader struct {
	in  io.Reader
	out io.Writer

	// Notify and Stop register and release interrupt delivery for the
	// duration of a read. They default to signal.Notify(c, os.Interrupt) and
	// signal.Stop.
	Notify func(c chan<- os.Signal)
	Stop   func(c chan<- os.Signal)

	once  sync.Once
	lines chan lineResult
	err   error // set before lines is closed
}

// NewLineReader creates a reader over in that writes prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{
		in:  in,
		out: out,
		Notify: func(c chan<- os.Signal) {
			signal.Notify(c, os.Interrupt)
		},
		Stop:  signal.Stop,
		lines: make(chan lineResult),
	}
}

// ReadLine writes prompt and blocks until a full line is available, the user
// interrupts, or ctx is done. The trailing line terminator is removed.
// Once the stream is exhausted every call returns the stream's error
// (io.EOF for a closed input).
func (l *LineReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	l.once.Do(func() {
		go l.pump()
	})

	interrupts := make(chan os.Signal, 1)
	l.Notify(interrupts)
	defer l.Stop(interrupts)

	if prompt != "" {
		fmt.Fprint(l.out, prompt)
	}

	select {
	case res, ok := <-l.lines:
		if !ok {
			return "", l.err
		}
		return res.text, nil
	case <-interrupts:
		return "", ErrInterrupted
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// pump forwards lines from the input stream until it fails.
func (l *LineReader) pump() {
	src := bufio.NewReader(l.in)
	for {
		line, err := src.ReadString('\n')
		if line != "" || err == nil {
			l.lines <- lineResult{text: strings.TrimRight(line, "\r\n")}
		}
		if err != nil {
			l.err = err
			close(l.lines)
			return
		}
	}
}
