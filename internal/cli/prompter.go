package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Prompter collects line-based input for the login and registration
// flows, respecting context cancellation.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		panic("input reader cannot be nil")
	}
	return &Prompter{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Line prints a label and reads one trimmed line of input.
func (p *Prompter) Line(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.writer, TitleStyle.UnsetMargins().Render(label)+" → ")

	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		value, err := p.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The reading goroutine keeps blocking on stdin, but the
		// caller gets control back immediately.
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && res.err != io.EOF {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}

// Secret reads a value that should not be suggested back to the user.
// Terminal echo suppression is not attempted; this is a demo login.
func (p *Prompter) Secret(ctx context.Context, label string) (string, error) {
	return p.Line(ctx, label)
}
