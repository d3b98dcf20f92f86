package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/diploma/pkg/domain"
)

// errInterrupted is returned by the prompts when the run context is cancelled.
var errInterrupted = errors.New("interrupted")

type line struct {
	text string
	err  error
}

// lineReader pumps lines from the input on its own goroutine so that a
// blocked read never keeps the loop from noticing a cancelled context.
type lineReader struct {
	lines <-chan line
	stop  chan struct{}
}

func newLineReader(r io.Reader) *lineReader {
	ch := make(chan line)
	stop := make(chan struct{})
	send := func(l line) bool {
		select {
		case ch <- l:
			return true
		case <-stop:
			return false
		}
	}

	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !send(line{text: scanner.Text()}) {
				return
			}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		send(line{err: err})
	}()
	return &lineReader{lines: ch, stop: stop}
}

// Close releases the pump. A read already blocked on the input stays blocked
// until the input yields.
func (r *lineReader) Close() {
	close(r.stop)
}

// next returns the next trimmed line, io.EOF once the input is exhausted or
// errInterrupted if ctx is done first.
func (r *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", errInterrupted
	case l, ok := <-r.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// prompter asks questions on out and reads the answers from in.
type prompter struct {
	in  *lineReader
	out io.Writer
}

func (p *prompter) ask(ctx context.Context, question string) (string, error) {
	fmt.Fprint(p.out, question)
	return p.in.next(ctx)
}

func (p *prompter) askName(ctx context.Context) (string, error) {
	name, err := p.ask(ctx, "Student name: ")
	if err != nil {
		return "", err
	}
	if name == "" {
		return defaultStudentName, nil
	}
	return name, nil
}

func (p *prompter) askIntelligence(ctx context.Context) (int, error) {
	question := fmt.Sprintf("Student intelligence (%d..%d): ", domain.MinLevel, domain.MaxLevel)
	for {
		raw, err := p.ask(ctx, question)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a number.")
			continue
		}
		if v < domain.MinLevel || v > domain.MaxLevel {
			fmt.Fprintf(p.out, "Value must be between %d and %d.\n", domain.MinLevel, domain.MaxLevel)
			continue
		}
		return v, nil
	}
}

// askChoice reads a menu choice in [0, n]. 0 means exit.
func (p *prompter) askChoice(ctx context.Context, n int) (int, error) {
	for {
		raw, err := p.ask(ctx, "> ")
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		if v < 0 || v > n {
			fmt.Fprintln(p.out, "No such option. Try again.")
			continue
		}
		return v, nil
	}
}
