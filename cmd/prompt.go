package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errNoInput = errors.New("input required but stdin is closed")

// prompter reads answers from the command's stdin; one instance per command
// so buffered input is not lost between questions.
type prompter struct {
	raw io.Reader
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{raw: in, in: bufio.NewReader(in), out: out}
}

func (p *prompter) ask(label string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if errors.Is(err, io.EOF) && line == "" {
		return "", errNoInput
	}
	return line, nil
}

// askIfEmpty returns current unless it is blank, in which case it prompts.
func (p *prompter) askIfEmpty(current, label string) (string, error) {
	if strings.TrimSpace(current) != "" {
		return current, nil
	}
	return p.ask(label)
}

// secretIfEmpty is askIfEmpty without echo when stdin is a terminal.
func (p *prompter) secretIfEmpty(current, label string) (string, error) {
	if strings.TrimSpace(current) != "" {
		return current, nil
	}
	f, ok := p.raw.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.ask(label)
	}

	if _, err := fmt.Fprintf(p.out, "%s: ", label); err != nil {
		return "", err
	}
	secret, err := term.ReadPassword(int(f.Fd()))
	_, _ = fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	if len(secret) == 0 {
		return "", errNoInput
	}
	return string(secret), nil
}

// confirm asks a yes/no question; anything but an explicit yes is a no.
func (p *prompter) confirm(question string) bool {
	answer, err := p.ask(question + " [s/N]")
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true
	default:
		return false
	}
}
