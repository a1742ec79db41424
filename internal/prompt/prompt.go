// Package prompt collects operator input for the config generator.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"tubecfg/internal/domain/consts"
	"tubecfg/internal/validation"
)

// Prompter reads answers from r and writes prompts to w.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		r: bufio.NewReader(r),
		w: w,
	}
}

// Port prompts for the server port, re-prompting until the answer parses and
// falls within 1-65535. An empty answer selects the default.
func (p *Prompter) Port() (int, error) {
	for {
		fmt.Fprintf(p.w, "Server port [default: %d]: ", consts.DefaultPort)

		value, err := p.readLine()
		if err != nil {
			return 0, err
		}
		if value == "" {
			return consts.DefaultPort, nil
		}

		port, err := validation.ValidatePort(value)
		if err != nil {
			fmt.Fprintln(p.w, "Port must be a number between 1 and 65535. Try again.")
			continue
		}
		return port, nil
	}
}

// MainURL prompts for the proxy's main URL. Empty is a valid answer.
func (p *Prompter) MainURL() (string, error) {
	fmt.Fprint(p.w, "Main URL (leave empty if not needed) [default: '']: ")
	return p.readLine()
}

// APIKeys prompts for a comma-separated list of API keys, discarding
// whitespace-only entries. An empty answer yields an empty list.
func (p *Prompter) APIKeys() ([]string, error) {
	fmt.Fprintln(p.w, "\nEnter API keys (comma-separated, or press Enter for an empty list)")
	fmt.Fprint(p.w, "API keys: ")

	value, err := p.readLine()
	if err != nil {
		return nil, err
	}

	keys := validation.SplitKeys(value)
	if len(keys) == 0 {
		fmt.Fprintln(p.w, "-> Using empty list for active keys")
		return []string{}, nil
	}

	fmt.Fprintf(p.w, "-> Added %d key(s)\n", len(keys))
	return keys, nil
}

// readLine reads one trimmed line of input. EOF with pending input still
// returns the input; bare EOF returns the error.
func (p *Prompter) readLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
