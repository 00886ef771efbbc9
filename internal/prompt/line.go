package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter reads one answer per line. An empty line or end of input
// selects the default.
type LinePrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// NewLinePrompter returns a LinePrompter reading r and writing questions to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r), w: w}
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Input asks a free-text question.
func (p *LinePrompter) Input(message, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "? %s (%s) ", message, def)
	} else {
		fmt.Fprintf(p.w, "? %s ", message)
	}
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Select presents a numbered list. The answer may be the option number or
// the option itself.
func (p *LinePrompter) Select(message string, options []string, def string) (string, error) {
	fmt.Fprintf(p.w, "? %s\n", message)
	for i, opt := range options {
		marker := " "
		if opt == def {
			marker = ">"
		}
		fmt.Fprintf(p.w, " %s %d) %s\n", marker, i+1, opt)
	}
	fmt.Fprintf(p.w, "  Entrez un numéro [1-%d]: ", len(options))

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}

	if num, err := strconv.Atoi(answer); err == nil {
		if num < 1 || num > len(options) {
			return "", fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(options))
		}
		return options[num-1], nil
	}
	for _, opt := range options {
		if strings.EqualFold(opt, answer) {
			return opt, nil
		}
	}
	return "", fmt.Errorf("invalid selection %q: choose 1-%d", answer, len(options))
}

// Confirm asks a yes/no question. French and English answers are accepted.
func (p *LinePrompter) Confirm(message string, def bool) (bool, error) {
	hint := "o/N"
	if def {
		hint = "O/n"
	}
	fmt.Fprintf(p.w, "? %s (%s) ", message, hint)

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "o", "oui", "y", "yes":
		return true, nil
	case "n", "non", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q: expected oui or non", answer)
	}
}
