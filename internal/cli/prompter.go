package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/staff-data-intake/internal/validation"
)

// Prompter reads answers to prompts from a line-oriented input stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	promptStyle lipgloss.Style
	errorStyle  lipgloss.Style
}

// NewPrompter creates a prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	r := lipgloss.NewRenderer(out)
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		promptStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#005577", Dark: "#00aadd"}),
		errorStyle: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#dc322f", Dark: "#ff5555"}).
			Bold(true),
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned before io.EOF.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprint(p.out, p.promptStyle.Render(prompt))
	return p.readLine()
}

// Required prompts until a non-blank answer is given and returns it trimmed.
// field is the form field name used for the error message.
func (p *Prompter) Required(prompt, field string) (string, error) {
	for {
		answer, err := p.ask(prompt)
		if err != nil {
			return "", err
		}
		if value := strings.TrimSpace(answer); value != "" {
			return value, nil
		}
		fmt.Fprintln(p.out, p.errorStyle.Render(validation.Label(field)+" cannot be empty!"))
	}
}

// Optional prompts once and returns the trimmed answer, possibly empty.
func (p *Prompter) Optional(prompt string) (string, error) {
	answer, err := p.ask(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// Confirm reports whether the answer is "y" in any case.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	answer, err := p.ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
