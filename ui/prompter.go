package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers line by line. It implements agent.InputReader and is
// also used for the session's main prompt.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next line without its line ending. A
// final line without a newline is returned normally; after that io.EOF.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// StepInput adapts a Prompter to answer the agent's input steps with the
// styled "Input needed" prompt.
type StepInput struct {
	*Prompter
}

func (s StepInput) ReadLine(question string) (string, error) {
	return s.Prompter.ReadLine(InputPrompt(question))
}
