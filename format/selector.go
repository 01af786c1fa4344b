package format

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	ErrInvalidInput  = errors.New("input is not a number")
	ErrInvalidChoice = errors.New("choice out of range")
	ErrNoSelection   = errors.New("input ended before a valid format was chosen")
)

// Selector asks on Out for a numbered format choice and reads answers from
// In, one per line, until one is valid.
type Selector struct {
	Formats []Format

	in  *bufio.Reader
	out io.Writer
}

func NewSelector(in io.Reader, out io.Writer) *Selector {
	return &Selector{
		Formats: slices.Clone(Supported),
		in:      bufio.NewReader(in),
		out:     out,
	}
}

// Select returns base with the chosen extension appended.
func (s *Selector) Select(base string) (string, error) {
	f, err := s.SelectFormat()
	if err != nil {
		return "", err
	}
	return f.Path(base), nil
}

// SelectFormat prints the menu then prompts until a valid choice is read.
// There is no retry limit, only end of input stops the loop.
func (s *Selector) SelectFormat() (Format, error) {
	n := len(s.Formats)
	fmt.Fprintln(s.out, "Choose a format for the output file:")
	for i, f := range s.Formats {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, f)
	}

	for {
		fmt.Fprintf(s.out, "Enter a number (1-%d): ", n)
		line, readErr := s.in.ReadString('\n')
		if readErr != nil && (readErr != io.EOF || line == "") {
			if readErr == io.EOF {
				return 0, ErrNoSelection
			}
			return 0, readErr
		}

		idx, err := ParseChoice(line, n)
		switch {
		case err == nil:
			return s.Formats[idx], nil
		case errors.Is(err, ErrInvalidChoice):
			fmt.Fprintf(s.out, "Invalid choice. Please enter a number between 1 and %d.\n", n)
		default:
			fmt.Fprintf(s.out, "Invalid input. Please enter a number between 1 and %d.\n", n)
		}

		if readErr == io.EOF {
			return 0, ErrNoSelection
		}
	}
}

// ParseChoice turns a 1 based menu entry into a 0 based index into a list of
// n formats.
func ParseChoice(line string, n int) (int, error) {
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", strings.TrimSpace(line), ErrInvalidInput)
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("%d: %w", choice, ErrInvalidChoice)
	}
	return choice - 1, nil
}
