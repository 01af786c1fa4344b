package coordio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/coordplot/util"
)

const (
	maxLineLength       = 1024 * 1024
	maxDiagnosticLength = 80
)

var (
	ErrNotFound      = errors.New("coordinate file not found")
	ErrMalformedLine = errors.New("invalid line format")
	ErrLineTooLong   = errors.New("line too long")
)

// MalformedLine is a line that was skipped because it did not hold exactly
// two integers.
type MalformedLine struct {
	LineNumber int
	Text       string
	Err        error
}

func (m MalformedLine) Error() string {
	return fmt.Sprintf("line %d %q: %v", m.LineNumber, m.Text, m.Err)
}

func (m MalformedLine) Unwrap() error {
	return ErrMalformedLine
}

type ReadResult struct {
	Points    []util.IntPoint
	Malformed []MalformedLine
}

// Count is the number of successfully parsed points.
func (r *ReadResult) Count() int {
	return len(r.Points)
}

// ReadCoordinatesFile reads the coordinate file at path. A missing file is
// fatal, a bad line is not.
func ReadCoordinatesFile(path string) (*ReadResult, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file %s: %w", path, ErrNotFound)
		}
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCoordinates(f)
}

// ReadCoordinates parses one "x y" pair per line. Lines that do not parse
// are logged, collected in Malformed and skipped. A line longer than
// maxLineLength is drained and skipped the same way.
func ReadCoordinates(r io.Reader) (*ReadResult, error) {
	res := &ReadResult{Points: []util.IntPoint{}}

	br := bufio.NewReaderSize(r, 64*1024)
	lineNumber := 0
	for {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading coordinates at line %d: %w", lineNumber+1, err)
		}
		lineNumber++

		text := strings.TrimSpace(string(line))
		var p util.IntPoint
		if tooLong {
			text = truncate(text)
			err = ErrLineTooLong
		} else {
			p, err = ParseLine(text)
		}
		if err != nil {
			log.Warnf("Invalid line format: %s. Skipping.", text)
			res.Malformed = append(res.Malformed, MalformedLine{LineNumber: lineNumber, Text: text, Err: err})
			continue
		}
		res.Points = append(res.Points, p)
	}

	log.Infof("Successfully read %d points.", res.Count())
	return res, nil
}

// readLine returns the next line without its line ending. Once a line passes
// maxLineLength the rest of it is read and discarded, only the first
// maxLineLength bytes are returned and tooLong is set. io.EOF is returned
// only when no line was started.
func readLine(br *bufio.Reader) ([]byte, bool, error) {
	var line []byte
	tooLong := false
	started := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if err == io.EOF && started {
				return line, tooLong, nil
			}
			return nil, false, err
		}
		started = true

		if !tooLong {
			if len(line)+len(chunk) > maxLineLength {
				tooLong = true
				chunk = chunk[:maxLineLength-len(line)]
			}
			line = append(line, chunk...)
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

func truncate(text string) string {
	if len(text) <= maxDiagnosticLength {
		return text
	}
	return text[:maxDiagnosticLength] + "..."
}

// ParseLine parses exactly two whitespace separated base 10 integers.
func ParseLine(line string) (util.IntPoint, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return util.IntPoint{}, fmt.Errorf("expected 2 values, got %d", len(fields))
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return util.IntPoint{}, err
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return util.IntPoint{}, err
	}
	return util.IntPoint{X: x, Y: y}, nil
}
