package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input stream ends before a valid
// value was read.
var ErrInputClosed = errors.New("input closed")

// Reader handles interactive prompts
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader creates a prompt reader over the given input and output
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// readRaw reads one line of any length without its line ending
func (r *Reader) readRaw() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readLine reads a line of input from the user
func (r *Reader) readLine() (string, error) {
	line, err := r.readRaw()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask writes prompt and reads lines until one parses and is accepted,
// writing retry before every further attempt. There is no attempt limit;
// only the end of input stops it.
func Ask[T any](r *Reader, prompt, retry string, parse func(string) (T, error), accept func(T) bool) (T, error) {
	fmt.Fprint(r.out, prompt)
	for {
		line, err := r.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		if val, err := parse(line); err == nil && accept(val) {
			return val, nil
		}
		fmt.Fprint(r.out, retry)
	}
}

func parseFloat(s string) (float64, error) {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return val, nil
}

// ReadInt reads an integer that is at least minValue
func (r *Reader) ReadInt(prompt string, minValue int) (int, error) {
	return Ask(r, prompt, "Invalid input. "+prompt, strconv.Atoi, func(v int) bool {
		return v >= minValue
	})
}

// ReadFloat reads a number that is at least minValue
func (r *Reader) ReadFloat(prompt string, minValue float64) (float64, error) {
	return Ask(r, prompt, "Invalid input. "+prompt, parseFloat, func(v float64) bool {
		return v >= minValue
	})
}

// ReadIntInRange reads an integer in [minValue, maxValue], writing retry on bad input
func (r *Reader) ReadIntInRange(prompt, retry string, minValue, maxValue int) (int, error) {
	return Ask(r, prompt, retry, strconv.Atoi, func(v int) bool {
		return v >= minValue && v <= maxValue
	})
}

// ReadString reads a single line of free text. Surrounding spaces are kept.
func (r *Reader) ReadString(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	return r.readRaw()
}
