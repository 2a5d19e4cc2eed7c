// Package day1 solves day 1 of Advent of Code 2018: summing a list of
// frequency changes and finding the first frequency reached twice.
package day1

import (
	"errors"
	"fmt"

	"github.com/maisem/aoc2018"
)

// ParseError reports a line that is not a signed decimal integer.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: bad frequency change %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrEmptySequence is returned by FirstRepeatedRunningSum when there are no
// changes to replay.
var ErrEmptySequence = errors.New("day1: no frequency changes")

// Parse returns the integers of input, one per line. Each line may carry a
// leading '+' or '-'.
func Parse(input string) ([]int, error) {
	lines := aoc.Lines(input)
	vals := make([]int, 0, len(lines))
	for i, l := range lines {
		n, err := aoc.ParseInt(l)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: l, Err: err}
		}
		vals = append(vals, n)
	}
	return vals, nil
}

// Total returns the sum of the changes in input.
func Total(input string) (int, error) {
	vals, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return aoc.Sum(vals...), nil
}

// FirstRepeatedRunningSum replays the changes in input from the start
// whenever they run out and returns the first running total seen twice.
// The starting total of 0 does not count as seen.
//
// It does not return if no running total ever repeats.
func FirstRepeatedRunningSum(input string) (int, error) {
	vals, err := Parse(input)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, ErrEmptySequence
	}
	var (
		seen  aoc.Set[int]
		total int
	)
	for i := 0; ; i = (i + 1) % len(vals) {
		total += vals[i]
		if !seen.Insert(total) {
			return total, nil
		}
	}
}
