package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// ParseInt parses a signed decimal integer, ignoring surrounding
// whitespace. A leading '+' or '-' is accepted.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(ParseInt(s))
}
