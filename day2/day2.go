// Package day2 solves day 2 of Advent of Code 2018: a checksum over the
// letter counts of box IDs, and the letters shared by the two IDs that
// differ in at most one position.
package day2

import (
	"strings"

	"github.com/maisem/aoc2018"
)

// Repeats records whether an ID has some letter exactly twice and some
// letter exactly three times.
type Repeats struct {
	Two, Three bool
}

// Classify counts the runes of id. A rune seen four or more times sets
// neither flag.
func Classify(id string) Repeats {
	var c aoc.Counter[rune]
	for _, r := range id {
		c.Inc(r)
	}
	return Repeats{
		Two:   c.HasCount(2),
		Three: c.HasCount(3),
	}
}

// Tally counts IDs with a doubled and with a tripled letter.
type Tally struct {
	Twos, Threes uint
}

func (t Tally) Add(r Repeats) Tally {
	if r.Two {
		t.Twos++
	}
	if r.Three {
		t.Threes++
	}
	return t
}

func (t Tally) Product() uint {
	return t.Twos * t.Threes
}

// Checksum returns the number of IDs with a doubled letter times the number
// of IDs with a tripled letter. input holds one ID per line; spaces are
// part of an ID.
func Checksum(input string) uint {
	return aoc.Fold(aoc.RawLines(input), func(t Tally, id string) Tally {
		return t.Add(Classify(id))
	}, Tally{}).Product()
}

// WithinTolerance reports whether a and b differ in at most limit
// positions. Only the first min(len(a), len(b)) runes are compared; the
// rest of the longer string is ignored.
func WithinTolerance(a, b string, limit int) bool {
	ra, rb := []rune(a), []rune(b)
	mismatches := 0
	for i := 0; i < min(len(ra), len(rb)); i++ {
		if ra[i] != rb[i] {
			mismatches++
			if mismatches > limit {
				return false
			}
		}
	}
	return mismatches <= limit
}

// FindNearPair returns the first pair ids[i], ids[j] with i < j that is
// within a tolerance of one mismatch, scanning i then j in increasing
// order. ok is false if there is no such pair.
func FindNearPair(ids []string) (a, b string, ok bool) {
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			if WithinTolerance(ids[i], ids[j], 1) {
				return ids[i], ids[j], true
			}
		}
	}
	return "", "", false
}

// CommonChars returns the runes of a that match b at the same position,
// in order, over the shorter of the two.
func CommonChars(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	var sb strings.Builder
	for i := 0; i < min(len(ra), len(rb)); i++ {
		if ra[i] == rb[i] {
			sb.WriteRune(ra[i])
		}
	}
	return sb.String()
}

// Solve returns the letters common to the near-matching pair of IDs in
// input, one ID per line with spaces kept. ok is false if no two IDs are
// within one mismatch of each other.
func Solve(input string) (common string, ok bool) {
	a, b, ok := FindNearPair(aoc.RawLines(input))
	if !ok {
		return "", false
	}
	return CommonChars(a, b), true
}
