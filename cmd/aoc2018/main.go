// The aoc2018 command runs the Advent of Code 2018 solutions, first against
// the worked examples below and then against the real input.
package main

import (
	_ "embed"
	"log"

	"github.com/maisem/aoc2018"
	"github.com/maisem/aoc2018/day1"
	"github.com/maisem/aoc2018/day2"
)

func main() {
	aoc.Run(2018, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=3

+1
-2
+3
+1
*/
func (s solver) D1p1() any {
	return aoc.MustGet(day1.Total(s.Text()))
}

/*
want=10

+3
+3
+4
-2
-4
*/
func (s solver) D1p2() any {
	v, err := day1.FirstRepeatedRunningSum(s.Text())
	if err != nil {
		log.Fatal(err)
	}
	s.Debug("first repeated frequency", v)
	return v
}

/*
want=12

abcdef
bababc
abbcde
abcccd
aabcdd
abcdee
ababab
*/
func (s solver) D2p1() any {
	return day2.Checksum(s.Text())
}

/*
want=fgij

abcde
fghij
klmno
pqrst
fguij
axcye
wvxyz
*/
func (s solver) D2p2() any {
	common, ok := day2.Solve(s.Text())
	if !ok {
		log.Fatal("no two box IDs differ by at most one character")
	}
	return common
}
