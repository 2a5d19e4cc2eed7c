package day1

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	got, err := Parse("\n+1\n-2\n  +3 \n+1\n")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, -2, 3, 1}, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		in       string
		wantLine int
		wantText string
	}{
		{"+1\n+x\n", 2, "+x"},
		{"1.5", 1, "1.5"},
		{"+1\n\n-1", 2, ""},
		{"+1\n++2", 2, "++2"},
	}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Parse(%q) error = %v, want *ParseError", tt.in, err)
			continue
		}
		if pe.Line != tt.wantLine || pe.Text != tt.wantText {
			t.Errorf("Parse(%q) error at line %d %q, want line %d %q", tt.in, pe.Line, pe.Text, tt.wantLine, tt.wantText)
		}
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Errorf("Parse(%q) error %v does not wrap strconv.ErrSyntax", tt.in, err)
		}
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"+1\n-2\n+3\n+1", 3},
		{"+1\n+1\n+1", 3},
		{"+1\n+1\n-2", 0},
		{"-1\n-2\n-3", -6},
		{"", 0},
	}
	for _, tt := range tests {
		got, err := Total(tt.in)
		if err != nil {
			t.Errorf("Total(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Total(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTotalOrderIndependent(t *testing.T) {
	a, err := Total("+7\n-3\n+12\n-20\n+5")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Total("+5\n-20\n+12\n-3\n+7")
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a != 1 {
		t.Errorf("Total = %d and %d for reordered input, want 1", a, b)
	}
}

func TestTotalParseError(t *testing.T) {
	if _, err := Total("+1\nnope"); err == nil {
		t.Error("Total succeeded on bad input")
	}
}

func TestFirstRepeatedRunningSum(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"+3\n+3\n+4\n-2\n-4\n", 10},
		{"-6\n+3\n+8\n+5\n-6", 5},
		{"+7\n+7\n-2\n-7\n-4", 14},
		// 0 is not seen until it is reached.
		{"+1\n-1", 1},
		{"-1\n+1", -1},
		{"+0", 0},
	}
	for _, tt := range tests {
		got, err := FirstRepeatedRunningSum(tt.in)
		if err != nil {
			t.Errorf("FirstRepeatedRunningSum(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FirstRepeatedRunningSum(%q) = %d, want %d", tt.in, got, tt.want)
		}
		again, _ := FirstRepeatedRunningSum(tt.in)
		if again != got {
			t.Errorf("FirstRepeatedRunningSum(%q) = %d on second call, want %d", tt.in, again, got)
		}
	}
}

func TestFirstRepeatedRunningSumErrors(t *testing.T) {
	if _, err := FirstRepeatedRunningSum(""); !errors.Is(err, ErrEmptySequence) {
		t.Errorf("empty input error = %v, want ErrEmptySequence", err)
	}
	var pe *ParseError
	if _, err := FirstRepeatedRunningSum("+1\n-x"); !errors.As(err, &pe) {
		t.Errorf("bad input error = %v, want *ParseError", err)
	}
}
