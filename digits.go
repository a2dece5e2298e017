package aoc

import "strings"

// NumberWord is a digit from one to nine spelled out in English.
type NumberWord int

const (
	One NumberWord = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

var numberWords = [...]string{
	One:   "one",
	Two:   "two",
	Three: "three",
	Four:  "four",
	Five:  "five",
	Six:   "six",
	Seven: "seven",
	Eight: "eight",
	Nine:  "nine",
}

// NumberWords returns One through Nine in order.
func NumberWords() []NumberWord {
	return []NumberWord{One, Two, Three, Four, Five, Six, Seven, Eight, Nine}
}

func (w NumberWord) String() string {
	if w < One || w > Nine {
		return ""
	}
	return numberWords[w]
}

// Value returns the digit value of w.
func (w NumberWord) Value() int { return int(w) }

// Span is the first and last index at which a digit starts in a line.
// Both are -1 if the digit doesn't occur.
type Span struct {
	First, Last int
}

// Found reports whether the digit occurs at all.
func (s Span) Found() bool { return s.First >= 0 }

func (s Span) merge(first, last int) Span {
	if first < 0 {
		return s
	}
	if !s.Found() {
		return Span{first, last}
	}
	return Span{min(s.First, first), max(s.Last, last)}
}

// DigitSpans returns, indexed by digit value, where each digit first and
// last occurs in line. If words is true, a spelled out number counts as
// an occurrence starting at its first letter.
//
// Each word is searched for on its own, so overlapping words such as the
// "one" and "eight" in "oneight" are both found.
func DigitSpans(line string, words bool) [10]Span {
	var spans [10]Span
	for d := range spans {
		c := byte('0' + d)
		spans[d] = Span{strings.IndexByte(line, c), strings.LastIndexByte(line, c)}
	}
	if !words {
		return spans
	}
	for _, w := range NumberWords() {
		s := w.String()
		spans[w.Value()] = spans[w.Value()].merge(strings.Index(line, s), strings.LastIndex(line, s))
	}
	return spans
}

// FirstDigit returns the value of the first digit in line, scanning from
// the left. It reports false if line has no digit.
func FirstDigit(line string, words bool) (int, bool) {
	spans := DigitSpans(line, words)
	for i := 0; i < len(line); i++ {
		for d, s := range spans {
			if s.First == i {
				return d, true
			}
		}
	}
	return 0, false
}

// LastDigit is like FirstDigit but scans from the right.
func LastDigit(line string, words bool) (int, bool) {
	spans := DigitSpans(line, words)
	for i := len(line) - 1; i >= 0; i-- {
		for d, s := range spans {
			if s.Last == i {
				return d, true
			}
		}
	}
	return 0, false
}

// Calibration returns the two digit number made of the first and last
// digit of line, or 0 if line has none. A lone digit is used twice, so
// "treb7uchet" is 77.
func Calibration(line string, words bool) int {
	first, ok := FirstDigit(line, words)
	if !ok {
		return 0
	}
	last, ok := LastDigit(line, words)
	if !ok {
		return 0
	}
	return first*10 + last
}
