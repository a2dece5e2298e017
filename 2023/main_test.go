package main

import (
	"reflect"
	"testing"

	"github.com/ewaldh/aoc"
)

func TestParseGame(t *testing.T) {
	got, err := ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	if err != nil {
		t.Fatal(err)
	}
	want := Game{
		ID: 1,
		Rounds: []Round{
			{Blue: 3, Red: 4},
			{Red: 1, Green: 2, Blue: 6},
			{Green: 2},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseGame = %v, want %v", got, want)
	}
}

func TestParseGameErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"Round 1: 3 blue",
		"Game x: 3 blue",
		"Game 1: 3 purple",
		"Game 1: blue 3",
		"Game 1: 3",
	} {
		if g, err := ParseGame(line); err == nil {
			t.Errorf("ParseGame(%q) = %v, want error", line, g)
		}
	}
}

func TestGame(t *testing.T) {
	tests := []struct {
		line     string
		possible bool
		power    int
	}{
		{"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green", true, 48},
		{"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red", false, 1560},
		{"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red", false, 630},
		{"Game 6: 2 red", true, 0},
	}
	for _, tt := range tests {
		g := aoc.MustGet(ParseGame(tt.line))
		if got := g.Possible(bag); got != tt.possible {
			t.Errorf("%q Possible = %v, want %v", tt.line, got, tt.possible)
		}
		if got := g.MinBag().Power(); got != tt.power {
			t.Errorf("%q MinBag().Power() = %v, want %v", tt.line, got, tt.power)
		}
	}
}

func TestColor(t *testing.T) {
	for _, c := range []Color{Red, Green, Blue} {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", c.String(), got, err, c)
		}
	}
	if got := Color(7).String(); got != "Color(7)" {
		t.Errorf("Color(7).String() = %q", got)
	}
}

func TestSolver(t *testing.T) {
	const rl = `RL

AAA = (BBB, CCC)
BBB = (DDD, EEE)
CCC = (ZZZ, GGG)
DDD = (DDD, DDD)
EEE = (EEE, EEE)
GGG = (GGG, GGG)
ZZZ = (ZZZ, ZZZ)
`
	tests := []struct {
		name  string
		part  func(solver) any
		input string
		want  any
	}{
		{"D1p1", solver.D1p1, "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n", 142},
		{"D1p1 words ignored", solver.D1p1, "two1nine\n", 11},
		{"D1p1 no digits", solver.D1p1, "abc\n\n", 0},
		{"D1p2", solver.D1p2, "two1nine\neightwothree\nabcone2threexyz\n", 29 + 83 + 13},
		{"D1p2 overlap", solver.D1p2, "oneight\n", 18},
		{"D2p1", solver.D2p1, "Game 7: 12 red, 13 green, 14 blue\nGame 8: 13 red\n", 7},
		{"D2p2", solver.D2p2, "Game 1: 1 red, 2 green; 3 blue\nGame 2: 2 red, 2 green, 2 blue\n", 6 + 8},
		{"D8p1", solver.D8p1, rl, 2},
		{"D8p2 one ghost", solver.D8p2, rl, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := solver{aoc.NewPuzzle(tt.input)}
			if got := tt.part(s); got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
