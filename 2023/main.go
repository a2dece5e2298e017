package main

import (
	_ "embed"

	"github.com/ewaldh/aoc"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) calibrate(words bool) int {
	sum := 0
	s.ForLines(func(line string) {
		v := aoc.Calibration(line, words)
		s.Debugf("%s => %d", line, v)
		sum += v
	})
	return sum
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return s.calibrate(false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return s.calibrate(true)
}

func (s solver) games() []Game {
	var games []Game
	s.ForLines(func(line string) {
		games = append(games, aoc.MustGet(ParseGame(line)))
	})
	return games
}

// bag is what the elf says is in the bag.
var bag = Round{Red: 12, Green: 13, Blue: 14}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	sum := 0
	for _, g := range s.games() {
		if g.Possible(bag) {
			sum += g.ID
		}
	}
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	for _, g := range s.games() {
		sum += g.MinBag().Power()
	}
	return sum
}

func (s solver) network() ([]aoc.Turn, *aoc.Network[string]) {
	turns, g, err := aoc.ParseMap(s.Lines())
	aoc.MustDo(err)
	return turns, g
}

/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	turns, g := s.network()
	return aoc.MustGet(g.StepsTo("AAA", "ZZZ", turns))
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	turns, g := s.network()
	starts := aoc.Names(g, aoc.HasSuffix("A"))
	stop := aoc.HasSuffix("Z")
	if s.Debugging() {
		for _, start := range starts {
			first := aoc.MustGet(g.Steps(start, turns, stop))
			mu, lambda, err := g.Cycle(start, turns)
			aoc.MustDo(err)
			s.Debugf("%s: first Z at %d, cycle of %d after %d", start, first, lambda, mu)
		}
	}
	return aoc.MustGet(g.GhostSteps(starts, turns, stop))
}
