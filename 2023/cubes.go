package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ewaldh/aoc"
)

// Color is the color of a cube.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

func (c Color) String() string {
	if c < Red || c > Blue {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// ParseColor parses "red", "green" or "blue".
func ParseColor(s string) (Color, error) {
	for c, name := range colorNames {
		if s == name {
			return Color(c), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Round is how many cubes of each color were shown at once. It is also
// used to describe the contents of a bag.
type Round map[Color]int

// Fits reports whether the round could have been drawn from bag.
func (r Round) Fits(bag Round) bool {
	for c, n := range r {
		if n > bag[c] {
			return false
		}
	}
	return true
}

// Power is the product of the red, green and blue counts.
func (r Round) Power() int {
	return aoc.Product(r[Red], r[Green], r[Blue])
}

// Game is one line of day 2 input.
type Game struct {
	ID     int
	Rounds []Round
}

// ParseGame parses a line like
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
func ParseGame(line string) (Game, error) {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("no colon in %q", line)
	}
	idStr, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, fmt.Errorf("bad game header %q", head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Game{}, fmt.Errorf("game id: %w", err)
	}
	g := Game{ID: id}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return g, nil
	}
	for _, rs := range strings.Split(rest, ";") {
		r, err := parseRound(rs)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Rounds = append(g.Rounds, r)
	}
	return g, nil
}

// parseRound parses "3 blue, 4 red".
func parseRound(s string) (Round, error) {
	r := Round{}
	for _, die := range strings.Split(s, ",") {
		f := strings.Fields(die)
		if len(f) != 2 {
			return nil, fmt.Errorf("bad cubes %q", die)
		}
		n, err := strconv.Atoi(f[0])
		if err != nil {
			return nil, fmt.Errorf("bad count in %q: %w", die, err)
		}
		c, err := ParseColor(f[1])
		if err != nil {
			return nil, err
		}
		r[c] += n
	}
	return r, nil
}

// Possible reports whether every round of g could come from bag.
func (g Game) Possible(bag Round) bool {
	for _, r := range g.Rounds {
		if !r.Fits(bag) {
			return false
		}
	}
	return true
}

// MinBag returns the fewest cubes of each color that make g possible.
func (g Game) MinBag() Round {
	bag := Round{Red: 0, Green: 0, Blue: 0}
	for _, r := range g.Rounds {
		for c, n := range r {
			bag[c] = max(bag[c], n)
		}
	}
	return bag
}
