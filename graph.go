package aoc

import (
	"cmp"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

var (
	// ErrNoPath is returned when a walk can never reach a stop node.
	ErrNoPath = errors.New("no path")
	// ErrUnknownNode is returned when a walk reaches a name that isn't a
	// node of the network.
	ErrUnknownNode = errors.New("unknown node")
	// ErrNoTurns is returned when walking with an empty turn sequence.
	ErrNoTurns = errors.New("no turns")
)

// Turn is a choice between the left and right successor of a node.
type Turn int

const (
	Left Turn = iota
	Right
)

func (t Turn) String() string {
	switch t {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Turn(%d)", int(t))
}

// ParseTurns parses a string of L and R.
func ParseTurns(s string) ([]Turn, error) {
	turns := make([]Turn, 0, len(s))
	for i, c := range s {
		switch c {
		case 'L':
			turns = append(turns, Left)
		case 'R':
			turns = append(turns, Right)
		default:
			return nil, fmt.Errorf("turn %d: bad direction %q", i, c)
		}
	}
	return turns, nil
}

// Fork is a node's pair of successors.
type Fork[K comparable] struct {
	Left, Right K
}

// Take returns the successor for t.
func (f Fork[K]) Take(t Turn) K {
	if t == Left {
		return f.Left
	}
	return f.Right
}

// Network is a directed graph where every node has exactly a left and a
// right successor.
//
// Every successor is expected to be a node too; walks that run off the
// network fail with ErrUnknownNode.
type Network[K comparable] struct {
	Nodes map[K]Fork[K]
}

// AddNode adds (or replaces) node n.
func (g *Network[K]) AddNode(n, left, right K) {
	InitMap(&g.Nodes)
	g.Nodes[n] = Fork[K]{left, right}
}

// Next returns the node after n when taking t.
func (g *Network[K]) Next(n K, t Turn) (K, error) {
	f, ok := g.Nodes[n]
	if !ok {
		var zero K
		return zero, fmt.Errorf("%w %v", ErrUnknownNode, n)
	}
	return f.Take(t), nil
}

// Len returns the number of nodes.
func (g *Network[K]) Len() int {
	return len(g.Nodes)
}

// Reachable returns every node reachable from a, including a.
func (g *Network[K]) Reachable(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		if f, ok := g.Nodes[v]; ok {
			q.Push(f.Left, f.Right)
		}
		return true
	})
	return visited
}

// maxSteps bounds a walk over turns. A walker's state is its node and its
// position in turns, so after this many steps some state has repeated and
// the walk loops forever.
func (g *Network[K]) maxSteps(turns []Turn) int {
	return g.Len()*len(turns) + 1
}

// Steps returns how many steps it takes to walk from start to the first
// node for which stop returns true, following turns over and over. Zero
// steps are taken if start is already a stop node.
//
// If no stop node can be reached, it fails with ErrNoPath instead of
// walking forever.
func (g *Network[K]) Steps(start K, turns []Turn, stop func(K) bool) (int, error) {
	if len(turns) == 0 {
		return 0, ErrNoTurns
	}
	if !slices.ContainsFunc(maps.Keys(g.Reachable(start)), stop) {
		return 0, fmt.Errorf("from %v: %w", start, ErrNoPath)
	}
	cur := start
	limit := g.maxSteps(turns)
	for step := 0; step <= limit; step++ {
		if stop(cur) {
			return step, nil
		}
		var err error
		if cur, err = g.Next(cur, turns[step%len(turns)]); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("from %v: %w", start, ErrNoPath)
}

// StepsTo is Steps with a single target node.
func (g *Network[K]) StepsTo(start, end K, turns []Turn) (int, error) {
	return g.Steps(start, turns, func(n K) bool { return n == end })
}

// GhostSteps walks one walker from each of starts at the same time, all
// following turns, and records for each the first step at which it is on
// a stop node. It returns the least common multiple of those steps.
//
// This is only the step at which all walkers stand on stop nodes together
// if each walker's first hit is also the period at which it keeps hitting
// stop nodes. Puzzle inputs are built that way, but nothing here checks
// it; see Cycle.
func (g *Network[K]) GhostSteps(starts []K, turns []Turn, stop func(K) bool) (int, error) {
	if len(turns) == 0 {
		return 0, ErrNoTurns
	}
	if len(starts) == 0 {
		return 0, fmt.Errorf("no walkers: %w", ErrNoPath)
	}
	cur := slices.Clone(starts)
	hits := make([]int, len(starts))
	remaining := len(starts)
	limit := g.maxSteps(turns)
	for step := 0; step <= limit; step++ {
		for i, n := range cur {
			if hits[i] == 0 && step > 0 && stop(n) {
				hits[i] = step
				remaining--
			}
		}
		if remaining == 0 {
			return LCM(hits...), nil
		}
		t := turns[step%len(turns)]
		for i, n := range cur {
			next, err := g.Next(n, t)
			if err != nil {
				return 0, err
			}
			cur[i] = next
		}
	}
	for i, h := range hits {
		if h == 0 {
			return 0, fmt.Errorf("from %v: %w", starts[i], ErrNoPath)
		}
	}
	panic("unreachable")
}

// walkerState is where a walker is and which turn it takes next.
type walkerState[K comparable] struct {
	Node K
	Pos  int
}

// Cycle returns the cycle a walker from start falls into when following
// turns. mu is the number of steps before it first enters the cycle and
// lambda the cycle's length in steps.
func (g *Network[K]) Cycle(start K, turns []Turn) (mu, lambda int, err error) {
	if len(turns) == 0 {
		return 0, 0, ErrNoTurns
	}
	for n := range g.Reachable(start) {
		if _, ok := g.Nodes[n]; !ok {
			return 0, 0, fmt.Errorf("%w %v", ErrUnknownNode, n)
		}
	}
	mu, lambda = FindCycle(walkerState[K]{Node: start}, func(s walkerState[K]) walkerState[K] {
		return walkerState[K]{
			Node: g.Nodes[s.Node].Take(turns[s.Pos]),
			Pos:  (s.Pos + 1) % len(turns),
		}
	})
	return mu, lambda, nil
}

// Names returns the sorted names of the nodes for which match returns
// true.
func Names[K cmp.Ordered](g *Network[K], match func(K) bool) []K {
	var out []K
	for _, k := range maps.Keys(g.Nodes) {
		if match(k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// HasSuffix returns a matcher for names ending in suffix.
func HasSuffix(suffix string) func(string) bool {
	return func(k string) bool { return strings.HasSuffix(k, suffix) }
}

var nodeRx = regexp.MustCompile(`^(\w+) = \((\w+), (\w+)\)$`)

// ParseNetwork parses lines of the form "AAA = (BBB, CCC)".
func ParseNetwork(lines []string) (*Network[string], error) {
	g := &Network[string]{Nodes: make(map[string]Fork[string], len(lines))}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := nodeRx.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			return nil, fmt.Errorf("line %d: bad node %q", i+1, line)
		}
		g.AddNode(m[1], m[2], m[3])
	}
	return g, nil
}

// ParseMap parses a map of turns followed by a blank line and the nodes
// of a network:
//
//	LLR
//
//	AAA = (BBB, BBB)
//	BBB = (AAA, ZZZ)
//	ZZZ = (ZZZ, ZZZ)
func ParseMap(lines []string) ([]Turn, *Network[string], error) {
	if len(lines) < 2 || strings.TrimSpace(lines[1]) != "" {
		return nil, nil, errors.New("want turns, a blank line, then nodes")
	}
	turns, err := ParseTurns(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, nil, err
	}
	g, err := ParseNetwork(lines[2:])
	if err != nil {
		return nil, nil, err
	}
	return turns, g, nil
}

// InitMap makes *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
