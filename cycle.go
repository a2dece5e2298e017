package aoc

import "tailscale.com/util/deephash"

// FindCycle follows the sequence start, next(start), next(next(start)), ...
// until a state repeats. It returns mu, the index of the first state on
// the cycle, and lambda, the cycle length.
//
// States are compared by their deephash, so S need not be comparable and
// may hold slices or maps. next may reuse the memory of its argument.
// FindCycle never returns if the sequence doesn't repeat.
func FindCycle[S any](start S, next func(S) S) (mu, lambda int) {
	hash := deephash.HasherForType[S]()
	seen := map[deephash.Sum]int{}
	s := start
	for i := 0; ; i++ {
		h := hash(&s)
		if j, ok := seen[h]; ok {
			return j, i - j
		}
		seen[h] = i
		s = next(s)
	}
}
