package match

import (
	"fmt"
	"time"
)

// Result is the outcome of a single search.
type Result struct {
	Found       bool
	Position    int // -1 when not found
	Comparisons int
	Elapsed     time.Duration
}

// Matcher is the common signature of every search function in this package.
type Matcher func(text, pattern string) Result

// Algorithm names one of the matchers.
type Algorithm int

const (
	AlgNaive Algorithm = iota
	AlgKMP
	AlgKMPImproved
	AlgBoyerMoore
	AlgSunday
)

// Algorithms lists every algorithm in declaration order.
var Algorithms = []Algorithm{AlgNaive, AlgKMP, AlgKMPImproved, AlgBoyerMoore, AlgSunday}

var algorithmNames = [...]string{
	AlgNaive:       "naive",
	AlgKMP:         "kmp",
	AlgKMPImproved: "kmp-nextval",
	AlgBoyerMoore:  "boyer-moore",
	AlgSunday:      "sunday",
}

// String returns the short lower-case name of a.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm is the inverse of Algorithm.String.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// Matcher returns the search function for a.
func (a Algorithm) Matcher() (Matcher, error) {
	switch a {
	case AlgNaive:
		return Naive, nil
	case AlgKMP:
		return KMP, nil
	case AlgKMPImproved:
		return KMPImproved, nil
	case AlgBoyerMoore:
		return BoyerMoore, nil
	case AlgSunday:
		return Sunday, nil
	}

	return nil, fmt.Errorf("%s: %w", a, ErrUnknownAlgorithm)
}

// Profile summarises repeated runs of one algorithm.
type Profile struct {
	Algorithm   Algorithm
	Found       bool
	Position    int
	Comparisons int
	Mean        time.Duration
	StdDev      time.Duration
}

// search is the untimed core of a matcher: leftmost position (or -1) and
// the number of byte comparisons. Callers guarantee 1 <= m <= n.
type search func(text, pattern string) (pos, comparisons int)

// run applies the shared edge cases, times core and packs the Result.
func run(text, pattern string, core search) Result {
	start := time.Now()
	pos, comps := -1, 0
	switch {
	case len(pattern) == 0:
		pos = 0
	case len(pattern) <= len(text):
		pos, comps = core(text, pattern)
	}

	return Result{Found: pos >= 0, Position: pos, Comparisons: comps, Elapsed: time.Since(start)}
}
