package match_test

import (
	"fmt"

	"github.com/katalvlaran/classicds/match"
)

// ExampleNext prints the failure function of a classic pattern.
func ExampleNext() {
	fmt.Println(match.Next("ababaca"))
	// Output:
	// [-1 0 0 1 2 3 0]
}

// ExampleKMP finds a pattern after a near miss.
func ExampleKMP() {
	r := match.KMP("ababcababa", "ababa")
	fmt.Println(r.Found, r.Position)
	// Output:
	// true 5
}

// ExampleFindAll lists overlapping occurrences.
func ExampleFindAll() {
	pos, _ := match.FindAll(match.AlgBoyerMoore, "banana", "ana")
	fmt.Println(pos)
	// Output:
	// [1 3]
}
