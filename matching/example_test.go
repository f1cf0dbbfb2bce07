// File: matching/example_test.go
package matching_test

import (
	"fmt"

	"github.com/katalvlaran/stablematch/matching"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleRegistry_Solve demonstrates deferred acceptance on four suitors and
// four reviewers with full strict preference lists.
// Scenario:
//
//   - Suitors J,K,L,M rank reviewers A,B,C,D; reviewers rank suitors back.
//   - Suitors propose, so each ends with its best stable partner.
//   - Expect the stable pairing J–A, K–C, L–D, M–B.
//
// Complexity: O(n²), Memory: O(n²)
func ExampleRegistry_Solve() {
	suitors := matching.Preferences{
		"J": {"A", "D", "C", "B"},
		"K": {"A", "B", "C", "D"},
		"L": {"B", "D", "C", "A"},
		"M": {"C", "A", "B", "D"},
	}
	reviewers := matching.Preferences{
		"A": {"L", "J", "K", "M"},
		"B": {"J", "M", "L", "K"},
		"C": {"K", "M", "L", "J"},
		"D": {"M", "K", "J", "L"},
	}
	reg, _ := matching.NewRegistryFromPreferences(suitors, reviewers)

	result, _ := reg.Solve()
	fmt.Println("pairs:", len(result)/2)
	for _, s := range reg.Suitors() {
		partner, _ := s.Partner()
		fmt.Printf("%s-%s\n", s.Name(), partner.Name())
	}

	// Output:
	// pairs: 4
	// J-A
	// K-C
	// L-D
	// M-B
}

////////////////////////////////////////////////////////////////////////////////
// Example: Solve with WithInvert
////////////////////////////////////////////////////////////////////////////////

// ExampleRegistry_Solve_invert demonstrates the invert toggle: reviewers
// propose, so each reviewer lands its own top choice in this instance and the
// pairing is reviewer-optimal.
func ExampleRegistry_Solve_invert() {
	suitors := matching.Preferences{
		"J": {"A", "D", "C", "B"},
		"K": {"A", "B", "C", "D"},
		"L": {"B", "D", "C", "A"},
		"M": {"C", "A", "B", "D"},
	}
	reviewers := matching.Preferences{
		"A": {"L", "J", "K", "M"},
		"B": {"J", "M", "L", "K"},
		"C": {"K", "M", "L", "J"},
		"D": {"M", "K", "J", "L"},
	}
	reg, _ := matching.NewRegistryFromPreferences(suitors, reviewers)

	_, _ = reg.Solve(matching.WithInvert())
	for _, r := range reg.Reviewers() {
		partner, _ := r.Partner()
		fmt.Printf("%s-%s\n", r.Name(), partner.Name())
	}

	// Output:
	// A-L
	// B-J
	// C-K
	// D-M
}
