package matching_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/stablematch/matching"
)

// benchRegistry builds an n×n worst-case instance for proposal count: every
// suitor shares one ranking, every reviewer ranks suitors in reverse.
func benchRegistry(b *testing.B, n int) *matching.Registry {
	b.Helper()
	reg, err := matching.NewRegistry(n)
	if err != nil {
		b.Fatalf("NewRegistry(%d): %v", n, err)
	}
	forward := make([]string, n)
	reverse := make([]string, n)
	for i := 0; i < n; i++ {
		forward[i] = strconv.Itoa(i)
		reverse[n-1-i] = strconv.Itoa(i)
	}
	for i := 0; i < n; i++ {
		if err = reg.SetSuitorPreferences(forward[i], forward); err != nil {
			b.Fatal(err)
		}
		if err = reg.SetReviewerPreferences(forward[i], reverse); err != nil {
			b.Fatal(err)
		}
	}

	return reg
}

// BenchmarkSolve measures deferred acceptance on a 100×100 worst-case
// profile; solves are idempotent, so the registry is reused across iterations.
func BenchmarkSolve(b *testing.B) {
	reg := benchRegistry(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reg.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Invert measures the same profile with reviewers proposing.
func BenchmarkSolve_Invert(b *testing.B) {
	reg := benchRegistry(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reg.Solve(matching.WithInvert()); err != nil {
			b.Fatal(err)
		}
	}
}
