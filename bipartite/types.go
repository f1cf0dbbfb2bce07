// Package bipartite defines the graph types and sentinel errors for the
// bipartite subpackage of github.com/katalvlaran/stablematch.
package bipartite

import (
	"errors"

	"github.com/katalvlaran/stablematch/matching"
)

// Sentinel errors for bipartite graph construction.
var (
	// ErrPartnerCount indicates an agent maps to zero or several partners;
	// a solved matching assigns exactly one.
	ErrPartnerCount = errors.New("bipartite: every agent must map to exactly one partner")

	// ErrAsymmetric indicates partner references do not mirror: A names B but
	// B does not name A (or B is absent from the mapping entirely).
	ErrAsymmetric = errors.New("bipartite: partner references must mirror each other")

	// ErrSameSide indicates a matched pair does not cross sides.
	ErrSameSide = errors.New("bipartite: matched pair must cross sides")
)

// Edge is one matched pair: a left (suitor) and right (reviewer) identity.
type Edge struct {
	Left  matching.AgentID
	Right matching.AgentID
}

// Graph is a read-only two-sided view of a solved matching. It is immutable
// once built; construct it with FromMatching or FromRegistry.
type Graph struct {
	left    []matching.AgentID // suitor identities, sorted by name
	right   []matching.AgentID // reviewer identities, sorted by name
	edges   []Edge             // one per pair, in left-side order
	partner map[matching.AgentID]matching.AgentID
}
