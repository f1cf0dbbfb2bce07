package bipartite

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stablematch/matching"
)

// Method tags used in wrapped error messages.
const (
	methodFromMatching = "FromMatching"
)

// FromMatching builds a two-sided graph from a solve result: a mapping whose
// keys are agent identities (unique across both sides) and whose values are
// one-element slices naming the partner. An empty mapping yields an empty
// graph.
//
// Returns ErrPartnerCount, ErrSameSide, or ErrAsymmetric when the mapping is
// not the output of a successful solve.
// Complexity: O(n log n) time, O(n) memory.
func FromMatching(m matching.Matching) (*Graph, error) {
	partner := make(map[matching.AgentID]matching.AgentID, len(m))
	for id, partners := range m {
		if len(partners) != 1 {
			return nil, fmt.Errorf("%s: %s has %d partners: %w",
				methodFromMatching, id, len(partners), ErrPartnerCount)
		}
		partner[id] = partners[0]
	}

	// Validate the pairing before exposing any structure.
	for id, p := range partner {
		if p.Role == id.Role {
			return nil, fmt.Errorf("%s: %s paired with %s: %w",
				methodFromMatching, id, p, ErrSameSide)
		}
		back, ok := partner[p]
		if !ok || back != id {
			return nil, fmt.Errorf("%s: %s names %s: %w",
				methodFromMatching, id, p, ErrAsymmetric)
		}
	}

	g := &Graph{partner: partner}
	for id := range partner {
		if id.Role == matching.RoleSuitor {
			g.left = append(g.left, id)
		} else {
			g.right = append(g.right, id)
		}
	}
	sortByName(g.left)
	sortByName(g.right)

	// One edge per pair, emitted in left-side order.
	g.edges = make([]Edge, len(g.left))
	for i, l := range g.left {
		g.edges[i] = Edge{Left: l, Right: partner[l]}
	}

	return g, nil
}

// FromRegistry builds the graph from a registry's current pairing. The
// registry performs its own solved check and fails fast with ErrUnsolved when
// queried before a solve; this function never solves on the caller's behalf.
func FromRegistry(reg *matching.Registry) (*Graph, error) {
	m, err := reg.Result()
	if err != nil {
		return nil, err
	}

	return FromMatching(m)
}

// Left returns the suitor-side identities, sorted by name, as a copied slice.
func (g *Graph) Left() []matching.AgentID {
	return append([]matching.AgentID(nil), g.left...)
}

// Right returns the reviewer-side identities, sorted by name, as a copied slice.
func (g *Graph) Right() []matching.AgentID {
	return append([]matching.AgentID(nil), g.right...)
}

// Edges returns every matched pair in left-side order, as a copied slice.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Order returns the total number of vertices across both sides.
func (g *Graph) Order() int {
	return len(g.left) + len(g.right)
}

// Size returns the number of edges (matched pairs).
func (g *Graph) Size() int {
	return len(g.edges)
}

// PartnerOf returns the partner of id and whether id is present in the graph.
func (g *Graph) PartnerOf(id matching.AgentID) (matching.AgentID, bool) {
	p, ok := g.partner[id]

	return p, ok
}

// HasEdge reports whether l and r form a matched pair, in either argument order.
func (g *Graph) HasEdge(l, r matching.AgentID) bool {
	p, ok := g.partner[l]

	return ok && p == r
}

// sortByName orders identities by name ascending; names are unique per side.
func sortByName(ids []matching.AgentID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Name < ids[j].Name })
}
