// Package bipartite turns a solved matching into a read-only two-sided graph,
// the hand-off boundary for visualization and graph consumers.
//
// What:
//
//   - Graph holds the suitor side on the left, the reviewer side on the
//     right, and one edge per matched pair.
//   - FromMatching accepts the solve output shape directly: a mapping from
//     agent identity to a one-element slice naming the partner.
//   - FromRegistry is the convenience path: it asks the registry for its
//     result (which fails fast on an unsolved registry) and builds the graph.
//
// Why:
//
//   - Rendering: adjacency in a stable, deterministic order for plotting.
//   - Auditing: degree and symmetry of a pairing at a glance.
//   - Interop: a plain two-sided structure with no engine types attached.
//
// Determinism:
//
//   - Left and right vertex sets are sorted by name; edges are emitted in
//     left-side order. A fixed matching yields a fixed graph.
//
// Complexity:
//
//   - FromMatching: O(n log n) time, O(n) memory.
//   - All read accessors: O(1) or O(n) for copied slices.
//
// Errors:
//
//   - ErrPartnerCount: some agent maps to zero or several partners.
//   - ErrAsymmetric: partner references do not mirror each other.
//   - ErrSameSide: a matched pair does not cross sides.
package bipartite
