// Package matching implements two-sided stable matching via deferred
// acceptance (Gale–Shapley) over a registry of suitors and reviewers.
//
// What:
//
//   - Registry owns two ordered agent collections (suitors, reviewers), each
//     agent holding a strict ranked preference list over the opposite side.
//   - Solve runs proposal/rejection rounds on private working copies until
//     every agent is paired, then commits partners back to the registry.
//   - Result exports the pairing as a Matching: every agent identity mapped
//     to a one-element slice naming its partner.
//   - WithInvert swaps which side plays the proposing role; stored preference
//     lists are never altered.
//
// Why:
//
//   - Assignment problems: residents↔hospitals, students↔schools, tasks↔workers.
//   - The produced pairing is stable: no suitor–reviewer pair would both
//     prefer each other over their assigned partners.
//   - With suitors proposing, every suitor receives its best partner across
//     all stable matchings (suitor-optimality).
//
// Complexity:
//
//   - Solve:    O(n²) proposal attempts for n agents per side, Memory: O(n²)
//     (working copies of both sides plus per-target rank indices).
//   - Complete: O(n² log n) (per-agent sorted comparison against the opposite side).
//   - Result:   O(n).
//
// Options:
//
//   - WithInvert: reviewers propose instead of suitors (reviewer-optimal result).
//
// Errors:
//
//   - ErrNegativeCount: registry built from a negative agent count.
//   - ErrNilPreferences: bulk construction given a nil preference mapping.
//   - ErrUnknownAgent: a name does not resolve to an agent on the required side.
//   - ErrSizeMismatch: suitor and reviewer counts differ.
//   - ErrPreferencesUnset: an agent's preference list was never populated.
//   - ErrIncompletePreferences: a preference list is not a permutation of the
//     full opposite side.
//   - ErrUnsolved: partner mapping requested before every agent is paired.
package matching
