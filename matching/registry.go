package matching

import (
	"fmt"
	"sort"
	"strconv"
)

// Method tags used in wrapped error messages (no magic strings).
const (
	methodNewRegistry     = "NewRegistry"
	methodFromPreferences = "NewRegistryFromPreferences"
	methodSetPreferences  = "SetPreferences"
	methodComplete        = "Complete"
	methodSolved          = "Solved"
)

// Registry owns the two ordered agent collections of one matching instance.
// Populate it directly via AddSuitor/AddReviewer + SetXxxPreferences, or in
// bulk via NewRegistryFromPreferences; then hand it to Solve.
//
// The zero value is a valid empty registry.
type Registry struct {
	suitors   []*Agent
	reviewers []*Agent
}

// NewRegistry creates a registry with n suitors and n reviewers, named by
// their positional index on each side ("0".."n-1"), all preference lists left
// unset. The caller must populate preferences before solving.
// Returns ErrNegativeCount if n < 0.
// Complexity: O(n²) time (each addition resets the opposite side), O(n) memory.
func NewRegistry(n int) (*Registry, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNewRegistry, n, ErrNegativeCount)
	}

	reg := &Registry{}
	for i := 0; i < n; i++ {
		reg.AddSuitor("")
		reg.AddReviewer("")
	}

	return reg, nil
}

// NewRegistryFromPreferences creates a fully populated registry from two
// preference mappings: suitor-name → ordered reviewer-names, and
// reviewer-name → ordered suitor-names. Agents are created in sorted-name
// order on each side, so a fixed input yields a fixed registry layout.
//
// Returns ErrNilPreferences if either mapping is nil, and ErrUnknownAgent if
// any preference entry names an agent absent from the opposite mapping.
// Nothing is partially built on failure.
// Complexity: O(n² + n log n) time, O(n²) memory (stored preference copies).
func NewRegistryFromPreferences(suitors, reviewers Preferences) (*Registry, error) {
	if suitors == nil || reviewers == nil {
		return nil, fmt.Errorf("%s: %w", methodFromPreferences, ErrNilPreferences)
	}

	reg := &Registry{}
	for _, name := range sortedKeys(suitors) {
		reg.AddSuitor(name)
	}
	for _, name := range sortedKeys(reviewers) {
		reg.AddReviewer(name)
	}

	// Assign lists after both sides exist, so no addition invalidates them.
	for _, name := range sortedKeys(suitors) {
		if err := reg.SetSuitorPreferences(name, suitors[name]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromPreferences, err)
		}
	}
	for _, name := range sortedKeys(reviewers) {
		if err := reg.SetReviewerPreferences(name, reviewers[name]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromPreferences, err)
		}
	}

	return reg, nil
}

// AddSuitor creates a new suitor and appends it to the suitor collection.
// An empty name assigns the next positional index on the suitor side.
// Side effect: every reviewer's preference list is reset to unset, because
// the set of valid preference targets just changed.
// Name collisions are not checked. Always succeeds.
func (reg *Registry) AddSuitor(name string) *Agent {
	if name == "" {
		name = strconv.Itoa(len(reg.suitors))
	}
	a := &Agent{name: name, role: RoleSuitor}
	reg.suitors = append(reg.suitors, a)
	invalidatePreferences(reg.reviewers)

	return a
}

// AddReviewer creates a new reviewer and appends it to the reviewer
// collection. An empty name assigns the next positional index on the reviewer
// side. Side effect: every suitor's preference list is reset to unset.
// Name collisions are not checked. Always succeeds.
func (reg *Registry) AddReviewer(name string) *Agent {
	if name == "" {
		name = strconv.Itoa(len(reg.reviewers))
	}
	a := &Agent{name: name, role: RoleReviewer}
	reg.reviewers = append(reg.reviewers, a)
	invalidatePreferences(reg.suitors)

	return a
}

// SetSuitorPreferences assigns the named suitor's preference list, stored as
// a copy. Every entry must name an existing reviewer; duplicates and
// omissions are tolerated here and caught by Complete.
// Returns ErrUnknownAgent when the suitor or any listed reviewer is missing.
func (reg *Registry) SetSuitorPreferences(name string, prefs []string) error {
	return setPreferences(reg.suitors, reg.reviewers, name, prefs)
}

// SetReviewerPreferences assigns the named reviewer's preference list, stored
// as a copy. Every entry must name an existing suitor.
// Returns ErrUnknownAgent when the reviewer or any listed suitor is missing.
func (reg *Registry) SetReviewerPreferences(name string, prefs []string) error {
	return setPreferences(reg.reviewers, reg.suitors, name, prefs)
}

// Suitors returns the ordered suitor collection as a copied slice.
// The agents themselves are shared; treat them as read-only.
func (reg *Registry) Suitors() []*Agent {
	return append([]*Agent(nil), reg.suitors...)
}

// Reviewers returns the ordered reviewer collection as a copied slice.
func (reg *Registry) Reviewers() []*Agent {
	return append([]*Agent(nil), reg.reviewers...)
}

// Complete reports whether the registry is ready for solving:
// equal side sizes, and every agent's preference list a permutation of the
// full opposite side. An empty registry is vacuously complete.
//
// Returns ErrSizeMismatch, ErrPreferencesUnset, or ErrIncompletePreferences;
// nil otherwise. Checked at the start of every Solve.
// Complexity: O(n² log n) time, O(n) memory.
func (reg *Registry) Complete() error {
	if len(reg.suitors) != len(reg.reviewers) {
		return fmt.Errorf("%s: %d suitors vs %d reviewers: %w",
			methodComplete, len(reg.suitors), len(reg.reviewers), ErrSizeMismatch)
	}
	if err := sideComplete(reg.suitors, reg.reviewers); err != nil {
		return err
	}

	return sideComplete(reg.reviewers, reg.suitors)
}

// Solved reports whether every agent on both sides currently has a partner.
// Returns ErrUnsolved naming the first unpartnered agent; nil otherwise.
// An empty registry is vacuously solved.
func (reg *Registry) Solved() error {
	for _, side := range [][]*Agent{reg.suitors, reg.reviewers} {
		for _, a := range side {
			if a.partner == nil {
				return fmt.Errorf("%s: %s has no partner: %w", methodSolved, a.ID(), ErrUnsolved)
			}
		}
	}

	return nil
}

// Result exports the current pairing: every agent identity on both sides
// mapped to a one-element slice holding its partner's identity. This mapping
// is the sole hand-off surface for graph/visualization consumers.
// Fails fast with ErrUnsolved if any agent lacks a partner; it never returns
// partial data and never solves on the caller's behalf.
// Complexity: O(n) time and memory.
func (reg *Registry) Result() (Matching, error) {
	if err := reg.Solved(); err != nil {
		return nil, err
	}

	m := make(Matching, len(reg.suitors)+len(reg.reviewers))
	for _, side := range [][]*Agent{reg.suitors, reg.reviewers} {
		for _, a := range side {
			m[a.ID()] = []AgentID{a.partner.ID()}
		}
	}

	return m, nil
}

// setPreferences resolves the named agent on side, validates every listed
// name against opposite, and stores a copied list.
func setPreferences(side, opposite []*Agent, name string, prefs []string) error {
	a := findAgent(side, name)
	if a == nil {
		return fmt.Errorf("%s: %q: %w", methodSetPreferences, name, ErrUnknownAgent)
	}
	for _, target := range prefs {
		if findAgent(opposite, target) == nil {
			return fmt.Errorf("%s: %q lists %q: %w", methodSetPreferences, name, target, ErrUnknownAgent)
		}
	}
	a.prefs = append([]string(nil), prefs...)
	a.prefsSet = true

	return nil
}

// invalidatePreferences resets every agent on side to the unset state,
// pending explicit repopulation.
func invalidatePreferences(side []*Agent) {
	for _, a := range side {
		a.prefs = nil
		a.prefsSet = false
	}
}

// findAgent returns the first agent on side with the given name, or nil.
// First-found in collection order, consistent with duplicate-name tolerance.
func findAgent(side []*Agent, name string) *Agent {
	for _, a := range side {
		if a.name == name {
			return a
		}
	}

	return nil
}

// sideComplete verifies each agent on side holds a populated list that,
// sorted, equals the full sorted opposite side.
func sideComplete(side, opposite []*Agent) error {
	want := sortedNames(opposite)
	for _, a := range side {
		if !a.prefsSet {
			return fmt.Errorf("%s: %s: %w", methodComplete, a.ID(), ErrPreferencesUnset)
		}
		got := append([]string(nil), a.prefs...)
		sort.Strings(got)
		if !equalStrings(got, want) {
			return fmt.Errorf("%s: %s: %w", methodComplete, a.ID(), ErrIncompletePreferences)
		}
	}

	return nil
}

// sortedNames returns the names of side in ascending order.
func sortedNames(side []*Agent) []string {
	names := make([]string, len(side))
	for i, a := range side {
		names[i] = a.name
	}
	sort.Strings(names)

	return names
}

// sortedKeys returns the keys of p in ascending order.
func sortedKeys(p Preferences) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// equalStrings reports element-wise equality of two string slices.
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
