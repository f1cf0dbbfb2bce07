// Package matching defines core types, solve options, and sentinel errors
// for the matching subpackage of github.com/katalvlaran/stablematch.
package matching

import (
	"errors"
)

// Sentinel errors returned by registry construction, validation, and solving.
var (
	// ErrNegativeCount indicates NewRegistry was given a negative agent count.
	ErrNegativeCount = errors.New("matching: agent count must be non-negative")

	// ErrNilPreferences indicates bulk construction received a nil mapping
	// for one or both sides.
	ErrNilPreferences = errors.New("matching: preference mapping must not be nil")

	// ErrUnknownAgent indicates a name did not resolve to any agent on the
	// side it was expected on.
	ErrUnknownAgent = errors.New("matching: agent not found")

	// ErrSizeMismatch indicates the suitor and reviewer collections differ
	// in length; deferred acceptance requires equal sides.
	ErrSizeMismatch = errors.New("matching: suitor and reviewer counts differ")

	// ErrPreferencesUnset indicates an agent's preference list was never
	// populated (or was invalidated by registry growth and not repopulated).
	ErrPreferencesUnset = errors.New("matching: preference list not populated")

	// ErrIncompletePreferences indicates a preference list is not a
	// permutation of the full opposite side (duplicate, missing, or unknown entry).
	ErrIncompletePreferences = errors.New("matching: preference list must rank every opposite-side agent exactly once")

	// ErrUnsolved indicates the partner mapping was requested before every
	// agent on both sides had an assigned partner.
	ErrUnsolved = errors.New("matching: registry has not been solved yet")
)

// Role identifies which side of the market an agent belongs to.
type Role int

const (
	// RoleSuitor marks an agent on the proposing side (in non-inverted mode).
	RoleSuitor Role = iota

	// RoleReviewer marks an agent on the reviewing side.
	RoleReviewer
)

// String returns "suitor" or "reviewer".
func (r Role) String() string {
	if r == RoleSuitor {
		return "suitor"
	}

	return "reviewer"
}

// AgentID is the explicit identity of an agent: role plus name.
// It is comparable and usable as a map key, and is unique across both sides
// of a registry whose per-side names are unique.
type AgentID struct {
	Role Role
	Name string
}

// String renders the identity as "<role>:<name>", e.g. "suitor:J".
func (id AgentID) String() string {
	return id.Role.String() + ":" + id.Name
}

// Preferences maps an agent name to its ordered preference list over the
// opposite side's names, ranked strictly best-to-worst. Used by
// NewRegistryFromPreferences, one mapping per side.
type Preferences map[string][]string

// Matching is the solve output: every agent identity on both sides mapped to
// a one-element slice holding its partner's identity.
type Matching map[AgentID][]AgentID

// Agent represents one suitor or one reviewer. Agents are created by a
// Registry and live for its lifetime; partner is mutated only by Solve's
// commit step.
type Agent struct {
	name     string
	role     Role
	prefs    []string // ordered opposite-side names, best first
	prefsSet bool     // distinguishes "never populated" from "populated as empty"
	partner  *Agent
}

// Name returns the agent's name, unique within its side.
func (a *Agent) Name() string { return a.name }

// Role returns the agent's fixed role.
func (a *Agent) Role() Role { return a.role }

// ID returns the agent's explicit identity (role + name).
func (a *Agent) ID() AgentID { return AgentID{Role: a.role, Name: a.name} }

// Preferences returns a copy of the agent's preference list, or nil when the
// list has never been populated (see ErrPreferencesUnset).
func (a *Agent) Preferences() []string {
	if !a.prefsSet {
		return nil
	}

	return append([]string(nil), a.prefs...)
}

// Partner returns the currently assigned opposite-side agent, and whether one
// is assigned.
func (a *Agent) Partner() (*Agent, bool) {
	return a.partner, a.partner != nil
}

// SolveOptions configures the behavior of Solve.
//
// Invert – if true, reviewers play the proposing role and the result is
// reviewer-optimal. Stored preference lists are unaffected either way.
type SolveOptions struct {
	Invert bool
}

// SolveOption represents a functional option for configuring Solve.
type SolveOption func(*SolveOptions)

// WithInvert makes reviewers the proposing side for this solve.
func WithInvert() SolveOption {
	return func(o *SolveOptions) {
		o.Invert = true
	}
}

// DefaultSolveOptions returns a SolveOptions with default settings:
// Invert=false (suitors propose; suitor-optimal result).
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Invert: false,
	}
}
