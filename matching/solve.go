package matching

// Solve — deferred acceptance (Gale–Shapley)
//
// Description:
//
//	Solve runs proposal/rejection rounds until every agent on both sides is
//	paired, then commits the pairing back onto the registry and returns it.
//	The produced matching is stable: no suitor–reviewer pair would both
//	prefer each other over their assigned partners. With suitors proposing
//	(the default), the result is suitor-optimal.
//
// Algorithm Outline:
//  1. Validate the registry with Complete.
//  2. Deep-copy both sides; every copied agent starts unassigned. WithInvert
//     swaps which copied side proposes; stored preference lists are untouched.
//  3. While some proposer is unassigned:
//     – take the first unassigned proposer in collection order;
//     – it proposes to the head of its remaining preference list;
//     – a free target accepts; a held target trades up by its own ranking
//     (the bumped agent rejoins the pool) or rejects, in which case the
//     proposer strikes that target from its remaining list for good.
//  4. Commit partners from the working copies back onto the original agents
//     by positional correspondence, each side to itself, so a solve in
//     progress never exposes partial mutation.
//  5. Return Result().
//
// Termination:
//
//	Every proposal either pairs two agents or permanently shrinks a
//	proposer's remaining list, so the loop runs at most n² times. With equal,
//	complete sides no proposer ever exhausts its list.
//
// Complexity:
//
//	Time   = O(n²) proposal attempts
//	Memory = O(n²) (working copies plus per-target rank indices)
//
// Errors:
//   - ErrSizeMismatch, ErrPreferencesUnset, ErrIncompletePreferences — the
//     registry failed the completeness check; nothing is mutated.
//
// Repeated calls on an unchanged registry return the same mapping: the loop
// is deterministic and the working copies always start unassigned.
func (reg *Registry) Solve(opts ...SolveOption) (Matching, error) {
	if err := reg.Complete(); err != nil {
		return nil, err
	}

	o := DefaultSolveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Private working copies; the registry stays untouched until commit.
	suitors := cloneSide(reg.suitors)
	reviewers := cloneSide(reg.reviewers)

	proposers, targets := suitors, reviewers
	if o.Invert {
		proposers, targets = reviewers, suitors
	}

	deferredAcceptance(proposers, targets)

	// Positional commit-back: copies preserve original ordering, so index i
	// on a copied side corresponds to index i on the original side.
	commitPartners(reg.suitors, suitors, reg.reviewers, reviewers)
	commitPartners(reg.reviewers, reviewers, reg.suitors, suitors)

	return reg.Result()
}

// deferredAcceptance pairs every proposer with a target. Proposers mutate
// only their own remaining lists; targets never become unassigned once paired
// except by trading up.
func deferredAcceptance(proposers, targets []*Agent) {
	// Resolve target names once; first occurrence wins on duplicates.
	byName := make(map[string]*Agent, len(targets))
	for _, t := range targets {
		if _, ok := byName[t.name]; !ok {
			byName[t.name] = t
		}
	}

	// Precompute each target's ranking of proposer names (lower = better).
	rank := make(map[*Agent]map[string]int, len(targets))
	for _, t := range targets {
		r := make(map[string]int, len(t.prefs))
		for i, name := range t.prefs {
			if _, ok := r[name]; !ok {
				r[name] = i
			}
		}
		rank[t] = r
	}

	for {
		// First unassigned proposer in collection order. The selection rule
		// is internal bookkeeping only: stability and proposer-optimality
		// hold for any order.
		var p *Agent
		for _, c := range proposers {
			if c.partner == nil {
				p = c
				break
			}
		}
		if p == nil {
			return
		}

		t := byName[p.prefs[0]]
		switch {
		case t.partner == nil:
			// Free target accepts outright.
			p.partner, t.partner = t, p
		case rank[t][p.name] < rank[t][t.partner.name]:
			// Target trades up; the bumped agent rejoins the pool.
			t.partner.partner = nil
			p.partner, t.partner = t, p
		default:
			// Rejected: strike this target permanently.
			p.prefs = p.prefs[1:]
		}
	}
}

// cloneSide deep-copies a collection, preserving order, with every copy
// unassigned and holding its own preference list.
func cloneSide(side []*Agent) []*Agent {
	copies := make([]*Agent, len(side))
	for i, a := range side {
		copies[i] = &Agent{
			name:     a.name,
			role:     a.role,
			prefs:    append([]string(nil), a.prefs...),
			prefsSet: a.prefsSet,
		}
	}

	return copies
}

// commitPartners writes each copy's partner back onto the original at the
// same position, translating the partner copy to its original via the
// opposite side's positional correspondence.
func commitPartners(originals, copies, oppositeOriginals, oppositeCopies []*Agent) {
	pos := make(map[*Agent]int, len(oppositeCopies))
	for i, c := range oppositeCopies {
		pos[c] = i
	}
	for i, c := range copies {
		originals[i].partner = oppositeOriginals[pos[c.partner]]
	}
}
