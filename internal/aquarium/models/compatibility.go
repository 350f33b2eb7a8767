package models

import (
	"fmt"

	dErrors "aquaria/pkg/domain-errors"
)

// Compatible reports whether two inhabitants may share a tank. Each side's
// rules are evaluated, so the outcome does not depend on argument order.
func Compatible(a, b *Inhabitant) bool {
	return !rejects(a, b) && !rejects(b, a)
}

// rejects applies the rules owned by a's kind against b.
func rejects(a, b *Inhabitant) bool {
	switch a.Kind {
	case KindFish:
		if a.Traits.SnailEater && b.Kind == KindSnail {
			return true
		}
		// A smaller peaceful group is unsafe around a larger aggressive one.
		if a.Traits.AggressiveEater && b.Kind == KindFish && !b.Traits.AggressiveEater && b.Count < a.Count {
			return true
		}
		return false
	default:
		// Snails carry SnailEater for storage only; no other kind rejects.
		return false
	}
}

// CheckCompatibility tests candidate against every member and reports the
// first failing pair. A member with the candidate's ID is skipped.
func CheckCompatibility(candidate *Inhabitant, members []*Inhabitant) error {
	for _, m := range members {
		if m == nil || m.ID == candidate.ID {
			continue
		}
		if !Compatible(candidate, m) {
			return dErrors.New(dErrors.CodeConflict, fmt.Sprintf(
				"%s %q is not compatible with %s %q",
				candidate.Kind, candidate.DisplayName(), m.Kind, m.DisplayName()))
		}
	}
	return nil
}
