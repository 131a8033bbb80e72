package booking

import "event-marketplace/internal/pkg/errs"

var transitions = map[Status][]Status{
	StatusPending:         {StatusVendorReviewing, StatusCancelled},
	StatusVendorReviewing: {StatusQuoteSent, StatusCancelled},
	StatusQuoteSent:       {StatusQuoteAccepted, StatusCancelled},
	StatusQuoteAccepted:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed:       {StatusInProgress, StatusCancelled},
	StatusInProgress:      {StatusCompleted, StatusDisputed},
	StatusCompleted:       {StatusDisputed},
	StatusDisputed:        {StatusCompleted, StatusCancelled},
	StatusCancelled:       {},
}

// targets that only one side may request
var requiredRole = map[Status]Role{
	StatusVendorReviewing: RoleVendor,
	StatusQuoteSent:       RoleVendor,
	StatusQuoteAccepted:   RoleOrganizer,
}

// AllowedTransitions returns a copy of the outgoing edges of from.
func AllowedTransitions(from Status) []Status {
	out := make([]Status, len(transitions[from]))
	copy(out, transitions[from])
	return out
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition checks the edge first, then the role gate of the target.
func ValidateTransition(from, to Status, role Role) error {
	if !role.IsParty() {
		return ErrNotParty
	}
	if !CanTransition(from, to) {
		return errs.Wrapf(ErrTransitionNotAllowed, "%s -> %s (allowed from %s: %v)", from, to, from, AllowedTransitions(from))
	}
	if need, ok := requiredRole[to]; ok && need != role {
		return errs.Wrapf(ErrTransitionRole, "%s requires %s, actor is %s", to, need, role)
	}
	return nil
}
