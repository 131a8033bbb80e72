package booking

import "github.com/google/uuid"

// Parties identifies the two users that may act on a booking.
type Parties struct {
	OrganizerID  uuid.UUID
	VendorUserID uuid.UUID
}

// ResolveActorRole is the only place where an actor's side of a booking is derived.
// When one user is on both sides, the organizer role wins.
func ResolveActorRole(p Parties, actorID uuid.UUID) Role {
	if actorID == uuid.Nil {
		return RoleNone
	}
	switch actorID {
	case p.OrganizerID:
		return RoleOrganizer
	case p.VendorUserID:
		return RoleVendor
	default:
		return RoleNone
	}
}
