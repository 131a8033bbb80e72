//go:build unit

package booking_test

import (
	"testing"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// role that is allowed to request the target, organizer when either side may
func roleFor(to booking.Status) booking.Role {
	switch to {
	case booking.StatusVendorReviewing, booking.StatusQuoteSent:
		return booking.RoleVendor
	default:
		return booking.RoleOrganizer
	}
}

func TestValidateTransition_FullGrid(t *testing.T) {
	listed := map[booking.Status][]booking.Status{
		booking.StatusPending:         {booking.StatusVendorReviewing, booking.StatusCancelled},
		booking.StatusVendorReviewing: {booking.StatusQuoteSent, booking.StatusCancelled},
		booking.StatusQuoteSent:       {booking.StatusQuoteAccepted, booking.StatusCancelled},
		booking.StatusQuoteAccepted:   {booking.StatusConfirmed, booking.StatusCancelled},
		booking.StatusConfirmed:       {booking.StatusInProgress, booking.StatusCancelled},
		booking.StatusInProgress:      {booking.StatusCompleted, booking.StatusDisputed},
		booking.StatusCompleted:       {booking.StatusDisputed},
		booking.StatusDisputed:        {booking.StatusCompleted, booking.StatusCancelled},
		booking.StatusCancelled:       {},
	}

	for _, from := range booking.AllStatuses {
		for _, to := range booking.AllStatuses {
			allowed := false
			for _, s := range listed[from] {
				if s == to {
					allowed = true
				}
			}
			err := booking.ValidateTransition(from, to, roleFor(to))
			if allowed {
				assert.NoError(t, err, "%s -> %s should be allowed", from, to)
			} else {
				require.Error(t, err, "%s -> %s should be rejected", from, to)
				assert.True(t, errs.Is(err, errs.ErrInvalidTransition), "%s -> %s: %v", from, to, err)
			}
		}
	}
}

func TestValidateTransition_RoleGates(t *testing.T) {
	testCases := []struct {
		name  string
		from  booking.Status
		to    booking.Status
		role  booking.Role
		errIs error
	}{
		{name: "vendor reviews", from: booking.StatusPending, to: booking.StatusVendorReviewing, role: booking.RoleVendor},
		{name: "organizer cannot start review", from: booking.StatusPending, to: booking.StatusVendorReviewing, role: booking.RoleOrganizer, errIs: errs.ErrRoleNotPermitted},
		{name: "organizer cannot send quote", from: booking.StatusVendorReviewing, to: booking.StatusQuoteSent, role: booking.RoleOrganizer, errIs: errs.ErrRoleNotPermitted},
		{name: "vendor cannot accept quote", from: booking.StatusQuoteSent, to: booking.StatusQuoteAccepted, role: booking.RoleVendor, errIs: errs.ErrRoleNotPermitted},
		{name: "organizer accepts quote", from: booking.StatusQuoteSent, to: booking.StatusQuoteAccepted, role: booking.RoleOrganizer},
		{name: "vendor may cancel", from: booking.StatusPending, to: booking.StatusCancelled, role: booking.RoleVendor},
		{name: "vendor may start work", from: booking.StatusConfirmed, to: booking.StatusInProgress, role: booking.RoleVendor},
		{name: "outsider is forbidden", from: booking.StatusPending, to: booking.StatusCancelled, role: booking.RoleNone, errIs: errs.ErrForbidden},
		{name: "table is checked before role", from: booking.StatusPending, to: booking.StatusQuoteAccepted, role: booking.RoleVendor, errIs: errs.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.ValidateTransition(tc.from, tc.to, tc.role)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
		})
	}
}

func TestAllowedTransitions_ReturnsCopy(t *testing.T) {
	got := booking.AllowedTransitions(booking.StatusPending)
	require.Len(t, got, 2)
	got[0] = booking.StatusCompleted

	assert.Equal(t, booking.StatusVendorReviewing, booking.AllowedTransitions(booking.StatusPending)[0])
	assert.Empty(t, booking.AllowedTransitions(booking.StatusCancelled))
}

func TestValidateTransition_NamesAllowedTargets(t *testing.T) {
	err := booking.ValidateTransition(booking.StatusPending, booking.StatusCompleted, booking.RoleOrganizer)

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	assert.Contains(t, err.Error(), "PENDING -> COMPLETED")
	assert.Contains(t, err.Error(), "[VENDOR_REVIEWING CANCELLED]")
}

func TestParseStatus(t *testing.T) {
	s, err := booking.ParseStatus(" quote_sent ")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusQuoteSent, s)

	_, err = booking.ParseStatus("ARCHIVED")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
