//go:build unit

package agreement_test

import (
	"testing"
	"time"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/pkg/money"
	"event-marketplace/internal/pkg/ptr"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	due = time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
)

func sampleContent() agreement.Content {
	return agreement.Content{
		Terms: "Vendor provides dinner service.",
		Deliverables: []agreement.DeliverableDraft{
			{Title: "Menu", Description: "Final menu", DueDate: due},
			{Title: "Service", DueDate: due.AddDate(0, 0, 10)},
		},
		PaymentSchedule: []agreement.MilestoneDraft{
			{Title: "Deposit", Amount: money.FromCents(50000), DueDate: due},
			{Title: "Final Payment", Amount: money.FromCents(50000), DueDate: due.AddDate(0, 0, 10)},
		},
		CancellationPolicy: "Full refund up to 30 days before the event.",
	}
}

func newAgreement(t *testing.T) *agreement.ServiceAgreement {
	t.Helper()
	a, err := agreement.New(uuid.New(), sampleContent(), now)
	require.NoError(t, err)
	return a
}

func TestNew(t *testing.T) {
	a := newAgreement(t)

	require.Len(t, a.Deliverables(), 2)
	require.Len(t, a.PaymentSchedule(), 2)
	seen := map[uuid.UUID]bool{}
	for _, d := range a.Deliverables() {
		assert.Equal(t, agreement.DeliverablePending, d.Status)
		assert.NotEqual(t, uuid.Nil, d.ID)
		assert.False(t, seen[d.ID], "ids must be unique")
		seen[d.ID] = true
	}
	for _, m := range a.PaymentSchedule() {
		assert.Equal(t, agreement.MilestonePending, m.Status)
		assert.Nil(t, m.PaidAt)
	}
	assert.Nil(t, a.SignedAt())
	assert.False(t, a.IsFullySigned())
}

func TestNew_InvalidItems(t *testing.T) {
	c := sampleContent()
	c.Deliverables[0].Title = "  "
	_, err := agreement.New(uuid.New(), c, now)
	assert.True(t, errs.Is(err, agreement.ErrItemTitleRequired))

	c = sampleContent()
	c.PaymentSchedule[1].DueDate = time.Time{}
	_, err = agreement.New(uuid.New(), c, now)
	assert.True(t, errs.Is(err, agreement.ErrItemDueDateRequired))

	c = sampleContent()
	c.PaymentSchedule[0].Amount = money.FromCents(-1)
	_, err = agreement.New(uuid.New(), c, now)
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestSign(t *testing.T) {
	orders := map[string][]agreement.SignatureType{
		"organizer first": {agreement.SignatureOrganizer, agreement.SignatureVendor},
		"vendor first":    {agreement.SignatureVendor, agreement.SignatureOrganizer},
	}
	for name, order := range orders {
		t.Run(name, func(t *testing.T) {
			a := newAgreement(t)

			complete, err := a.Sign(order[0], "sig-1", map[string]string{"ip": "10.0.0.1"}, now)
			require.NoError(t, err)
			assert.False(t, complete)
			assert.Nil(t, a.SignedAt())

			later := now.Add(time.Hour)
			complete, err = a.Sign(order[1], "sig-2", nil, later)
			require.NoError(t, err)
			assert.True(t, complete)
			require.NotNil(t, a.SignedAt())
			assert.Equal(t, later, *a.SignedAt())

			_, err = a.Sign(order[0], "sig-3", nil, later)
			assert.True(t, errs.Is(err, errs.ErrAlreadySigned))
		})
	}

	t.Run("same party cannot sign twice", func(t *testing.T) {
		a := newAgreement(t)
		_, err := a.Sign(agreement.SignatureVendor, "sig", nil, now)
		require.NoError(t, err)

		_, err = a.Sign(agreement.SignatureVendor, "sig-again", nil, now)
		require.Error(t, err)
		assert.True(t, errs.Is(err, agreement.ErrPartyAlreadySigned))
		assert.Equal(t, "sig", a.VendorSignature().Token)
	})

	t.Run("blank signature", func(t *testing.T) {
		a := newAgreement(t)
		_, err := a.Sign(agreement.SignatureVendor, " ", nil, now)
		assert.True(t, errs.Is(err, errs.ErrValidation))
		assert.Nil(t, a.VendorSignature())
	})

	t.Run("metadata is copied", func(t *testing.T) {
		a := newAgreement(t)
		meta := map[string]string{"ip": "10.0.0.1"}
		_, err := a.Sign(agreement.SignatureOrganizer, "sig", meta, now)
		require.NoError(t, err)
		meta["ip"] = "changed"
		assert.Equal(t, "10.0.0.1", a.OrganizerSignature().Metadata["ip"])
	})
}

func TestUpdate(t *testing.T) {
	t.Run("replaces lists with fresh ids", func(t *testing.T) {
		a := newAgreement(t)
		oldID := a.Deliverables()[0].ID
		require.NoError(t, a.SetDeliverableStatus(oldID, agreement.DeliverableCompleted, now))

		drafts := []agreement.DeliverableDraft{{Title: "Menu", Description: "Final menu", DueDate: due}}
		later := now.Add(time.Minute)
		err := a.Update(agreement.ContentPatch{Deliverables: &drafts, Terms: ptr.Of("New terms")}, later)
		require.NoError(t, err)

		require.Len(t, a.Deliverables(), 1)
		assert.NotEqual(t, oldID, a.Deliverables()[0].ID)
		assert.Equal(t, agreement.DeliverablePending, a.Deliverables()[0].Status)
		assert.Nil(t, a.Deliverables()[0].CompletedAt)
		assert.Equal(t, "New terms", a.Terms())
		assert.Len(t, a.PaymentSchedule(), 2, "untouched list is kept")
		assert.Equal(t, later, a.UpdatedAt())
	})

	t.Run("empty list clears", func(t *testing.T) {
		a := newAgreement(t)
		empty := []agreement.MilestoneDraft{}
		require.NoError(t, a.Update(agreement.ContentPatch{PaymentSchedule: &empty}, now))
		assert.Empty(t, a.PaymentSchedule())
	})

	t.Run("rejected once signed", func(t *testing.T) {
		a := newAgreement(t)
		_, err := a.Sign(agreement.SignatureOrganizer, "a", nil, now)
		require.NoError(t, err)
		_, err = a.Sign(agreement.SignatureVendor, "b", nil, now)
		require.NoError(t, err)

		before := a.Terms()
		err = a.Update(agreement.ContentPatch{Terms: ptr.Of("changed")}, now)
		assert.True(t, errs.Is(err, errs.ErrAlreadySigned))
		assert.Equal(t, before, a.Terms())
	})

	t.Run("empty patch", func(t *testing.T) {
		a := newAgreement(t)
		assert.True(t, errs.Is(a.Update(agreement.ContentPatch{}, now), errs.ErrValidation))
	})

	t.Run("invalid replacement leaves agreement unchanged", func(t *testing.T) {
		a := newAgreement(t)
		before := a.Deliverables()
		drafts := []agreement.DeliverableDraft{{Title: "", DueDate: due}}
		err := a.Update(agreement.ContentPatch{Deliverables: &drafts, Terms: ptr.Of("x")}, now)
		require.Error(t, err)
		if diff := cmp.Diff(before, a.Deliverables(), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("deliverables changed (-want +got):\n%s", diff)
		}
		assert.Equal(t, "Vendor provides dinner service.", a.Terms())
	})
}

func TestSetDeliverableStatus(t *testing.T) {
	a := newAgreement(t)
	id := a.Deliverables()[0].ID

	require.NoError(t, a.SetDeliverableStatus(id, agreement.DeliverableInProgress, now))
	assert.Nil(t, a.Deliverables()[0].CompletedAt)

	completedAt := now.Add(time.Hour)
	require.NoError(t, a.SetDeliverableStatus(id, agreement.DeliverableCompleted, completedAt))
	require.NotNil(t, a.Deliverables()[0].CompletedAt)
	assert.Equal(t, completedAt, *a.Deliverables()[0].CompletedAt)

	// reverting keeps the stamp from the prior write
	require.NoError(t, a.SetDeliverableStatus(id, agreement.DeliverablePending, now.Add(2*time.Hour)))
	assert.Equal(t, agreement.DeliverablePending, a.Deliverables()[0].Status)
	require.NotNil(t, a.Deliverables()[0].CompletedAt)
	assert.Equal(t, completedAt, *a.Deliverables()[0].CompletedAt)

	// any status is accepted, there is no transition table
	require.NoError(t, a.SetDeliverableStatus(id, agreement.DeliverableOverdue, now))

	err := a.SetDeliverableStatus(uuid.New(), agreement.DeliverableCompleted, now)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestSetMilestoneStatus(t *testing.T) {
	a := newAgreement(t)
	id := a.PaymentSchedule()[1].ID

	paidAt := now.Add(time.Hour)
	require.NoError(t, a.SetMilestoneStatus(id, agreement.MilestonePaid, paidAt))
	assert.Equal(t, paidAt, *a.PaymentSchedule()[1].PaidAt)
	assert.Nil(t, a.PaymentSchedule()[0].PaidAt)

	require.NoError(t, a.SetMilestoneStatus(id, agreement.MilestonePaid, paidAt.Add(time.Hour)))
	assert.Equal(t, paidAt, *a.PaymentSchedule()[1].PaidAt, "re-marking as paid keeps the first stamp")

	err := a.SetMilestoneStatus(uuid.New(), agreement.MilestonePaid, now)
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestParseEnums(t *testing.T) {
	s, err := agreement.ParseDeliverableStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, agreement.DeliverableInProgress, s)
	_, err = agreement.ParseDeliverableStatus("PAID")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	m, err := agreement.ParseMilestoneStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, agreement.MilestonePaid, m)
	_, err = agreement.ParseMilestoneStatus("COMPLETED")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	st, err := agreement.ParseSignatureType("vendor")
	require.NoError(t, err)
	assert.Equal(t, agreement.SignatureVendor, st)
	_, err = agreement.ParseSignatureType("WITNESS")
	assert.True(t, errs.Is(err, errs.ErrValidation))
}
