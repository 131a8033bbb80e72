//go:build unit || e2e

package builder

import (
	"time"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/pkg/money"

	"github.com/google/uuid"
)

type AgreementBuilder struct {
	ID                 uuid.UUID
	BookingID          uuid.UUID
	Terms              string
	Deliverables       []agreement.Deliverable
	PaymentSchedule    []agreement.PaymentMilestone
	CancellationPolicy string
	OrganizerSignature *agreement.Signature
	VendorSignature    *agreement.Signature
	SignedAt           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func NewAgreementBuilder() *AgreementBuilder {
	now := time.Date(2030, 1, 12, 9, 0, 0, 0, time.UTC)
	return &AgreementBuilder{
		ID:        uuid.New(),
		BookingID: uuid.New(),
		Terms:     "Vendor provides catering for the event.",
		Deliverables: []agreement.Deliverable{
			{ID: uuid.New(), Title: "Menu tasting", DueDate: time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC), Status: agreement.DeliverablePending},
			{ID: uuid.New(), Title: "Event service", DueDate: time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), Status: agreement.DeliverablePending},
		},
		PaymentSchedule: []agreement.PaymentMilestone{
			{ID: uuid.New(), Title: "Deposit", Amount: money.FromCents(300000), DueDate: time.Date(2030, 2, 1, 0, 0, 0, 0, time.UTC), Status: agreement.MilestonePending},
			{ID: uuid.New(), Title: "Final payment", Amount: money.FromCents(300000), DueDate: time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), Status: agreement.MilestonePending},
		},
		CancellationPolicy: "Deposit is non-refundable.",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (b *AgreementBuilder) With(mutate func(*AgreementBuilder)) *AgreementBuilder {
	mutate(b)
	return b
}

func (b *AgreementBuilder) WithBookingID(id uuid.UUID) *AgreementBuilder {
	b.BookingID = id
	return b
}

func (b *AgreementBuilder) SignedBy(t agreement.SignatureType, at time.Time) *AgreementBuilder {
	sig := &agreement.Signature{Token: "sig-" + string(t), SignedAt: at}
	if t == agreement.SignatureOrganizer {
		b.OrganizerSignature = sig
	} else {
		b.VendorSignature = sig
	}
	if b.OrganizerSignature != nil && b.VendorSignature != nil {
		b.SignedAt = &at
	}
	return b
}

func (b *AgreementBuilder) BuildDomain() *agreement.ServiceAgreement {
	return agreement.Reconstruct(agreement.ReconstructParams{
		ID:                 b.ID,
		BookingID:          b.BookingID,
		Terms:              b.Terms,
		Deliverables:       append([]agreement.Deliverable(nil), b.Deliverables...),
		PaymentSchedule:    append([]agreement.PaymentMilestone(nil), b.PaymentSchedule...),
		CancellationPolicy: b.CancellationPolicy,
		OrganizerSignature: b.OrganizerSignature,
		VendorSignature:    b.VendorSignature,
		SignedAt:           b.SignedAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	})
}
