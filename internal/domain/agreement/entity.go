package agreement

import (
	"maps"
	"strings"
	"time"

	"event-marketplace/internal/pkg/patch"

	"github.com/google/uuid"
)

type Signature struct {
	Token    string
	SignedAt time.Time
	Metadata map[string]string
}

// Content is the negotiable part of an agreement.
type Content struct {
	Terms              string
	Deliverables       []DeliverableDraft
	PaymentSchedule    []MilestoneDraft
	CancellationPolicy string
}

// ContentPatch replaces only the non-nil fields; lists are replaced wholesale.
type ContentPatch struct {
	Terms              *string
	Deliverables       *[]DeliverableDraft
	PaymentSchedule    *[]MilestoneDraft
	CancellationPolicy *string
}

func (p ContentPatch) IsEmpty() bool {
	return p.Terms == nil && p.Deliverables == nil && p.PaymentSchedule == nil && p.CancellationPolicy == nil
}

type ServiceAgreement struct {
	id                 uuid.UUID
	bookingID          uuid.UUID
	terms              string
	deliverables       []Deliverable
	paymentSchedule    []PaymentMilestone
	cancellationPolicy string
	organizerSignature *Signature
	vendorSignature    *Signature
	signedAt           *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func New(bookingID uuid.UUID, c Content, now time.Time) (*ServiceAgreement, error) {
	deliverables, err := mintDeliverables(c.Deliverables)
	if err != nil {
		return nil, err
	}
	milestones, err := mintMilestones(c.PaymentSchedule)
	if err != nil {
		return nil, err
	}
	return &ServiceAgreement{
		id:                 uuid.New(),
		bookingID:          bookingID,
		terms:              c.Terms,
		deliverables:       deliverables,
		paymentSchedule:    milestones,
		cancellationPolicy: c.CancellationPolicy,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

type ReconstructParams struct {
	ID                 uuid.UUID
	BookingID          uuid.UUID
	Terms              string
	Deliverables       []Deliverable
	PaymentSchedule    []PaymentMilestone
	CancellationPolicy string
	OrganizerSignature *Signature
	VendorSignature    *Signature
	SignedAt           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(p ReconstructParams) *ServiceAgreement {
	return &ServiceAgreement{
		id:                 p.ID,
		bookingID:          p.BookingID,
		terms:              p.Terms,
		deliverables:       p.Deliverables,
		paymentSchedule:    p.PaymentSchedule,
		cancellationPolicy: p.CancellationPolicy,
		organizerSignature: p.OrganizerSignature,
		vendorSignature:    p.VendorSignature,
		signedAt:           p.SignedAt,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
}

func (a *ServiceAgreement) ID() uuid.UUID                       { return a.id }
func (a *ServiceAgreement) BookingID() uuid.UUID                { return a.bookingID }
func (a *ServiceAgreement) Terms() string                       { return a.terms }
func (a *ServiceAgreement) Deliverables() []Deliverable         { return a.deliverables }
func (a *ServiceAgreement) PaymentSchedule() []PaymentMilestone { return a.paymentSchedule }
func (a *ServiceAgreement) CancellationPolicy() string          { return a.cancellationPolicy }
func (a *ServiceAgreement) OrganizerSignature() *Signature      { return a.organizerSignature }
func (a *ServiceAgreement) VendorSignature() *Signature         { return a.vendorSignature }
func (a *ServiceAgreement) SignedAt() *time.Time                { return a.signedAt }
func (a *ServiceAgreement) CreatedAt() time.Time                { return a.createdAt }
func (a *ServiceAgreement) UpdatedAt() time.Time                { return a.updatedAt }

func (a *ServiceAgreement) IsFullySigned() bool {
	return a.signedAt != nil
}

// Update is only possible before the agreement becomes binding.
func (a *ServiceAgreement) Update(p ContentPatch, now time.Time) error {
	if a.IsFullySigned() {
		return ErrAlreadySigned
	}
	if p.IsEmpty() {
		return ErrEmptyUpdate
	}

	var (
		deliverables []Deliverable
		milestones   []PaymentMilestone
		err          error
	)
	if p.Deliverables != nil {
		if deliverables, err = mintDeliverables(*p.Deliverables); err != nil {
			return err
		}
	}
	if p.PaymentSchedule != nil {
		if milestones, err = mintMilestones(*p.PaymentSchedule); err != nil {
			return err
		}
	}

	a.terms = patch.Coalesce(p.Terms, a.terms)
	a.cancellationPolicy = patch.Coalesce(p.CancellationPolicy, a.cancellationPolicy)
	if p.Deliverables != nil {
		a.deliverables = deliverables
	}
	if p.PaymentSchedule != nil {
		a.paymentSchedule = milestones
	}
	a.updatedAt = now
	return nil
}

// Sign fills one party's slot. It returns true when this signature completed the pair.
func (a *ServiceAgreement) Sign(t SignatureType, token string, metadata map[string]string, now time.Time) (bool, error) {
	if a.IsFullySigned() {
		return false, ErrAlreadySigned
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return false, ErrSignatureRequired
	}

	sig := &Signature{Token: token, SignedAt: now, Metadata: maps.Clone(metadata)}
	switch t {
	case SignatureOrganizer:
		if a.organizerSignature != nil {
			return false, ErrPartyAlreadySigned
		}
		a.organizerSignature = sig
	case SignatureVendor:
		if a.vendorSignature != nil {
			return false, ErrPartyAlreadySigned
		}
		a.vendorSignature = sig
	default:
		return false, ErrInvalidSignatureType
	}
	a.updatedAt = now

	if a.organizerSignature != nil && a.vendorSignature != nil {
		signedAt := now
		a.signedAt = &signedAt
		return true, nil
	}
	return false, nil
}

// SetDeliverableStatus accepts any status. completedAt is stamped on entry into
// COMPLETED and kept when the status later moves back.
func (a *ServiceAgreement) SetDeliverableStatus(id uuid.UUID, s DeliverableStatus, now time.Time) error {
	for i := range a.deliverables {
		d := &a.deliverables[i]
		if d.ID != id {
			continue
		}
		if s == DeliverableCompleted && d.Status != DeliverableCompleted {
			t := now
			d.CompletedAt = &t
		}
		d.Status = s
		a.updatedAt = now
		return nil
	}
	return ErrDeliverableNotFound
}

// SetMilestoneStatus mirrors SetDeliverableStatus with PAID / paidAt.
func (a *ServiceAgreement) SetMilestoneStatus(id uuid.UUID, s MilestoneStatus, now time.Time) error {
	for i := range a.paymentSchedule {
		m := &a.paymentSchedule[i]
		if m.ID != id {
			continue
		}
		if s == MilestonePaid && m.Status != MilestonePaid {
			t := now
			m.PaidAt = &t
		}
		m.Status = s
		a.updatedAt = now
		return nil
	}
	return ErrMilestoneNotFound
}
