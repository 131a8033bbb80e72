package commands

import (
	"context"
	"strings"
	"time"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/domain/template"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/pkg/clock"
	"event-marketplace/internal/pkg/money"
	"event-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=agreement.go -destination=../../../tests/mock/commands/agreement_mock.go -package=commandsmock

type DeliverableInput struct {
	Title       string
	Description string
	DueDate     time.Time
}

type MilestoneInput struct {
	Title       string
	Description string
	AmountCents int64
	DueDate     time.Time
}

type GenerateAgreementRequest struct {
	TemplateID         *string
	Terms              *string
	Deliverables       []DeliverableInput
	PaymentSchedule    []MilestoneInput
	CancellationPolicy *string
}

type GenerateAgreementResult struct {
	AgreementID uuid.UUID
}

// UpdateAgreementRequest replaces only the non-nil fields.
type UpdateAgreementRequest struct {
	Terms              *string
	Deliverables       *[]DeliverableInput
	PaymentSchedule    *[]MilestoneInput
	CancellationPolicy *string
}

type SignAgreementRequest struct {
	SignatureType string
	Signature     string
	Metadata      map[string]string
}

type SignAgreementResult struct {
	FullySigned bool
	SignedAt    *time.Time
}

type AgreementCommands interface {
	Generate(ctx context.Context, bookingID uuid.UUID, req GenerateAgreementRequest, actorID uuid.UUID) (*GenerateAgreementResult, error)
	Update(ctx context.Context, agreementID uuid.UUID, req UpdateAgreementRequest, actorID uuid.UUID) error
	Sign(ctx context.Context, agreementID uuid.UUID, req SignAgreementRequest, actorID uuid.UUID) (*SignAgreementResult, error)
	SetDeliverableStatus(ctx context.Context, agreementID, deliverableID uuid.UUID, status string, actorID uuid.UUID) error
	SetMilestoneStatus(ctx context.Context, agreementID, milestoneID uuid.UUID, status string, actorID uuid.UUID) error
}

type agreementUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	catalog *template.Catalog
	stats   StatisticsInvalidator
}

func NewAgreementUseCase(uow shared.UnitOfWork, clk clock.Clock, catalog *template.Catalog, stats StatisticsInvalidator) AgreementCommands {
	return &agreementUseCaseImpl{uow: uow, clock: clk, catalog: catalog, stats: stats}
}

func (uc *agreementUseCaseImpl) Generate(ctx context.Context, bookingID uuid.UUID, req GenerateAgreementRequest, actorID uuid.UUID) (*GenerateAgreementResult, error) {
	deliverables, milestones, err := req.drafts()
	if err != nil {
		return nil, err
	}

	var created *agreement.ServiceAgreement
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		bc, derr := tx.Reads().AgreementContext(ctx, bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}
		if !booking.ResolveActorRole(bc.Parties(), actorID).IsParty() {
			return booking.ErrNotParty
		}
		if bc.Status != booking.StatusQuoteAccepted {
			return ErrAgreementBookingState
		}
		if bc.HasAgreement {
			return ErrAgreementExists
		}

		tpl, derr := uc.pickTemplate(req.TemplateID, bc.ListingCategory)
		if derr != nil {
			return derr
		}
		now := uc.clock.Now()
		inst := tpl.Instantiate(placeholdersFor(bc), bc.ServiceDate, now)

		content := agreement.Content{
			Terms:              inst.Terms,
			Deliverables:       inst.Deliverables,
			PaymentSchedule:    inst.PaymentSchedule,
			CancellationPolicy: inst.CancellationPolicy,
		}
		if req.Terms != nil && strings.TrimSpace(*req.Terms) != "" {
			content.Terms = *req.Terms
		}
		if len(deliverables) > 0 {
			content.Deliverables = deliverables
		}
		if len(milestones) > 0 {
			content.PaymentSchedule = milestones
		}
		if req.CancellationPolicy != nil && strings.TrimSpace(*req.CancellationPolicy) != "" {
			content.CancellationPolicy = *req.CancellationPolicy
		}

		a, derr := agreement.New(bookingID, content, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Agreements().Create(ctx, tx.DB(), a); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrAgreementExists
			}
			return derr
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GenerateAgreementResult{AgreementID: created.ID()}, nil
}

func (uc *agreementUseCaseImpl) Update(ctx context.Context, agreementID uuid.UUID, req UpdateAgreementRequest, actorID uuid.UUID) error {
	patch, err := req.toPatch()
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return agreement.ErrEmptyUpdate
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, parties, derr := tx.Agreements().FindForUpdate(ctx, tx.DB(), agreementID)
		if derr != nil {
			return notFoundAs(derr, ErrAgreementNotFound)
		}
		if !booking.ResolveActorRole(parties, actorID).IsParty() {
			return booking.ErrNotParty
		}
		if derr = a.Update(patch, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Agreements().Update(ctx, tx.DB(), a)
	})
}

// Sign locks the agreement, then the booking when this signature completes the pair.
func (uc *agreementUseCaseImpl) Sign(ctx context.Context, agreementID uuid.UUID, req SignAgreementRequest, actorID uuid.UUID) (*SignAgreementResult, error) {
	sigType, err := agreement.ParseSignatureType(req.SignatureType)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Signature) == "" {
		return nil, agreement.ErrSignatureRequired
	}

	var (
		result    SignAgreementResult
		confirmed *booking.Booking
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, parties, derr := tx.Agreements().FindForUpdate(ctx, tx.DB(), agreementID)
		if derr != nil {
			return notFoundAs(derr, ErrAgreementNotFound)
		}
		role := booking.ResolveActorRole(parties, actorID)
		if !role.IsParty() {
			return booking.ErrNotParty
		}
		if !roleMatchesSignature(role, sigType) {
			return ErrSignatureRole
		}

		now := uc.clock.Now()
		completed, derr := a.Sign(sigType, req.Signature, req.Metadata, now)
		if derr != nil {
			return derr
		}
		if derr = tx.Agreements().Update(ctx, tx.DB(), a); derr != nil {
			return derr
		}
		result = SignAgreementResult{FullySigned: completed, SignedAt: a.SignedAt()}
		if !completed {
			return nil
		}

		b, _, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), a.BookingID())
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}
		if b.Status() == booking.StatusConfirmed {
			return nil
		}
		target := booking.StatusConfirmed
		change, derr := b.Apply(role, booking.Update{Status: &target}, now)
		if derr != nil {
			return derr
		}
		if derr = persistBookingChange(ctx, tx, b, change); derr != nil {
			return derr
		}
		confirmed = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if confirmed != nil {
		invalidateStatistics(ctx, uc.stats, confirmed.VendorID(), confirmed.OrganizerID())
	}
	return &result, nil
}

func (uc *agreementUseCaseImpl) SetDeliverableStatus(ctx context.Context, agreementID, deliverableID uuid.UUID, status string, actorID uuid.UUID) error {
	s, err := agreement.ParseDeliverableStatus(status)
	if err != nil {
		return err
	}
	return uc.mutate(ctx, agreementID, actorID, func(a *agreement.ServiceAgreement, now time.Time) error {
		return a.SetDeliverableStatus(deliverableID, s, now)
	})
}

func (uc *agreementUseCaseImpl) SetMilestoneStatus(ctx context.Context, agreementID, milestoneID uuid.UUID, status string, actorID uuid.UUID) error {
	s, err := agreement.ParseMilestoneStatus(status)
	if err != nil {
		return err
	}
	return uc.mutate(ctx, agreementID, actorID, func(a *agreement.ServiceAgreement, now time.Time) error {
		return a.SetMilestoneStatus(milestoneID, s, now)
	})
}

func (uc *agreementUseCaseImpl) mutate(ctx context.Context, agreementID, actorID uuid.UUID, fn func(a *agreement.ServiceAgreement, now time.Time) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		a, parties, derr := tx.Agreements().FindForUpdate(ctx, tx.DB(), agreementID)
		if derr != nil {
			return notFoundAs(derr, ErrAgreementNotFound)
		}
		if !booking.ResolveActorRole(parties, actorID).IsParty() {
			return booking.ErrNotParty
		}
		if derr = fn(a, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Agreements().Update(ctx, tx.DB(), a)
	})
}

func (uc *agreementUseCaseImpl) pickTemplate(templateID *string, category string) (template.Template, error) {
	if templateID != nil && *templateID != "" {
		return uc.catalog.Get(*templateID)
	}
	return uc.catalog.ForCategory(category), nil
}

func placeholdersFor(bc *shared.AgreementContext) template.Placeholders {
	total := money.Zero()
	switch {
	case bc.FinalPriceCents != nil:
		total = money.FromCents(*bc.FinalPriceCents)
	case bc.QuotedPriceCents != nil:
		total = money.FromCents(*bc.QuotedPriceCents)
	}
	return template.Placeholders{
		EventName:     bc.EventName,
		EventDate:     bc.EventDate,
		OrganizerName: bc.OrganizerName,
		VendorName:    bc.VendorBusinessName,
		ServiceName:   bc.ListingTitle,
		TotalAmount:   total,
	}
}

func roleMatchesSignature(role booking.Role, t agreement.SignatureType) bool {
	switch t {
	case agreement.SignatureOrganizer:
		return role == booking.RoleOrganizer
	case agreement.SignatureVendor:
		return role == booking.RoleVendor
	}
	return false
}

func (r GenerateAgreementRequest) drafts() ([]agreement.DeliverableDraft, []agreement.MilestoneDraft, error) {
	ds := toDeliverableDrafts(r.Deliverables)
	ms, err := toMilestoneDrafts(r.PaymentSchedule)
	if err != nil {
		return nil, nil, err
	}
	return ds, ms, nil
}

func (r UpdateAgreementRequest) toPatch() (agreement.ContentPatch, error) {
	p := agreement.ContentPatch{
		Terms:              r.Terms,
		CancellationPolicy: r.CancellationPolicy,
	}
	if r.Deliverables != nil {
		ds := toDeliverableDrafts(*r.Deliverables)
		p.Deliverables = &ds
	}
	if r.PaymentSchedule != nil {
		ms, err := toMilestoneDrafts(*r.PaymentSchedule)
		if err != nil {
			return p, err
		}
		p.PaymentSchedule = &ms
	}
	return p, nil
}

func toDeliverableDrafts(in []DeliverableInput) []agreement.DeliverableDraft {
	out := make([]agreement.DeliverableDraft, 0, len(in))
	for _, d := range in {
		out = append(out, agreement.DeliverableDraft(d))
	}
	return out
}

func toMilestoneDrafts(in []MilestoneInput) ([]agreement.MilestoneDraft, error) {
	out := make([]agreement.MilestoneDraft, 0, len(in))
	for _, m := range in {
		amount, err := money.New(m.AmountCents)
		if err != nil {
			return nil, err
		}
		out = append(out, agreement.MilestoneDraft{
			Title:       m.Title,
			Description: m.Description,
			Amount:      amount,
			DueDate:     m.DueDate,
		})
	}
	return out, nil
}
