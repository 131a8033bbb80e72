//go:build unit || e2e

package builder

import (
	"time"

	"event-marketplace/internal/domain/booking"
	reqdto "event-marketplace/internal/handler/dto/request"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/caldate"
	"event-marketplace/internal/pkg/money"
	"event-marketplace/internal/usecase/queries"
	"event-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	ServiceListingID uuid.UUID
	OrganizerID      uuid.UUID
	VendorID         uuid.UUID
	VendorUserID     uuid.UUID
	ServiceDate      time.Time
	Requirements     string
	BudgetMinCents   int64
	BudgetMaxCents   int64
	QuotedPriceCents *int64
	FinalPriceCents  *int64
	AdditionalNotes  *string
	Status           booking.Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2030, 1, 10, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:               uuid.New(),
		EventID:          uuid.New(),
		ServiceListingID: uuid.New(),
		OrganizerID:      uuid.New(),
		VendorID:         uuid.New(),
		VendorUserID:     uuid.New(),
		ServiceDate:      time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC),
		Requirements:     "Dinner for 120 guests, two vegetarian options",
		BudgetMinCents:   500000,
		BudgetMaxCents:   800000,
		Status:           booking.StatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithQuote(cents int64) *BookingBuilder {
	b.QuotedPriceCents = &cents
	return b
}

func (b *BookingBuilder) Parties() booking.Parties {
	return booking.Parties{OrganizerID: b.OrganizerID, VendorUserID: b.VendorUserID}
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	budget, _ := booking.NewBudgetRange(b.BudgetMinCents, b.BudgetMaxCents)
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:               b.ID,
		EventID:          b.EventID,
		ServiceListingID: b.ServiceListingID,
		OrganizerID:      b.OrganizerID,
		VendorID:         b.VendorID,
		ServiceDate:      b.ServiceDate,
		Requirements:     b.Requirements,
		Budget:           budget,
		QuotedPrice:      moneyPtr(b.QuotedPriceCents),
		FinalPrice:       moneyPtr(b.FinalPriceCents),
		AdditionalNotes:  b.AdditionalNotes,
		Status:           b.Status,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	})
}

func (b *BookingBuilder) BuildInfra() sqlc.BookingRequests {
	return sqlc.BookingRequests{
		ID:               b.ID,
		EventID:          b.EventID,
		ServiceListingID: b.ServiceListingID,
		OrganizerID:      b.OrganizerID,
		VendorID:         b.VendorID,
		ServiceDate:      pgtype.Date{Time: b.ServiceDate, Valid: true},
		Requirements:     b.Requirements,
		BudgetMinCents:   b.BudgetMinCents,
		BudgetMaxCents:   b.BudgetMaxCents,
		QuotedPriceCents: int8Ptr(b.QuotedPriceCents),
		FinalPriceCents:  int8Ptr(b.FinalPriceCents),
		AdditionalNotes:  textPtr(b.AdditionalNotes),
		Status:           b.Status.String(),
		CreatedAt:        pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:               b.ID,
		EventID:          b.EventID,
		ServiceListingID: b.ServiceListingID,
		OrganizerID:      b.OrganizerID,
		VendorID:         b.VendorID,
		VendorUserID:     b.VendorUserID,
		ServiceDate:      b.ServiceDate,
		Status:           b.Status,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                 b.ID,
		EventID:            b.EventID,
		EventName:          "Spring Gala",
		ServiceListingID:   b.ServiceListingID,
		ListingTitle:       "Full-service catering",
		ListingCategory:    "catering",
		OrganizerID:        b.OrganizerID,
		VendorID:           b.VendorID,
		VendorUserID:       b.VendorUserID,
		VendorBusinessName: "Bright Kitchen",
		ServiceDate:        b.ServiceDate,
		Requirements:       b.Requirements,
		BudgetMinCents:     b.BudgetMinCents,
		BudgetMaxCents:     b.BudgetMaxCents,
		QuotedPriceCents:   b.QuotedPriceCents,
		FinalPriceCents:    b.FinalPriceCents,
		AdditionalNotes:    b.AdditionalNotes,
		Status:             b.Status.String(),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		EventID:          b.EventID,
		ServiceListingID: b.ServiceListingID,
		ServiceDate:      caldate.Format(b.ServiceDate),
		Requirements:     b.Requirements,
		BudgetMinCents:   b.BudgetMinCents,
		BudgetMaxCents:   b.BudgetMaxCents,
		AdditionalNotes:  b.AdditionalNotes,
	}
}

func moneyPtr(cents *int64) *money.Money {
	if cents == nil {
		return nil
	}
	m := money.FromCents(*cents)
	return &m
}

func int8Ptr(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func textPtr(v *string) pgtype.Text {
	if v == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *v, Valid: true}
}
