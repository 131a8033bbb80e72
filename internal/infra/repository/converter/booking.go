package converter

import (
	"event-marketplace/internal/domain/booking"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/pkg/money"
	"event-marketplace/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingRequestParams {
	return sqlc.CreateBookingRequestParams{
		ID:               b.ID(),
		EventID:          b.EventID(),
		ServiceListingID: b.ServiceListingID(),
		OrganizerID:      b.OrganizerID(),
		VendorID:         b.VendorID(),
		ServiceDate:      pgconv.DateToPgtype(b.ServiceDate()),
		Requirements:     b.Requirements().String(),
		BudgetMinCents:   b.Budget().Min().Cents(),
		BudgetMaxCents:   b.Budget().Max().Cents(),
		QuotedPriceCents: MoneyToPgtype(b.QuotedPrice()),
		FinalPriceCents:  MoneyToPgtype(b.FinalPrice()),
		AdditionalNotes:  pgconv.StringPtrToPgtype(b.AdditionalNotes()),
		Status:           b.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingRequestParams {
	return sqlc.UpdateBookingRequestParams{
		ID:               b.ID(),
		Status:           b.Status().String(),
		QuotedPriceCents: MoneyToPgtype(b.QuotedPrice()),
		FinalPriceCents:  MoneyToPgtype(b.FinalPrice()),
		AdditionalNotes:  pgconv.StringPtrToPgtype(b.AdditionalNotes()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(r sqlc.BookingRequests) (*booking.Booking, error) {
	status, err := booking.ParseStatus(r.Status)
	if err != nil {
		return nil, errs.Wrapf(ErrCorruptRow, "booking %s: status %q", r.ID, r.Status)
	}
	budget, err := booking.NewBudgetRange(r.BudgetMinCents, r.BudgetMaxCents)
	if err != nil {
		return nil, errs.Wrapf(ErrCorruptRow, "booking %s: budget %d..%d", r.ID, r.BudgetMinCents, r.BudgetMaxCents)
	}
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:               r.ID,
		EventID:          r.EventID,
		ServiceListingID: r.ServiceListingID,
		OrganizerID:      r.OrganizerID,
		VendorID:         r.VendorID,
		ServiceDate:      pgconv.DateFromPgtype(r.ServiceDate),
		Requirements:     r.Requirements,
		Budget:           budget,
		QuotedPrice:      MoneyFromPgtype(r.QuotedPriceCents),
		FinalPrice:       MoneyFromPgtype(r.FinalPriceCents),
		AdditionalNotes:  pgconv.StringPtrFromPgtype(r.AdditionalNotes),
		Status:           status,
		CreatedAt:        pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(r.UpdatedAt),
	}), nil
}

func MessageToCreateParams(m *booking.Message) sqlc.CreateBookingMessageParams {
	return sqlc.CreateBookingMessageParams{
		ID:         m.ID(),
		BookingID:  m.BookingID(),
		SenderID:   m.SenderID(),
		SenderType: m.SenderType().String(),
		Content:    m.Content(),
		SentAt:     pgconv.TimeToPgtype(m.SentAt()),
	}
}

func MoneyToPgtype(m *money.Money) pgtype.Int8 {
	if m == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: m.Cents(), Valid: true}
}

func MoneyFromPgtype(v pgtype.Int8) *money.Money {
	if !v.Valid {
		return nil
	}
	m := money.FromCents(v.Int64)
	return &m
}
