package readstore

import (
	"context"

	"event-marketplace/internal/domain/availability"
	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/pkg/pgconv"
	"event-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=marketplace.go -destination=../../../tests/mock/readstore/marketplace_mock.go -package=readstoremock

// MarketplaceQueries reads the records owned by neighbouring services.
type MarketplaceQueries interface {
	GetEventSnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetEventSnapshotRow, error)
	GetServiceListingSnapshot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetServiceListingSnapshotRow, error)
	GetVendorProfileByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.GetVendorProfileByUserIDRow, error)
	GetBookingParties(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingPartiesRow, error)
	GetAgreementContext(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetAgreementContextRow, error)
}

type MarketplaceReadStore struct {
	queries MarketplaceQueries
	db      sqlc.DBTX
}

func NewMarketplaceReadStore(queries MarketplaceQueries, db sqlc.DBTX) *MarketplaceReadStore {
	return &MarketplaceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MarketplaceReadStore) FindEvent(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	row, err := r.queries.GetEventSnapshot(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get event", err)
	}
	return &shared.EventSnapshot{
		ID:          row.ID,
		OrganizerID: row.OrganizerID,
		Name:        row.Name,
		EventDate:   pgconv.DateFromPgtype(row.EventDate),
	}, nil
}

// FindListing decodes the availability blob; a malformed blob is reported as corrupt data.
func (r *MarketplaceReadStore) FindListing(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	row, err := r.queries.GetServiceListingSnapshot(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get service listing", err)
	}
	rules, err := availability.Parse(row.Availability)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid listing availability", errs.New(err.Error()), infra.KindCorruptData)
	}
	return &shared.ListingSnapshot{
		ID:           row.ID,
		VendorID:     row.VendorID,
		VendorUserID: row.VendorUserID,
		Title:        row.Title,
		Category:     row.Category,
		Status:       row.Status,
		Availability: rules,
	}, nil
}

func (r *MarketplaceReadStore) FindVendorByUserID(ctx context.Context, userID uuid.UUID) (*shared.VendorSnapshot, error) {
	row, err := r.queries.GetVendorProfileByUserID(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get vendor profile", err)
	}
	return &shared.VendorSnapshot{ID: row.ID, UserID: row.UserID, BusinessName: row.BusinessName}, nil
}

func (r *MarketplaceReadStore) FindBooking(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingParties(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status", errs.New(err.Error()), infra.KindCorruptData)
	}
	return &shared.BookingSnapshot{
		ID:               row.ID,
		EventID:          row.EventID,
		ServiceListingID: row.ServiceListingID,
		OrganizerID:      row.OrganizerID,
		VendorID:         row.VendorID,
		VendorUserID:     row.VendorUserID,
		ServiceDate:      pgconv.DateFromPgtype(row.ServiceDate),
		Status:           status,
	}, nil
}

func (r *MarketplaceReadStore) FindAgreementContext(ctx context.Context, bookingID uuid.UUID) (*shared.AgreementContext, error) {
	row, err := r.queries.GetAgreementContext(ctx, r.db, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get agreement context", err)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking status", errs.New(err.Error()), infra.KindCorruptData)
	}
	return &shared.AgreementContext{
		BookingID:          row.BookingID,
		OrganizerID:        row.OrganizerID,
		VendorUserID:       row.VendorUserID,
		Status:             status,
		ServiceDate:        pgconv.DateFromPgtype(row.ServiceDate),
		QuotedPriceCents:   pgconv.Int64PtrFromPgtype(row.QuotedPriceCents),
		FinalPriceCents:    pgconv.Int64PtrFromPgtype(row.FinalPriceCents),
		EventName:          row.EventName,
		EventDate:          pgconv.DateFromPgtype(row.EventDate),
		OrganizerName:      row.OrganizerName,
		VendorBusinessName: row.VendorBusinessName,
		ListingTitle:       row.ListingTitle,
		ListingCategory:    row.ListingCategory,
		HasAgreement:       row.HasAgreement,
	}, nil
}

// EventOrganizerID and VendorIDByUserID serve the query side.

func (r *MarketplaceReadStore) EventOrganizerID(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error) {
	ev, err := r.FindEvent(ctx, eventID)
	if err != nil {
		return uuid.Nil, err
	}
	return ev.OrganizerID, nil
}

func (r *MarketplaceReadStore) VendorIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	v, err := r.FindVendorByUserID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	return v.ID, nil
}
