package repository

import (
	"context"

	"event-marketplace/internal/infra"
	sqlc "event-marketplace/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=listing.go -destination=../../../tests/mock/repository/listing_mock.go -package=repositorymock

type ListingCounterQueries interface {
	IncrementListingInquiryCount(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	IncrementListingBookingCount(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ListingRepository struct {
	queries ListingCounterQueries
}

func NewListingRepository(queries ListingCounterQueries) *ListingRepository {
	return &ListingRepository{queries: queries}
}

func (r *ListingRepository) IncrementInquiryCount(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) error {
	n, err := r.queries.IncrementListingInquiryCount(ctx, tx, listingID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment listing inquiry count", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service listing not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ListingRepository) IncrementBookingCount(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) error {
	n, err := r.queries.IncrementListingBookingCount(ctx, tx, listingID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment listing booking count", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service listing not found", nil, infra.KindNotFound)
	}
	return nil
}
