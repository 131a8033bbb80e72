package repository

import (
	"context"
	"math"

	"event-marketplace/internal/infra"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=vendor.go -destination=../../../tests/mock/repository/vendor_mock.go -package=repositorymock

type VendorWriteQueries interface {
	LockVendorProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (uuid.UUID, error)
	CountVendorBookingsForCompletion(ctx context.Context, db sqlc.DBTX, vendorID uuid.UUID) (sqlc.CountVendorBookingsForCompletionRow, error)
	UpdateVendorCompletionRate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVendorCompletionRateParams) error
}

type VendorRepository struct {
	queries VendorWriteQueries
}

func NewVendorRepository(queries VendorWriteQueries) *VendorRepository {
	return &VendorRepository{queries: queries}
}

// RecalculateCompletionRate sets completed/total*100 (100 with no bookings) and returns it.
// The vendor row lock makes concurrent completions for one vendor recompute one after another.
func (r *VendorRepository) RecalculateCompletionRate(ctx context.Context, tx sqlc.DBTX, vendorID uuid.UUID) (float64, error) {
	if _, err := r.queries.LockVendorProfile(ctx, tx, vendorID); err != nil {
		return 0, infra.WrapRepoErr("failed to lock vendor profile", err)
	}
	counts, err := r.queries.CountVendorBookingsForCompletion(ctx, tx, vendorID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count vendor bookings", err)
	}
	rate := CompletionRate(counts.Completed, counts.Total)
	if err := r.queries.UpdateVendorCompletionRate(ctx, tx, sqlc.UpdateVendorCompletionRateParams{
		ID:             vendorID,
		CompletionRate: pgconv.NumericFromFloat(rate),
	}); err != nil {
		return 0, infra.WrapRepoErr("failed to update vendor completion rate", err)
	}
	return rate, nil
}

func CompletionRate(completed, total int64) float64 {
	if total == 0 {
		return 100
	}
	return math.Round(float64(completed)/float64(total)*10000) / 100
}
