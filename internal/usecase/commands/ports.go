package commands

import (
	"context"
	"log/slog"

	"event-marketplace/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// StatisticsInvalidator drops cached rollups once a write has committed.
type StatisticsInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// invalidateStatistics is best-effort; a stale entry expires with its TTL.
func invalidateStatistics(ctx context.Context, inv StatisticsInvalidator, vendorID, organizerID uuid.UUID) {
	keys := []string{
		queries.VendorStatisticsKey(vendorID),
		queries.OrganizerStatisticsKey(organizerID),
	}
	if err := inv.Invalidate(ctx, keys...); err != nil {
		slog.WarnContext(ctx, "statistics cache invalidation failed", "keys", keys, "error", err.Error())
	}
}
