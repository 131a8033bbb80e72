package queries

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"event-marketplace/internal/domain/booking"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=statistics.go -destination=../../../tests/mock/queries/statistics_mock.go -package=queriesmock

const (
	ScopeVendor    = "vendor"
	ScopeOrganizer = "organizer"
)

// StatusCounts is the raw rollup of one party's bookings.
type StatusCounts struct {
	Total             int64
	ByStatus          map[booking.Status]int64
	TotalRevenueCents int64
}

type BookingStatistics struct {
	Scope             string           `json:"scope"`
	Total             int64            `json:"total"`
	ByStatus          map[string]int64 `json:"by_status"`
	ConversionRate    float64          `json:"conversion_rate"`
	CompletionRate    float64          `json:"completion_rate"`
	CancellationRate  float64          `json:"cancellation_rate"`
	TotalRevenueCents int64            `json:"total_revenue_cents"`
}

type StatisticsReadStore interface {
	VendorCounts(ctx context.Context, vendorID uuid.UUID) (*StatusCounts, error)
	OrganizerCounts(ctx context.Context, organizerID uuid.UUID) (*StatusCounts, error)
}

// StatisticsCache entries are versioned by a per-key generation that every
// invalidation bumps. Get reports the current generation even on a miss, and Set
// stores under the generation the caller observed, so a rollup computed before an
// invalidation is never served after it. Misses are reported as (nil, gen, false, nil).
type StatisticsCache interface {
	Get(ctx context.Context, key string) (*BookingStatistics, int64, bool, error)
	Set(ctx context.Context, key string, generation int64, stats *BookingStatistics) error
}

type StatisticsQueries interface {
	GetBookingStatistics(ctx context.Context, actorID uuid.UUID, scope string) (*BookingStatistics, error)
}

type statisticsQueriesImpl struct {
	repo    StatisticsReadStore
	parties PartyReadStore
	cache   StatisticsCache
	group   singleflight.Group
}

func NewStatisticsQueries(repo StatisticsReadStore, parties PartyReadStore, cache StatisticsCache) StatisticsQueries {
	return &statisticsQueriesImpl{repo: repo, parties: parties, cache: cache}
}

func VendorStatisticsKey(vendorID uuid.UUID) string {
	return "stats:booking:vendor:" + vendorID.String()
}

func OrganizerStatisticsKey(organizerID uuid.UUID) string {
	return "stats:booking:organizer:" + organizerID.String()
}

func (q *statisticsQueriesImpl) GetBookingStatistics(ctx context.Context, actorID uuid.UUID, scope string) (*BookingStatistics, error) {
	var (
		key  string
		load func(ctx context.Context) (*StatusCounts, error)
	)
	switch scope {
	case ScopeVendor:
		vendorID, err := q.parties.VendorIDByUserID(ctx, actorID)
		if err != nil {
			return nil, notFoundAs(err, ErrVendorProfileNotFound)
		}
		key = VendorStatisticsKey(vendorID)
		load = func(ctx context.Context) (*StatusCounts, error) { return q.repo.VendorCounts(ctx, vendorID) }
	case ScopeOrganizer:
		key = OrganizerStatisticsKey(actorID)
		load = func(ctx context.Context) (*StatusCounts, error) { return q.repo.OrganizerCounts(ctx, actorID) }
	default:
		return nil, ErrInvalidScope
	}

	stats, generation, ok, err := q.cache.Get(ctx, key)
	cacheable := err == nil
	if err != nil {
		slog.WarnContext(ctx, "statistics cache read failed", "key", key, "error", err.Error())
	} else if ok {
		return stats, nil
	}

	// waiters share the result, so one caller going away must not cancel the load
	v, err, _ := q.group.Do(fmt.Sprintf("%s@%d", key, generation), func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)
		counts, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		stats := ComputeStatistics(scope, counts)
		if !cacheable {
			return stats, nil
		}
		if err := q.cache.Set(loadCtx, key, generation, stats); err != nil {
			slog.WarnContext(loadCtx, "statistics cache write failed", "key", key, "error", err.Error())
		}
		return stats, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*BookingStatistics), nil
}

// ComputeStatistics derives the rates; every rate is 0 when there are no bookings.
func ComputeStatistics(scope string, c *StatusCounts) *BookingStatistics {
	byStatus := make(map[string]int64, len(booking.AllStatuses))
	for _, s := range booking.AllStatuses {
		byStatus[s.String()] = c.ByStatus[s]
	}
	converted := c.ByStatus[booking.StatusConfirmed] + c.ByStatus[booking.StatusInProgress] + c.ByStatus[booking.StatusCompleted]
	return &BookingStatistics{
		Scope:             scope,
		Total:             c.Total,
		ByStatus:          byStatus,
		ConversionRate:    rate(converted, c.Total),
		CompletionRate:    rate(c.ByStatus[booking.StatusCompleted], c.Total),
		CancellationRate:  rate(c.ByStatus[booking.StatusCancelled], c.Total),
		TotalRevenueCents: c.TotalRevenueCents,
	}
}

func rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}
