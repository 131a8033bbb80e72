//go:build unit

package queries_test

import (
	"context"
	"testing"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/usecase/queries"
	"event-marketplace/tests/common/builder"
	queriesmock "event-marketplace/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAgreementQueries_GetByBookingID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder()
	a := builder.NewAgreementBuilder().WithBookingID(b.ID)

	t.Run("success: party reads the agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockAgreementReadStore(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		bookings.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)
		repo.EXPECT().FindByBookingID(ctx, b.ID).Return(a.BuildDomain(), b.Parties(), nil)
		q := queries.NewAgreementQueries(repo, bookings)

		got, err := q.GetByBookingID(ctx, b.ID, b.OrganizerID)

		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID())
	})

	t.Run("error: stranger is stopped before the agreement is read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockAgreementReadStore(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		bookings.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)
		q := queries.NewAgreementQueries(repo, bookings)

		_, err := q.GetByBookingID(ctx, b.ID, uuid.New())

		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	t.Run("error: booking has no agreement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockAgreementReadStore(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		bookings.EXPECT().FindByID(ctx, b.ID).Return(b.BuildView(), nil)
		repo.EXPECT().FindByBookingID(ctx, b.ID).Return(nil, booking.Parties{}, infra.WrapRepoErr("x", nil, infra.KindNotFound))
		q := queries.NewAgreementQueries(repo, bookings)

		_, err := q.GetByBookingID(ctx, b.ID, b.VendorUserID)

		assert.ErrorIs(t, err, queries.ErrAgreementNotFound)
	})
}

func TestAgreementQueries_GetProgress(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := queriesmock.NewMockAgreementReadStore(ctrl)
	b := builder.NewBookingBuilder()
	ab := builder.NewAgreementBuilder()
	ab.Deliverables[0].Status = "COMPLETED"
	repo.EXPECT().FindByID(ctx, ab.ID).Return(ab.BuildDomain(), b.Parties(), nil)
	q := queries.NewAgreementQueries(repo, queriesmock.NewMockBookingReadStore(ctrl))

	p, err := q.GetProgress(ctx, ab.ID, b.VendorUserID)

	require.NoError(t, err)
	assert.Equal(t, 2, p.Deliverables.Total)
	assert.Equal(t, 1, p.Deliverables.Completed)
	assert.Equal(t, 50.0, p.Deliverables.CompletionPercentage)
	assert.Equal(t, int64(600000), p.Payments.TotalAmount.Cents())
	assert.False(t, p.IsFullySigned)
}
