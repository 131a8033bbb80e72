//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/pkg/clock"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/usecase/commands"
	"event-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMessageUseCase_Send(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		content    string
		actor      func(*builder.BookingBuilder) uuid.UUID
		findErr    error
		expectType booking.Role
		expectErr  error
	}{
		{
			name:       "success: organizer message",
			content:    "Can we add a dessert table?",
			actor:      func(b *builder.BookingBuilder) uuid.UUID { return b.OrganizerID },
			expectType: booking.RoleOrganizer,
		},
		{
			name:       "success: vendor message",
			content:    "Yes, quote updated.",
			actor:      func(b *builder.BookingBuilder) uuid.UUID { return b.VendorUserID },
			expectType: booking.RoleVendor,
		},
		{
			name:      "error: stranger",
			content:   "hello",
			actor:     func(*builder.BookingBuilder) uuid.UUID { return uuid.New() },
			expectErr: errs.ErrForbidden,
		},
		{
			name:      "error: booking missing",
			content:   "hello",
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return b.OrganizerID },
			findErr:   infra.WrapRepoErr("missing", nil, infra.KindNotFound),
			expectErr: errs.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			b := builder.NewBookingBuilder()
			if tc.findErr != nil {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(nil, tc.findErr)
			} else {
				m.reads.EXPECT().BookingByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
			}
			if tc.expectErr == nil {
				m.messages.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ any, msg *booking.Message) error {
						assert.Equal(t, tc.expectType, msg.SenderType())
						assert.Equal(t, fixedNow, msg.SentAt())
						return nil
					})
			}
			uc := commands.NewMessageUseCase(m.uow, clock.NewMockClock(fixedNow))

			res, err := uc.Send(ctx, b.ID, tc.content, tc.actor(b))

			if tc.expectErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectErr), "expected [%v] but got (%v)", tc.expectErr, err)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, res.MessageID)
		})
	}

	t.Run("error: oversized content rejected before the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewMessageUseCase(m.uow, clock.NewMockClock(fixedNow))

		_, err := uc.Send(ctx, uuid.New(), strings.Repeat("a", 5001), uuid.New())

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
