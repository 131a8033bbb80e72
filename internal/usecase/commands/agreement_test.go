//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/domain/template"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/pkg/clock"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/pkg/ptr"
	"event-marketplace/internal/usecase/commands"
	"event-marketplace/internal/usecase/shared"
	"event-marketplace/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func agreementContext(status booking.Status) *shared.AgreementContext {
	return &shared.AgreementContext{
		BookingID:          uuid.New(),
		OrganizerID:        uuid.New(),
		VendorUserID:       uuid.New(),
		Status:             status,
		ServiceDate:        time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC),
		QuotedPriceCents:   ptr.Of(int64(400000)),
		EventName:          "Spring Gala",
		EventDate:          time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC),
		OrganizerName:      "Dana Reyes",
		VendorBusinessName: "Lens & Light",
		ListingTitle:       "Event photography",
		ListingCategory:    "photography",
	}
}

// =============================================================================
// Generate Agreement Tests
// =============================================================================

func TestAgreementUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: category template personalized for the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bc := agreementContext(booking.StatusQuoteAccepted)
		m.reads.EXPECT().AgreementContext(gomock.Any(), bc.BookingID).Return(bc, nil)
		m.agreements.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, a *agreement.ServiceAgreement) error {
				assert.Equal(t, bc.BookingID, a.BookingID())
				assert.Contains(t, a.Terms(), "Dana Reyes")
				assert.Contains(t, a.Terms(), "Lens & Light")
				assert.Contains(t, a.Terms(), "June 15, 2030")
				assert.NotContains(t, a.Terms(), "[EVENT_NAME]")
				require.Len(t, a.Deliverables(), 4)
				assert.Equal(t, "Shot List Consultation", a.Deliverables()[0].Title)
				require.Len(t, a.PaymentSchedule(), 2)
				assert.Equal(t, int64(200000), a.PaymentSchedule()[0].Amount.Cents())
				for _, d := range a.Deliverables() {
					assert.False(t, d.DueDate.After(bc.ServiceDate), "%s due after the event", d.Title)
				}
				return nil
			})
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		res, err := uc.Generate(ctx, bc.BookingID, commands.GenerateAgreementRequest{}, bc.VendorUserID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, res.AgreementID)
	})

	t.Run("success: caller content overrides the template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bc := agreementContext(booking.StatusQuoteAccepted)
		m.reads.EXPECT().AgreementContext(gomock.Any(), bc.BookingID).Return(bc, nil)
		due := time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)
		m.agreements.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, a *agreement.ServiceAgreement) error {
				assert.Equal(t, "Custom terms", a.Terms())
				require.Len(t, a.Deliverables(), 1)
				assert.Equal(t, "Drone footage", a.Deliverables()[0].Title)
				assert.Equal(t, agreement.DeliverablePending, a.Deliverables()[0].Status)
				require.Len(t, a.PaymentSchedule(), 2)
				return nil
			})
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		_, err := uc.Generate(ctx, bc.BookingID, commands.GenerateAgreementRequest{
			Terms:        ptr.Of("Custom terms"),
			Deliverables: []commands.DeliverableInput{{Title: "Drone footage", DueDate: due}},
		}, bc.OrganizerID)

		require.NoError(t, err)
	})

	testCases := []struct {
		name      string
		status    booking.Status
		has       bool
		stranger  bool
		req       commands.GenerateAgreementRequest
		createErr error
		expectErr error
	}{
		{name: "error: booking not yet accepted", status: booking.StatusQuoteSent, expectErr: errs.ErrInvalidState},
		{name: "error: agreement already exists", status: booking.StatusQuoteAccepted, has: true, expectErr: errs.ErrAlreadyExists},
		{name: "error: non-party actor", status: booking.StatusQuoteAccepted, stranger: true, expectErr: errs.ErrForbidden},
		{name: "error: unknown template", status: booking.StatusQuoteAccepted, req: commands.GenerateAgreementRequest{TemplateID: ptr.Of("dj-template")}, expectErr: errs.ErrNotFound},
		{
			name:      "error: concurrent generate hits the unique booking index",
			status:    booking.StatusQuoteAccepted,
			createErr: infra.WrapRepoErr("create", nil, infra.KindDuplicateKey),
			expectErr: commands.ErrAgreementExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			bc := agreementContext(tc.status)
			bc.HasAgreement = tc.has
			m.reads.EXPECT().AgreementContext(gomock.Any(), bc.BookingID).Return(bc, nil)
			if tc.createErr != nil {
				m.agreements.EXPECT().Create(gomock.Any(), m.db, gomock.Any()).Return(tc.createErr)
			}
			uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

			actor := bc.OrganizerID
			if tc.stranger {
				actor = uuid.New()
			}
			_, err := uc.Generate(ctx, bc.BookingID, tc.req, actor)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectErr), "expected [%v] but got (%v)", tc.expectErr, err)
		})
	}
}

// =============================================================================
// Sign Agreement Tests
// =============================================================================

func TestAgreementUseCase_Sign(t *testing.T) {
	ctx := context.Background()
	signedEarlier := time.Date(2030, 1, 14, 9, 0, 0, 0, time.UTC)

	t.Run("success: first signature leaves the booking alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bk := builder.NewBookingBuilder().WithStatus(booking.StatusQuoteAccepted)
		ab := builder.NewAgreementBuilder().WithBookingID(bk.ID)
		m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil)
		m.agreements.EXPECT().Update(gomock.Any(), m.db, gomock.Any()).Return(nil)
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		res, err := uc.Sign(ctx, ab.ID, commands.SignAgreementRequest{SignatureType: "organizer", Signature: "sig-org"}, bk.OrganizerID)

		require.NoError(t, err)
		assert.False(t, res.FullySigned)
		assert.Nil(t, res.SignedAt)
	})

	t.Run("success: second signature confirms the booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bk := builder.NewBookingBuilder().WithStatus(booking.StatusQuoteAccepted)
		ab := builder.NewAgreementBuilder().WithBookingID(bk.ID).SignedBy(agreement.SignatureOrganizer, signedEarlier)
		gomock.InOrder(
			m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil),
			m.agreements.EXPECT().Update(gomock.Any(), m.db, gomock.Any()).Return(nil),
			m.bookings.EXPECT().FindForUpdate(gomock.Any(), m.db, bk.ID).Return(bk.BuildDomain(), bk.Parties(), nil),
			m.bookings.EXPECT().LockListingDate(gomock.Any(), m.db, bk.ServiceListingID, bk.ServiceDate).Return(nil),
			m.bookings.EXPECT().HasOccupyingBooking(gomock.Any(), m.db, bk.ServiceListingID, bk.ServiceDate, bk.ID).Return(false, nil),
			m.bookings.EXPECT().Update(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ any, b *booking.Booking) error {
					assert.Equal(t, booking.StatusConfirmed, b.Status())
					return nil
				}),
			m.listings.EXPECT().IncrementBookingCount(gomock.Any(), m.db, bk.ServiceListingID).Return(nil),
		)
		m.stats.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		res, err := uc.Sign(ctx, ab.ID, commands.SignAgreementRequest{SignatureType: "VENDOR", Signature: "sig-vendor"}, bk.VendorUserID)

		require.NoError(t, err)
		assert.True(t, res.FullySigned)
		require.NotNil(t, res.SignedAt)
		assert.Equal(t, fixedNow, *res.SignedAt)
	})

	t.Run("success: booking already confirmed is left as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bk := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed)
		ab := builder.NewAgreementBuilder().WithBookingID(bk.ID).SignedBy(agreement.SignatureVendor, signedEarlier)
		m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil)
		m.agreements.EXPECT().Update(gomock.Any(), m.db, gomock.Any()).Return(nil)
		m.bookings.EXPECT().FindForUpdate(gomock.Any(), m.db, bk.ID).Return(bk.BuildDomain(), bk.Parties(), nil)
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		res, err := uc.Sign(ctx, ab.ID, commands.SignAgreementRequest{SignatureType: "ORGANIZER", Signature: "sig-org"}, bk.OrganizerID)

		require.NoError(t, err)
		assert.True(t, res.FullySigned)
	})

	testCases := []struct {
		name      string
		req       commands.SignAgreementRequest
		actor     func(*builder.BookingBuilder) uuid.UUID
		prepare   func(*builder.AgreementBuilder)
		expectErr error
	}{
		{
			name:      "error: vendor signs as organizer",
			req:       commands.SignAgreementRequest{SignatureType: "ORGANIZER", Signature: "x"},
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return b.VendorUserID },
			expectErr: errs.ErrRoleNotPermitted,
		},
		{
			name:      "error: stranger signs",
			req:       commands.SignAgreementRequest{SignatureType: "VENDOR", Signature: "x"},
			actor:     func(*builder.BookingBuilder) uuid.UUID { return uuid.New() },
			expectErr: errs.ErrForbidden,
		},
		{
			name:      "error: party signs twice",
			req:       commands.SignAgreementRequest{SignatureType: "ORGANIZER", Signature: "x"},
			actor:     func(b *builder.BookingBuilder) uuid.UUID { return b.OrganizerID },
			prepare:   func(a *builder.AgreementBuilder) { a.SignedBy(agreement.SignatureOrganizer, signedEarlier) },
			expectErr: errs.ErrAlreadySigned,
		},
		{
			name:  "error: fully signed agreement",
			req:   commands.SignAgreementRequest{SignatureType: "VENDOR", Signature: "x"},
			actor: func(b *builder.BookingBuilder) uuid.UUID { return b.VendorUserID },
			prepare: func(a *builder.AgreementBuilder) {
				a.SignedBy(agreement.SignatureOrganizer, signedEarlier).SignedBy(agreement.SignatureVendor, signedEarlier)
			},
			expectErr: errs.ErrAlreadySigned,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newTxMocks(ctrl)
			bk := builder.NewBookingBuilder().WithStatus(booking.StatusQuoteAccepted)
			ab := builder.NewAgreementBuilder().WithBookingID(bk.ID)
			if tc.prepare != nil {
				tc.prepare(ab)
			}
			m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil)
			uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

			_, err := uc.Sign(ctx, ab.ID, tc.req, tc.actor(bk))

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.expectErr), "expected [%v] but got (%v)", tc.expectErr, err)
		})
	}

	t.Run("error: unknown signature type rejected before the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		_, err := uc.Sign(ctx, uuid.New(), commands.SignAgreementRequest{SignatureType: "WITNESS", Signature: "x"}, uuid.New())

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

// =============================================================================
// Update / Item Status Tests
// =============================================================================

func TestAgreementUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success: terms replaced and partial signature kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bk := builder.NewBookingBuilder()
		ab := builder.NewAgreementBuilder().SignedBy(agreement.SignatureVendor, fixedNow.Add(-time.Hour))
		m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil)
		m.agreements.EXPECT().Update(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, a *agreement.ServiceAgreement) error {
				assert.Equal(t, "Revised terms", a.Terms())
				assert.NotNil(t, a.VendorSignature())
				assert.Len(t, a.Deliverables(), 2)
				return nil
			})
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		err := uc.Update(ctx, ab.ID, commands.UpdateAgreementRequest{Terms: ptr.Of("Revised terms")}, bk.OrganizerID)

		require.NoError(t, err)
	})

	t.Run("error: fully signed agreement is frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bk := builder.NewBookingBuilder()
		ab := builder.NewAgreementBuilder().
			SignedBy(agreement.SignatureVendor, fixedNow).
			SignedBy(agreement.SignatureOrganizer, fixedNow)
		m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil)
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		err := uc.Update(ctx, ab.ID, commands.UpdateAgreementRequest{Terms: ptr.Of("x")}, bk.OrganizerID)

		assert.True(t, errs.Is(err, errs.ErrAlreadySigned))
	})

	t.Run("error: empty patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		err := uc.Update(ctx, uuid.New(), commands.UpdateAgreementRequest{}, uuid.New())

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestAgreementUseCase_SetItemStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deliverable completed stamps completedAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bk := builder.NewBookingBuilder()
		ab := builder.NewAgreementBuilder()
		target := ab.Deliverables[1].ID
		m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil)
		m.agreements.EXPECT().Update(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, a *agreement.ServiceAgreement) error {
				d := a.Deliverables()[1]
				assert.Equal(t, agreement.DeliverableCompleted, d.Status)
				require.NotNil(t, d.CompletedAt)
				assert.Equal(t, fixedNow, *d.CompletedAt)
				return nil
			})
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		require.NoError(t, uc.SetDeliverableStatus(ctx, ab.ID, target, "completed", bk.VendorUserID))
	})

	t.Run("success: milestone paid stamps paidAt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bk := builder.NewBookingBuilder()
		ab := builder.NewAgreementBuilder()
		m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil)
		m.agreements.EXPECT().Update(gomock.Any(), m.db, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, a *agreement.ServiceAgreement) error {
				assert.Equal(t, agreement.MilestonePaid, a.PaymentSchedule()[0].Status)
				assert.NotNil(t, a.PaymentSchedule()[0].PaidAt)
				return nil
			})
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		require.NoError(t, uc.SetMilestoneStatus(ctx, ab.ID, ab.PaymentSchedule[0].ID, "PAID", bk.OrganizerID))
	})

	t.Run("error: unknown deliverable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		bk := builder.NewBookingBuilder()
		ab := builder.NewAgreementBuilder()
		m.agreements.EXPECT().FindForUpdate(gomock.Any(), m.db, ab.ID).Return(ab.BuildDomain(), bk.Parties(), nil)
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		err := uc.SetDeliverableStatus(ctx, ab.ID, uuid.New(), "COMPLETED", bk.OrganizerID)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: invalid status value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newTxMocks(ctrl)
		uc := commands.NewAgreementUseCase(m.uow, clock.NewMockClock(fixedNow), template.NewDefaultCatalog(), m.stats)

		err := uc.SetMilestoneStatus(ctx, uuid.New(), uuid.New(), "REFUNDED", uuid.New())

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
