//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/infra/readstore"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	readstoremock "event-marketplace/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMarketplaceReadStore_FindListing(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	testCases := []struct {
		name         string
		availability []byte
		queryErr     error
		expectKind   infra.RepositoryErrorKind
		expectRules  bool
	}{
		{name: "success: listing without availability", availability: nil},
		{name: "success: listing with availability", availability: []byte(`{"blockedDates":["2030-06-15"]}`), expectRules: true},
		{name: "error: malformed availability", availability: []byte(`{"blockedDates":"soon"}`), expectKind: infra.KindCorruptData},
		{name: "error: listing not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockMarketplaceQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewMarketplaceReadStore(mockQueries, mockDB)
			mockQueries.EXPECT().GetServiceListingSnapshot(ctx, mockDB, listingID).Return(sqlc.GetServiceListingSnapshotRow{
				ID: listingID, VendorID: uuid.New(), Title: "DJ set", Category: "music", Status: "ACTIVE", Availability: tc.availability,
			}, tc.queryErr)

			snap, err := store.FindListing(ctx, listingID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ACTIVE", snap.Status)
			assert.Equal(t, tc.expectRules, snap.Availability != nil)
		})
	}
}

func TestMarketplaceReadStore_FindBooking(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()

	t.Run("success: snapshot with parsed status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockMarketplaceQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewMarketplaceReadStore(mockQueries, mockDB)
		vendorUserID := uuid.New()
		mockQueries.EXPECT().GetBookingParties(ctx, mockDB, bookingID).Return(sqlc.GetBookingPartiesRow{
			ID: bookingID, VendorUserID: vendorUserID, Status: "CONFIRMED", ServiceDate: pgtype.Date{Valid: true},
		}, nil)

		snap, err := store.FindBooking(ctx, bookingID)

		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, snap.Status)
		assert.Equal(t, vendorUserID, snap.Parties().VendorUserID)
	})

	t.Run("error: unknown stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockMarketplaceQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewMarketplaceReadStore(mockQueries, mockDB)
		mockQueries.EXPECT().GetBookingParties(ctx, mockDB, bookingID).Return(sqlc.GetBookingPartiesRow{ID: bookingID, Status: "LOST"}, nil)

		_, err := store.FindBooking(ctx, bookingID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCorruptData))
	})
}

func TestMarketplaceReadStore_VendorIDByUserID(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockMarketplaceQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewMarketplaceReadStore(mockQueries, mockDB)

	userID, vendorID := uuid.New(), uuid.New()
	mockQueries.EXPECT().GetVendorProfileByUserID(ctx, mockDB, userID).Return(sqlc.GetVendorProfileByUserIDRow{
		ID: vendorID, UserID: userID, BusinessName: "Bright Kitchen",
	}, nil)

	got, err := store.VendorIDByUserID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, vendorID, got)
}

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
