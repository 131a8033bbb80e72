package readstore

import (
	"context"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/infra/repository/converter"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=agreement.go -destination=../../../tests/mock/readstore/agreement_mock.go -package=readstoremock

type AgreementViewQueries interface {
	GetServiceAgreementByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetServiceAgreementByIDRow, error)
	GetServiceAgreementByBookingID(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (sqlc.GetServiceAgreementByBookingIDRow, error)
}

type AgreementReadStore struct {
	queries AgreementViewQueries
	db      sqlc.DBTX
}

func NewAgreementReadStore(queries AgreementViewQueries, db sqlc.DBTX) *AgreementReadStore {
	return &AgreementReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AgreementReadStore) FindByID(ctx context.Context, id uuid.UUID) (*agreement.ServiceAgreement, booking.Parties, error) {
	row, err := r.queries.GetServiceAgreementByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, booking.Parties{}, infra.WrapRepoErr("service agreement not found", err, infra.KindNotFound)
		}
		return nil, booking.Parties{}, infra.WrapRepoErr("failed to get service agreement by id", err)
	}
	return decodeAgreement(agreementRow(row))
}

func (r *AgreementReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*agreement.ServiceAgreement, booking.Parties, error) {
	row, err := r.queries.GetServiceAgreementByBookingID(ctx, r.db, bookingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, booking.Parties{}, infra.WrapRepoErr("service agreement not found", err, infra.KindNotFound)
		}
		return nil, booking.Parties{}, infra.WrapRepoErr("failed to get service agreement by booking id", err)
	}
	return decodeAgreement(agreementRow(row))
}

type agreementRow = sqlc.GetServiceAgreementByIDRow

func decodeAgreement(row agreementRow) (*agreement.ServiceAgreement, booking.Parties, error) {
	a, err := converter.AgreementFromRow(row.ServiceAgreements)
	if err != nil {
		return nil, booking.Parties{}, infra.WrapRepoErr("invalid service agreement row", errs.New(err.Error()), infra.KindCorruptData)
	}
	return a, booking.Parties{OrganizerID: row.OrganizerID, VendorUserID: row.VendorUserID}, nil
}
