package repository

import (
	"context"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/infra/repository/converter"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=agreement.go -destination=../../../tests/mock/repository/agreement_mock.go -package=repositorymock

type AgreementWriteQueries interface {
	CreateServiceAgreement(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceAgreementParams) error
	UpdateServiceAgreement(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceAgreementParams) (int64, error)
	LockServiceAgreement(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockServiceAgreementRow, error)
}

type AgreementRepository struct {
	queries AgreementWriteQueries
}

func NewAgreementRepository(queries AgreementWriteQueries) *AgreementRepository {
	return &AgreementRepository{queries: queries}
}

func (r *AgreementRepository) Create(ctx context.Context, tx sqlc.DBTX, a *agreement.ServiceAgreement) error {
	params, err := converter.AgreementToCreateParams(a)
	if err != nil {
		return infra.WrapRepoErr("failed to encode service agreement", err, infra.KindCorruptData)
	}
	if err := r.queries.CreateServiceAgreement(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create service agreement", err)
	}
	return nil
}

func (r *AgreementRepository) Update(ctx context.Context, tx sqlc.DBTX, a *agreement.ServiceAgreement) error {
	params, err := converter.AgreementToUpdateParams(a)
	if err != nil {
		return infra.WrapRepoErr("failed to encode service agreement", err, infra.KindCorruptData)
	}
	n, err := r.queries.UpdateServiceAgreement(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update service agreement", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service agreement not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AgreementRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*agreement.ServiceAgreement, booking.Parties, error) {
	row, err := r.queries.LockServiceAgreement(ctx, tx, id)
	if err != nil {
		return nil, booking.Parties{}, infra.WrapRepoErr("failed to lock service agreement", err)
	}
	a, err := converter.AgreementFromRow(row.ServiceAgreements)
	if err != nil {
		return nil, booking.Parties{}, infra.WrapRepoErr("invalid service agreement row", errs.New(err.Error()), infra.KindCorruptData)
	}
	return a, booking.Parties{OrganizerID: row.OrganizerID, VendorUserID: row.VendorUserID}, nil
}
