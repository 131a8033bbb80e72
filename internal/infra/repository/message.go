package repository

import (
	"context"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/infra"
	"event-marketplace/internal/infra/repository/converter"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=message.go -destination=../../../tests/mock/repository/message_mock.go -package=repositorymock

type MessageWriteQueries interface {
	CreateBookingMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingMessageParams) error
}

type MessageRepository struct {
	queries MessageWriteQueries
}

func NewMessageRepository(queries MessageWriteQueries) *MessageRepository {
	return &MessageRepository{queries: queries}
}

func (r *MessageRepository) Create(ctx context.Context, tx sqlc.DBTX, m *booking.Message) error {
	if err := r.queries.CreateBookingMessage(ctx, tx, converter.MessageToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create booking message", err)
	}
	return nil
}
