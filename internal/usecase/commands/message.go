package commands

import (
	"context"

	"event-marketplace/internal/domain/booking"
	"event-marketplace/internal/pkg/clock"
	"event-marketplace/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=message.go -destination=../../../tests/mock/commands/message_mock.go -package=commandsmock

type SendMessageResult struct {
	MessageID uuid.UUID
}

type MessageCommands interface {
	Send(ctx context.Context, bookingID uuid.UUID, content string, actorID uuid.UUID) (*SendMessageResult, error)
}

type messageUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMessageUseCase(uow shared.UnitOfWork, clk clock.Clock) MessageCommands {
	return &messageUseCaseImpl{uow: uow, clock: clk}
}

func (uc *messageUseCaseImpl) Send(ctx context.Context, bookingID uuid.UUID, content string, actorID uuid.UUID) (*SendMessageResult, error) {
	if err := booking.ValidateMessageContent(content); err != nil {
		return nil, err
	}

	var sent *booking.Message
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingByID(ctx, bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}
		role := booking.ResolveActorRole(snap.Parties(), actorID)
		msg, derr := booking.NewMessage(bookingID, actorID, role, content, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Messages().Create(ctx, tx.DB(), msg); derr != nil {
			return derr
		}
		sent = msg
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SendMessageResult{MessageID: sent.ID()}, nil
}
