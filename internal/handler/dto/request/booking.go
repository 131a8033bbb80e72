package request

import (
	"event-marketplace/internal/pkg/caldate"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateBookingRequest struct {
	EventID          uuid.UUID `json:"event_id" binding:"required"`
	ServiceListingID uuid.UUID `json:"service_listing_id" binding:"required"`
	ServiceDate      string    `json:"service_date" binding:"required,datetime=2006-01-02" copier:"-"`
	Requirements     string    `json:"requirements" binding:"required,max=5000"`
	BudgetMinCents   int64     `json:"budget_min_cents" binding:"min=0"`
	BudgetMaxCents   int64     `json:"budget_max_cents" binding:"min=0"`
	AdditionalNotes  *string   `json:"additional_notes,omitempty" binding:"omitempty,max=2000"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	var cmd commands.CreateBookingRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.CreateBookingRequest{}, errs.Wrap(err, "copy create booking request")
	}
	date, err := caldate.Parse(r.ServiceDate)
	if err != nil {
		return commands.CreateBookingRequest{}, errs.Mark(errs.Wrap(err, "service_date"), errs.ErrValidation)
	}
	cmd.ServiceDate = date
	return cmd, nil
}

type UpdateBookingRequest struct {
	Status           *string `json:"status,omitempty"`
	QuotedPriceCents *int64  `json:"quoted_price_cents,omitempty" binding:"omitempty,min=0"`
	FinalPriceCents  *int64  `json:"final_price_cents,omitempty" binding:"omitempty,min=0"`
	AdditionalNotes  *string `json:"additional_notes,omitempty" binding:"omitempty,max=2000"`
}

func (r UpdateBookingRequest) ToCommand() (commands.UpdateBookingRequest, error) {
	var cmd commands.UpdateBookingRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.UpdateBookingRequest{}, errs.Wrap(err, "copy update booking request")
	}
	return cmd, nil
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}
