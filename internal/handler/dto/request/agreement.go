package request

import (
	"event-marketplace/internal/pkg/caldate"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type DeliverableRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date" binding:"required,datetime=2006-01-02" copier:"-"`
}

type MilestoneRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents" binding:"min=0"`
	DueDate     string `json:"due_date" binding:"required,datetime=2006-01-02" copier:"-"`
}

type GenerateAgreementRequest struct {
	TemplateID         *string              `json:"template_id,omitempty"`
	Terms              *string              `json:"terms,omitempty"`
	Deliverables       []DeliverableRequest `json:"deliverables,omitempty" binding:"omitempty,dive" copier:"-"`
	PaymentSchedule    []MilestoneRequest   `json:"payment_schedule,omitempty" binding:"omitempty,dive" copier:"-"`
	CancellationPolicy *string              `json:"cancellation_policy,omitempty"`
}

func (r GenerateAgreementRequest) ToCommand() (commands.GenerateAgreementRequest, error) {
	var cmd commands.GenerateAgreementRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.GenerateAgreementRequest{}, errs.Wrap(err, "copy generate agreement request")
	}
	var err error
	if cmd.Deliverables, err = toDeliverableInputs(r.Deliverables); err != nil {
		return commands.GenerateAgreementRequest{}, err
	}
	if cmd.PaymentSchedule, err = toMilestoneInputs(r.PaymentSchedule); err != nil {
		return commands.GenerateAgreementRequest{}, err
	}
	return cmd, nil
}

// UpdateAgreementRequest: an absent list keeps the stored one, an empty list clears it.
type UpdateAgreementRequest struct {
	Terms              *string               `json:"terms,omitempty"`
	Deliverables       *[]DeliverableRequest `json:"deliverables,omitempty" copier:"-"`
	PaymentSchedule    *[]MilestoneRequest   `json:"payment_schedule,omitempty" copier:"-"`
	CancellationPolicy *string               `json:"cancellation_policy,omitempty"`
}

func (r UpdateAgreementRequest) ToCommand() (commands.UpdateAgreementRequest, error) {
	var cmd commands.UpdateAgreementRequest
	if err := copier.Copy(&cmd, &r); err != nil {
		return commands.UpdateAgreementRequest{}, errs.Wrap(err, "copy update agreement request")
	}
	if r.Deliverables != nil {
		in, err := toDeliverableInputs(*r.Deliverables)
		if err != nil {
			return commands.UpdateAgreementRequest{}, err
		}
		if in == nil {
			in = []commands.DeliverableInput{}
		}
		cmd.Deliverables = &in
	}
	if r.PaymentSchedule != nil {
		in, err := toMilestoneInputs(*r.PaymentSchedule)
		if err != nil {
			return commands.UpdateAgreementRequest{}, err
		}
		if in == nil {
			in = []commands.MilestoneInput{}
		}
		cmd.PaymentSchedule = &in
	}
	return cmd, nil
}

type SignAgreementRequest struct {
	SignatureType string            `json:"signature_type" binding:"required"`
	Signature     string            `json:"signature" binding:"required"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

func (r SignAgreementRequest) ToCommand() commands.SignAgreementRequest {
	return commands.SignAgreementRequest{
		SignatureType: r.SignatureType,
		Signature:     r.Signature,
		Metadata:      r.Metadata,
	}
}

type ItemStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func toDeliverableInputs(in []DeliverableRequest) ([]commands.DeliverableInput, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]commands.DeliverableInput, len(in))
	for i, d := range in {
		due, err := caldate.Parse(d.DueDate)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "deliverables[%d].due_date", i), errs.ErrValidation)
		}
		if err := copier.Copy(&out[i], &d); err != nil {
			return nil, errs.Wrap(err, "copy deliverable")
		}
		out[i].DueDate = due
	}
	return out, nil
}

func toMilestoneInputs(in []MilestoneRequest) ([]commands.MilestoneInput, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]commands.MilestoneInput, len(in))
	for i, m := range in {
		due, err := caldate.Parse(m.DueDate)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "payment_schedule[%d].due_date", i), errs.ErrValidation)
		}
		if err := copier.Copy(&out[i], &m); err != nil {
			return nil, errs.Wrap(err, "copy milestone")
		}
		out[i].DueDate = due
	}
	return out, nil
}
