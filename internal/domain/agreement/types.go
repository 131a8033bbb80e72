package agreement

import (
	"strings"

	"event-marketplace/internal/pkg/errs"
)

type DeliverableStatus string

const (
	DeliverablePending    DeliverableStatus = "PENDING"
	DeliverableInProgress DeliverableStatus = "IN_PROGRESS"
	DeliverableCompleted  DeliverableStatus = "COMPLETED"
	DeliverableOverdue    DeliverableStatus = "OVERDUE"
)

func ParseDeliverableStatus(s string) (DeliverableStatus, error) {
	switch v := DeliverableStatus(strings.ToUpper(strings.TrimSpace(s))); v {
	case DeliverablePending, DeliverableInProgress, DeliverableCompleted, DeliverableOverdue:
		return v, nil
	}
	return "", errs.Wrapf(ErrInvalidDeliverableStatus, "%q", s)
}

type MilestoneStatus string

const (
	MilestonePending MilestoneStatus = "PENDING"
	MilestonePaid    MilestoneStatus = "PAID"
	MilestoneOverdue MilestoneStatus = "OVERDUE"
)

func ParseMilestoneStatus(s string) (MilestoneStatus, error) {
	switch v := MilestoneStatus(strings.ToUpper(strings.TrimSpace(s))); v {
	case MilestonePending, MilestonePaid, MilestoneOverdue:
		return v, nil
	}
	return "", errs.Wrapf(ErrInvalidMilestoneStatus, "%q", s)
}

type SignatureType string

const (
	SignatureOrganizer SignatureType = "ORGANIZER"
	SignatureVendor    SignatureType = "VENDOR"
)

func ParseSignatureType(s string) (SignatureType, error) {
	switch v := SignatureType(strings.ToUpper(strings.TrimSpace(s))); v {
	case SignatureOrganizer, SignatureVendor:
		return v, nil
	}
	return "", errs.Wrapf(ErrInvalidSignatureType, "%q", s)
}

var (
	ErrAlreadySigned            = errs.Mark(errs.New("agreement is already fully signed"), errs.ErrAlreadySigned)
	ErrPartyAlreadySigned       = errs.Mark(errs.New("party has already signed this agreement"), errs.ErrAlreadySigned)
	ErrDeliverableNotFound      = errs.Mark(errs.New("deliverable not found"), errs.ErrNotFound)
	ErrMilestoneNotFound        = errs.Mark(errs.New("payment milestone not found"), errs.ErrNotFound)
	ErrInvalidDeliverableStatus = errs.Mark(errs.New("invalid deliverable status"), errs.ErrValidation)
	ErrInvalidMilestoneStatus   = errs.Mark(errs.New("invalid milestone status"), errs.ErrValidation)
	ErrInvalidSignatureType     = errs.Mark(errs.New("invalid signature type"), errs.ErrValidation)
	ErrSignatureRequired        = errs.Mark(errs.New("signature is required"), errs.ErrValidation)
	ErrItemTitleRequired        = errs.Mark(errs.New("item title is required"), errs.ErrValidation)
	ErrItemDueDateRequired      = errs.Mark(errs.New("item due date is required"), errs.ErrValidation)
	ErrEmptyUpdate              = errs.Mark(errs.New("no agreement fields to update"), errs.ErrValidation)
)
