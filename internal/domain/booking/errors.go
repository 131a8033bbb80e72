package booking

import "event-marketplace/internal/pkg/errs"

var (
	ErrNotParty              = errs.Mark(errs.New("actor is not a party to this booking"), errs.ErrForbidden)
	ErrTransitionNotAllowed  = errs.Mark(errs.New("booking status transition not allowed"), errs.ErrInvalidTransition)
	ErrTransitionRole        = errs.Mark(errs.New("actor role may not perform this transition"), errs.ErrRoleNotPermitted)
	ErrQuotedPriceRole       = errs.Mark(errs.New("only the vendor may set the quoted price"), errs.ErrRoleNotPermitted)
	ErrFinalPriceRole        = errs.Mark(errs.New("only the organizer may set the final price"), errs.ErrRoleNotPermitted)
	ErrEmptyUpdate           = errs.Mark(errs.New("no booking fields to update"), errs.ErrValidation)
	ErrRequirementsRequired  = errs.Mark(errs.New("requirements are required"), errs.ErrValidation)
	ErrRequirementsTooLong   = errs.Mark(errs.New("requirements are too long"), errs.ErrValidation)
	ErrInvalidBudgetRange    = errs.Mark(errs.New("budget minimum exceeds maximum"), errs.ErrValidation)
	ErrServiceDateRequired   = errs.Mark(errs.New("service date is required"), errs.ErrValidation)
	ErrMessageContentInvalid = errs.Mark(errs.New("message content must be 1 to 5000 characters"), errs.ErrValidation)
)
