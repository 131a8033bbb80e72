package errs

import "errors"

// Error kinds surfaced to callers. Concrete errors are marked with one of these
// via Mark and classified with Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrRoleNotPermitted  = errors.New("role not permitted")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidState      = errors.New("invalid state")
	ErrAlreadyExists     = errors.New("already exists")
	ErrAlreadySigned     = errors.New("already signed")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation error")
)

// Kind returns the first matching error kind name, or "" when err is unclassified.
func Kind(err error) string {
	for _, k := range kinds {
		if Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

var kinds = []struct {
	name string
	err  error
}{
	{"NotFound", ErrNotFound},
	{"Forbidden", ErrForbidden},
	{"RoleNotPermitted", ErrRoleNotPermitted},
	{"InvalidTransition", ErrInvalidTransition},
	{"InvalidState", ErrInvalidState},
	{"AlreadyExists", ErrAlreadyExists},
	{"AlreadySigned", ErrAlreadySigned},
	{"Conflict", ErrConflict},
	{"ValidationError", ErrValidation},
}
