package auth

import (
	"errors"
	"fmt"
)

// General reconciliation errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrMissingEmail       = errors.New("profile has no email")
	ErrMissingCredentials = errors.New("no access token or refresh token supplied")
	ErrUnknownStrategy    = errors.New("no strategy registered for provider and surface")
)

// AlreadyExistsError is the deterministic rejection produced when a federated
// login would take over an account on the strict-protected surface. The route
// layer catches it and turns it into a failure redirect.
type AlreadyExistsError struct {
	Email   string
	Surface Surface
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with email %s already exists", accountNoun(e.Surface), e.Email)
}

// accountNoun maps a surface to the noun used in user-facing errors. Store
// accounts are customers, admin accounts are users.
func accountNoun(s Surface) string {
	if s == SurfaceAdmin {
		return "User"
	}
	return "Customer"
}
