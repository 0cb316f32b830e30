package auth

import (
	"context"

	"github.com/fachrifaul/paysheet/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// The abstraction keeps the service layer independent of the credential
// scheme, so passwords could later be swapped for passkeys or OAuth without
// touching the handlers.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the credentials and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks whether the credential meets the
	// implementation's requirements, e.g. password length.
	ValidateCredential(credential string) error
}
