package auth

import (
	"context"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
)

type AuthService interface {
	// Register creates a TENAGA account.
	Register(ctx context.Context, req RegisterRequest) (user.UserResponse, error)
	Login(ctx context.Context, req LoginRequest, session SessionInfo) (TokenResponse, error)
	// LoginWithGoogle signs in an existing account matched by a verified Google email.
	LoginWithGoogle(ctx context.Context, email string, verified bool, session SessionInfo) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
}
