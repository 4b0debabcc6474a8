package auth

import "errors"

var (
	ErrInvalidCredentials       = errors.New("Invalid credentials")
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrGoogleSignInDisabled     = errors.New("google sign-in is not configured")
	ErrGoogleEmailNotVerified   = errors.New("google account email is not verified")
	ErrGoogleAccountNotLinked   = errors.New("no account is registered for this google email")
	ErrStateMismatch            = errors.New("oauth state mismatch")
	ErrCodeValueEmpty           = errors.New("oauth code is empty")
	ErrGoogleAccessDeniedByUser = errors.New("google access denied by user")
)
