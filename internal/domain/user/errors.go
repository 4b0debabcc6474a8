package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email already exists")
	ErrInvalidRole            = errors.New("invalid role")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrForbidden              = errors.New("you are not allowed to access this resource")
	ErrWrongOldPassword       = errors.New("Password lama salah")
	ErrCannotDeleteSelf       = errors.New("cannot delete your own account")
)
