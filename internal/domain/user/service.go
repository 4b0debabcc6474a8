package user

import "context"

// UserService covers the caller's own profile and the admin user management.
type UserService interface {
	GetProfile(ctx context.Context) (UserResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// GetByID is allowed for administrators and for the user themself.
	GetByID(ctx context.Context, id int64) (UserResponse, error)

	List(ctx context.Context, filter UserFilter) (ListUserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int64) error
}
