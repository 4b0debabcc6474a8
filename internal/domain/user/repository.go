package user

import "context"

type UserRepository interface {
	// Create inserts a user; the role row is created when missing.
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id int64) (User, error)

	GetByEmail(ctx context.Context, email string) (User, error)

	// Update writes every mutable column of u.
	Update(ctx context.Context, u User) (User, error)

	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	Delete(ctx context.Context, id int64) error

	// List returns a page of users matching filter.Query against name,
	// email, position and role, newest first, plus the total count.
	List(ctx context.Context, filter UserFilter) ([]User, int64, error)

	// UpsertByEmail creates or overwrites the user with u.Email.
	UpsertByEmail(ctx context.Context, u User) (User, error)
}
