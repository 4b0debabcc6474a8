package user

import (
	"strings"
	"time"

	"github.com/unand-tendik/tendik-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	Alamat   *string `json:"alamat"`
}

// DefaultPassword is assigned when an administrator creates a user without one.
const DefaultPassword = "password"

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if r.Password != "" && len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if r.Role != "" && !validator.IsInSlice(r.Role, Roles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of ADMIN, TENAGA"})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone number is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest is an admin edit; nil or empty fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	Alamat   *string `json:"alamat"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && *r.Email != "" {
		normalized := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &normalized
		if !validator.IsValidEmail(normalized) {
			errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
		}
	}
	if r.Password != nil && *r.Password != "" && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if r.Role != nil && *r.Role != "" && !validator.IsInSlice(*r.Role, Roles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be one of ADMIN, TENAGA"})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone number is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest only touches name and phone.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone number is invalid"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OldPassword == "" || r.NewPassword == "" {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password lama dan baru wajib diisi"})
	} else if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "newPassword", Message: "new password must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserFilter struct {
	Query string
	Page  int
	Limit int
}

func (f *UserFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Page < 1 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be at least 1"})
	}
	if f.Limit < 1 || f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be between 1 and 100"})
	}
	f.Query = strings.TrimSpace(f.Query)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone"`
	Position  *string   `json:"position"`
	Alamat    *string   `json:"alamat"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToResponse strips the password hash.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Phone:     u.Phone,
		Position:  u.Position,
		Alamat:    u.Alamat,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type ListUserResponse struct {
	Users      []UserResponse `json:"users"`
	TotalCount int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int64          `json:"totalPages"`
}
