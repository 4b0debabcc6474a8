package user

import (
	"context"
	"fmt"
	"math"

	"github.com/unand-tendik/tendik-backend-go/internal/domain/activity"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
	activity activity.Recorder
}

func NewUserService(userRepository user.UserRepository, recorder activity.Recorder) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
		activity:       recorder,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// requirePermission returns the caller when their role grants permission.
func requirePermission(ctx context.Context, permission user.Permission) (jwt.Caller, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return jwt.Caller{}, err
	}
	if !caller.Can(permission) {
		return jwt.Caller{}, user.ErrAdminPrivilegeRequired
	}
	return caller, nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.UserResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, caller.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, caller.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}

	updated, err := s.UserRepository.Update(ctx, u)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return user.ToResponse(updated), nil
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return err
	}

	u, err := s.UserRepository.GetByID(ctx, caller.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)); err != nil {
		return user.ErrWrongOldPassword
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.UserRepository.UpdatePassword(ctx, u.ID, hashed); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.activity.Record(ctx, u.ID, activity.ActionPasswordChange, nil)
	return nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id int64) (user.UserResponse, error) {
	caller, err := jwt.CallerFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if caller.UserID != id && !caller.Can(user.PermissionUserViewAll) {
		return user.UserResponse{}, user.ErrForbidden
	}

	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) (user.ListUserResponse, error) {
	if _, err := requirePermission(ctx, user.PermissionUserViewAll); err != nil {
		return user.ListUserResponse{}, err
	}
	if err := filter.Validate(); err != nil {
		return user.ListUserResponse{}, err
	}

	users, total, err := s.UserRepository.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return user.ListUserResponse{
		Users:      responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int64(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	caller, err := requirePermission(ctx, user.PermissionUserManage)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	password := req.Password
	if password == "" {
		password = user.DefaultPassword
	}
	role := user.Role(req.Role)
	if role == "" {
		role = user.RoleTenaga
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         role,
		Phone:        req.Phone,
		Position:     req.Position,
		Alamat:       req.Alamat,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionUserCreate, activity.Metadata{"targetUserId": created.ID})
	return user.ToResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.UserResponse, error) {
	caller, err := requirePermission(ctx, user.PermissionUserManage)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil && *req.Name != "" {
		u.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		u.Email = *req.Email
	}
	if req.Role != nil && *req.Role != "" {
		u.Role = user.Role(*req.Role)
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Position != nil {
		u.Position = req.Position
	}
	if req.Alamat != nil {
		u.Alamat = req.Alamat
	}

	updated, err := s.UserRepository.Update(ctx, u)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Password != nil && *req.Password != "" {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return user.UserResponse{}, err
		}
		if err := s.UserRepository.UpdatePassword(ctx, id, hashed); err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to update password: %w", err)
		}
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionUserUpdate, activity.Metadata{"targetUserId": id})
	return user.ToResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	caller, err := requirePermission(ctx, user.PermissionUserManage)
	if err != nil {
		return err
	}
	if caller.UserID == id {
		return user.ErrCannotDeleteSelf
	}

	if err := s.UserRepository.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Record(ctx, caller.UserID, activity.ActionUserDelete, activity.Metadata{"targetUserId": id})
	return nil
}
