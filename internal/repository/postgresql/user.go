package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `u.id, u.name, u.email, u.password_hash, r.name, u.phone, u.position, u.alamat, u.created_at, u.updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Phone,
		&u.Position,
		&u.Alamat,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// mapUserError translates driver errors into user domain errors.
func mapUserError(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return user.ErrUserNotFound
	case database.IsPgError(err, database.UniqueViolation):
		return user.ErrEmailAlreadyExists
	default:
		return err
	}
}

// ensureRole returns the id of the named role, creating the row when missing.
func ensureRole(ctx context.Context, q database.Querier, role user.Role) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, `
		WITH ins AS (
			INSERT INTO roles (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
			RETURNING id
		)
		SELECT id FROM ins
		UNION ALL
		SELECT id FROM roles WHERE name = $1
		LIMIT 1
	`, string(role)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve role %s: %w", role, err)
	}
	return id, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	roleID, err := ensureRole(ctx, q, newUser.Role)
	if err != nil {
		return user.User{}, err
	}

	query := `
		WITH u AS (
			INSERT INTO users (name, email, password_hash, role_id, phone, position, alamat)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + userColumns + `
		FROM u JOIN roles r ON r.id = u.role_id
	`

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		roleID,
		newUser.Phone,
		newUser.Position,
		newUser.Alamat,
	))
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users u JOIN roles r ON r.id = u.role_id WHERE u.id = $1`

	found, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users u JOIN roles r ON r.id = u.role_id WHERE lower(u.email) = lower($1)`

	found, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return found, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	roleID, err := ensureRole(ctx, q, u.Role)
	if err != nil {
		return user.User{}, err
	}

	query := `
		WITH u AS (
			UPDATE users
			SET name = $1, email = $2, role_id = $3, phone = $4, position = $5, alamat = $6, updated_at = NOW()
			WHERE id = $7
			RETURNING *
		)
		SELECT ` + userColumns + `
		FROM u JOIN roles r ON r.id = u.role_id
	`

	updated, err := scanUser(q.QueryRow(ctx, query,
		u.Name, u.Email, roleID, u.Phone, u.Position, u.Alamat, u.ID,
	))
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return updated, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, filter user.UserFilter) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Query != "" {
		where = fmt.Sprintf(`(u.name ILIKE $%d OR u.email ILIKE $%d OR u.position ILIKE $%d OR r.name ILIKE $%d)`,
			argIdx, argIdx, argIdx, argIdx)
		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM users u JOIN roles r ON r.id = u.role_id WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM users u JOIN roles r ON r.id = u.role_id
		WHERE %s
		ORDER BY u.created_at DESC, u.id DESC
		LIMIT $%d OFFSET $%d
	`, userColumns, where, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, total, nil
}

// UpsertByEmail implements user.UserRepository.
func (r *userRepositoryImpl) UpsertByEmail(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	roleID, err := ensureRole(ctx, q, u.Role)
	if err != nil {
		return user.User{}, err
	}

	query := `
		WITH u AS (
			INSERT INTO users (name, email, password_hash, role_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE
			SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash,
			    role_id = EXCLUDED.role_id, updated_at = NOW()
			RETURNING *
		)
		SELECT ` + userColumns + `
		FROM u JOIN roles r ON r.id = u.role_id
	`

	saved, err := scanUser(q.QueryRow(ctx, query, u.Name, u.Email, u.PasswordHash, roleID))
	if err != nil {
		return user.User{}, mapUserError(err)
	}
	return saved, nil
}
