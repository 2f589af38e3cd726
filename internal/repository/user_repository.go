package repository

import (
	"context"
	"errors"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dwsetiawan/facility-auth/internal/entity"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	q := `
	INSERT INTO users (name, email, password, role, "isDeleted")
	VALUES ($1, $2, $3, $4, FALSE)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, q, user.Name, user.Email, user.Password, user.RoleID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return entity.User{}, err
	}

	return user, nil
}

// UserByEmail returns the user together with its role name. Soft-deleted
// users are invisible to login.
func (r *UserRepository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	var user entity.User

	q := `
	SELECT a.id, a.name, a.email, a.password, a.role, b."roleName",
	       a.email_verified_at, a."isDeleted", a.created_at, a.updated_at
	FROM users a
	INNER JOIN users_role b ON b.id = a.role
	WHERE a.email = $1 AND a."isDeleted" = FALSE`

	err := r.db.QueryRow(ctx, q, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.RoleID, &user.RoleName,
		&user.EmailVerifiedAt, &user.IsDeleted, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}

// UserByID returns the user even when soft-deleted; the caller decides what a
// deleted user means for its operation.
func (r *UserRepository) UserByID(ctx context.Context, id int64) (entity.User, error) {
	var user entity.User

	q := `
	SELECT a.id, a.name, a.email, a.password, a.role, b."roleName",
	       a.email_verified_at, a."isDeleted", a.created_at, a.updated_at
	FROM users a
	INNER JOIN users_role b ON b.id = a.role
	WHERE a.id = $1`

	err := r.db.QueryRow(ctx, q, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.RoleID, &user.RoleName,
		&user.EmailVerifiedAt, &user.IsDeleted, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return user, nil
}

// EmailExists checks across all rows, deleted or not. The unique index is
// global, so a soft-deleted user still blocks the address.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool

	q := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	err := r.db.QueryRow(ctx, q, email).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *UserRepository) RoleExists(ctx context.Context, roleID int64) (bool, error) {
	var exists bool

	q := `SELECT EXISTS(SELECT 1 FROM users_role WHERE id = $1)`

	err := r.db.QueryRow(ctx, q, roleID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
