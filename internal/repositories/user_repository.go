package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const userColumns = "id, username, email, password_hash, password_salt, role, created_at"

// UserRepository stores credentials. Username and email lookups ignore case.
type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return r.getOne(ctx, "id = ?", id.String(), id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getOne(ctx, "LOWER(username) = LOWER(?)", username, username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, "LOWER(email) = LOWER(?)", email, email)
}

func (r *UserRepository) getOne(ctx context.Context, where, key string, arg any) (models.User, error) {
	var u models.User
	q := r.DB.Rebind("SELECT " + userColumns + " FROM users WHERE " + where + " LIMIT 1")
	if err := r.DB.GetContext(ctx, &u, q, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "User", ID: key}
		}
		return u, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.count(ctx, "LOWER(username) = LOWER(?)", username)
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.count(ctx, "LOWER(email) = LOWER(?)", email)
}

// AnyWithRole reports whether at least one user holds role.
func (r *UserRepository) AnyWithRole(ctx context.Context, role string) (bool, error) {
	return r.count(ctx, "role = ?", role)
}

func (r *UserRepository) count(ctx context.Context, where string, arg any) (bool, error) {
	var n int
	q := r.DB.Rebind("SELECT COUNT(1) FROM users WHERE " + where)
	if err := r.DB.GetContext(ctx, &n, q, arg); err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := r.DB.SelectContext(ctx, &users, "SELECT "+userColumns+" FROM users ORDER BY created_at"); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create inserts u, assigning an id and creation time when they are unset.
func (r *UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = nowUTC()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, password_salt, role, created_at)
		VALUES (:id, :username, :email, :password_hash, :password_salt, :role, :created_at)`, u)
	if err != nil {
		return u, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// UpdateRole does not report missing rows: MySQL counts only changed rows,
// so callers look the user up first.
func (r *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	if _, err := r.DB.ExecContext(ctx, r.DB.Rebind("UPDATE users SET role = ? WHERE id = ?"), role, id); err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	return nil
}
