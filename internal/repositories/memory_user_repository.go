package repositories

import (
	"context"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/google/uuid"
)

// MemoryUserRepository is the in-memory counterpart of UserRepository.
type MemoryUserRepository struct {
	*MemoryRepository[models.User, *models.User]
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		MemoryRepository: NewMemoryRepository[models.User]("User"),
	}
}

func (r *MemoryUserRepository) find(ctx context.Context, match func(models.User) bool) (models.User, bool, error) {
	all, err := r.MemoryRepository.GetAll(ctx)
	if err != nil {
		return models.User{}, false, err
	}
	for _, u := range all {
		if match(u) {
			return u, true, nil
		}
	}
	return models.User{}, false, nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	u, ok, err := r.find(ctx, func(u models.User) bool { return strings.EqualFold(u.Username, username) })
	if err == nil && !ok {
		err = domain.NotFoundError{Resource: "User", ID: username}
	}
	return u, err
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, ok, err := r.find(ctx, func(u models.User) bool { return strings.EqualFold(u.Email, email) })
	if err == nil && !ok {
		err = domain.NotFoundError{Resource: "User", ID: email}
	}
	return u, err
}

func (r *MemoryUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, ok, err := r.find(ctx, func(u models.User) bool { return strings.EqualFold(u.Username, username) })
	return ok, err
}

func (r *MemoryUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok, err := r.find(ctx, func(u models.User) bool { return strings.EqualFold(u.Email, email) })
	return ok, err
}

func (r *MemoryUserRepository) AnyWithRole(ctx context.Context, role string) (bool, error) {
	_, ok, err := r.find(ctx, func(u models.User) bool { return u.Role == role })
	return ok, err
}

func (r *MemoryUserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = nowUTC()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	return r.MemoryRepository.Create(ctx, u)
}

func (r *MemoryUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.Role = role
	_, err = r.Update(ctx, id, u)
	return err
}
