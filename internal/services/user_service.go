package services

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/auth"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/dto"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgInvalidCredentials = "invalid username or password"
	msgUserExists         = "username or email already exists"
)

type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	AnyWithRole(ctx context.Context, role string) (bool, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}

// UserService registers and authenticates users. Failures never reveal which
// credential was wrong or which of username/email is taken.
type UserService struct {
	Users  UserStore
	Hasher auth.Hasher
	Tokens *auth.TokenIssuer
	Log    *zap.Logger
}

func NewUserService(users UserStore, hasher auth.Hasher, tokens *auth.TokenIssuer, log *zap.Logger) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{Users: users, Hasher: hasher, Tokens: tokens, Log: log}
}

func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (models.PublicUser, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" || req.Password == "" {
		return models.PublicUser{}, domain.ValidationError{Msg: "username, email and password are required"}
	}
	if req.Password != req.ConfirmPassword {
		return models.PublicUser{}, domain.ValidationError{Field: "confirmPassword", Msg: "passwords do not match"}
	}

	u, err := s.create(ctx, username, email, req.Password, models.RoleUser)
	if err != nil {
		return models.PublicUser{}, err
	}
	s.Log.Info("user registered", zap.Stringer("user_id", u.ID))
	return s.withToken(u)
}

func (s *UserService) create(ctx context.Context, username, email, password, role string) (models.User, error) {
	taken, err := s.Users.UsernameExists(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	if !taken {
		if taken, err = s.Users.EmailExists(ctx, email); err != nil {
			return models.User{}, err
		}
	}
	if taken {
		return models.User{}, domain.ConflictError{Msg: msgUserExists}
	}

	salt, err := s.Hasher.NewSalt()
	if err != nil {
		return models.User{}, err
	}
	hash, err := s.Hasher.Hash(password, salt)
	if err != nil {
		return models.User{}, err
	}
	return s.Users.Create(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         role,
	})
}

// Login accepts either the username or the email address as the login name.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (models.PublicUser, error) {
	name := strings.TrimSpace(req.Username)
	u, err := s.Users.GetByUsername(ctx, name)
	if domain.IsNotFound(err) && strings.Contains(name, "@") {
		u, err = s.Users.GetByEmail(ctx, name)
	}
	if err != nil {
		if domain.IsNotFound(err) {
			return models.PublicUser{}, domain.UnauthorizedError{Msg: msgInvalidCredentials}
		}
		return models.PublicUser{}, err
	}
	h, err := auth.HasherForSalt(u.PasswordSalt)
	if err != nil {
		return models.PublicUser{}, fmt.Errorf("user %s: %w", u.ID, err)
	}
	if !auth.Verify(h, req.Password, u.PasswordSalt, u.PasswordHash) {
		s.Log.Info("login rejected", zap.Stringer("user_id", u.ID))
		return models.PublicUser{}, domain.UnauthorizedError{Msg: msgInvalidCredentials}
	}
	return s.withToken(u)
}

// GetByID returns the user with a freshly issued token.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (models.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, err
	}
	return s.withToken(u)
}

func (s *UserService) GetAll(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToPublic())
	}
	return out, nil
}

func (s *UserService) PromoteToAdmin(ctx context.Context, id uuid.UUID) (models.PublicUser, error) {
	if id == uuid.Nil {
		return models.PublicUser{}, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, err
	}
	if !u.IsAdmin() {
		if err := s.Users.UpdateRole(ctx, id, models.RoleAdmin); err != nil {
			return models.PublicUser{}, err
		}
		u.Role = models.RoleAdmin
		s.Log.Info("user promoted", zap.Stringer("user_id", id))
	}
	return u.ToPublic(), nil
}

// EnsureAdmin makes sure at least one Admin exists. An existing account with
// the given username is promoted; otherwise a new one is created.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	ok, err := s.Users.AnyWithRole(ctx, models.RoleAdmin)
	if err != nil || ok {
		return false, err
	}

	existing, err := s.Users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		_, err = s.PromoteToAdmin(ctx, existing.ID)
		return err == nil, err
	case !domain.IsNotFound(err):
		return false, err
	}

	u, err := s.create(ctx, username, email, password, models.RoleAdmin)
	if err != nil {
		return false, err
	}
	s.Log.Info("admin account seeded", zap.String("username", u.Username))
	return true, nil
}

func (s *UserService) withToken(u models.User) (models.PublicUser, error) {
	token, err := s.Tokens.Issue(u)
	if err != nil {
		return models.PublicUser{}, domain.InternalError{Msg: "could not issue token", Err: err}
	}
	pub := u.ToPublic()
	pub.Token = token
	return pub, nil
}
