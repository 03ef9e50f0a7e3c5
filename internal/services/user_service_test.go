package services

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/auth"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/dto"
	"backoffice/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedUsers(t *testing.T, store *repositories.MemoryUserRepository) []models.User {
	t.Helper()
	users, err := store.GetAll(context.Background())
	require.NoError(t, err)
	return users
}

func newUserService(t *testing.T) (*UserService, *repositories.MemoryUserRepository) {
	t.Helper()
	h, err := auth.NewHasher(auth.MACHMACSHA512)
	require.NoError(t, err)
	tokens, err := auth.NewTokenIssuer("unit-test-signing-key", "backoffice", "backoffice-clients", time.Hour)
	require.NoError(t, err)
	store := repositories.NewMemoryUserRepository()
	return NewUserService(store, h, tokens, nil), store
}

func register(name, email, pw string) dto.RegisterRequest {
	return dto.RegisterRequest{Username: name, Email: email, Password: pw, ConfirmPassword: pw}
}

func TestUserService_RegisterLoginScenario(t *testing.T) {
	svc, store := newUserService(t)
	ctx := context.Background()

	alice, err := svc.Register(ctx, register("alice", "alice@x.com", "Secret123!"))
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, alice.Role)
	assert.NotEmpty(t, alice.Token)

	_, err = svc.Register(ctx, register("alice", "other@x.com", "Secret123!"))
	assert.True(t, domain.IsConflict(err))
	_, err = svc.Register(ctx, register("someone", "ALICE@x.com", "Secret123!"))
	assert.True(t, domain.IsConflict(err))
	assert.Len(t, storedUsers(t, store), 1)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, domain.IsUnauthorized(err))

	got, err := svc.Login(ctx, dto.LoginRequest{Username: "Alice", Password: "Secret123!"})
	require.NoError(t, err)
	assert.NotEmpty(t, got.Token)
	assert.Equal(t, alice.ID, got.ID)
}

func TestUserService_LoginByEmail(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	carol, err := svc.Register(ctx, register("carol", "carol@x.com", "pw123456"))
	require.NoError(t, err)

	got, err := svc.Login(ctx, dto.LoginRequest{Username: "CAROL@x.com", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, carol.ID, got.ID)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "carol@x.com", Password: "wrong"})
	assert.True(t, domain.IsUnauthorized(err))
}

func TestUserService_LoginAfterMACChange(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, register("dana", "dana@x.com", "pw123456"))
	require.NoError(t, err)

	svc.Hasher, err = auth.NewHasher(auth.MACBlake2b512)
	require.NoError(t, err)
	_, err = svc.Register(ctx, register("eve", "eve@x.com", "pw654321"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "dana", Password: "pw123456"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "eve", Password: "pw654321"})
	assert.NoError(t, err)
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "dana", Password: "pw654321"})
	assert.True(t, domain.IsUnauthorized(err))
}

func TestUserService_LoginFailuresLookAlike(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, register("bob", "bob@x.com", "pw123456"))
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, dto.LoginRequest{Username: "nobody", Password: "pw123456"})
	_, errWrong := svc.Login(ctx, dto.LoginRequest{Username: "bob", Password: "nope"})
	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestUserService_RegisterPasswordMismatch(t *testing.T) {
	svc, store := newUserService(t)
	req := register("carl", "carl@x.com", "pw123456")
	req.ConfirmPassword = "pw1234567"

	_, err := svc.Register(context.Background(), req)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, storedUsers(t, store))
}

func TestUserService_StoresSaltedHash(t *testing.T) {
	svc, store := newUserService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, register("u1", "u1@x.com", "same-password"))
	require.NoError(t, err)
	_, err = svc.Register(ctx, register("u2", "u2@x.com", "same-password"))
	require.NoError(t, err)

	users := storedUsers(t, store)
	require.Len(t, users, 2)
	assert.Len(t, users[0].PasswordSalt, 128)
	assert.NotEqual(t, users[0].PasswordHash, users[1].PasswordHash)
}

func TestUserService_GetByIDIssuesFreshToken(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()
	u, err := svc.Register(ctx, register("dana", "dana@x.com", "pw123456"))
	require.NoError(t, err)

	me, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	claims, err := svc.Tokens.Parse(me.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, "dana", claims.Username)

	_, err = svc.GetByID(ctx, uuid.New())
	assert.True(t, domain.IsNotFound(err))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Empty(t, all[0].Token)
}

func TestUserService_PromoteAndEnsureAdmin(t *testing.T) {
	svc, store := newUserService(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "admin", "admin@example.com", "Admin123!")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.EnsureAdmin(ctx, "admin", "admin@example.com", "Admin123!")
	require.NoError(t, err)
	assert.False(t, created, "second run must be a no-op")
	assert.Len(t, storedUsers(t, store), 1)

	admin, err := svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "Admin123!"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	u, err := svc.Register(ctx, register("erin", "erin@x.com", "pw123456"))
	require.NoError(t, err)
	promoted, err := svc.PromoteToAdmin(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	_, err = svc.PromoteToAdmin(ctx, uuid.New())
	assert.True(t, domain.IsNotFound(err))
}

func TestUserService_EnsureAdminPromotesExistingAccount(t *testing.T) {
	svc, store := newUserService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, register("admin", "admin@example.com", "pw123456"))
	require.NoError(t, err)

	created, err := svc.EnsureAdmin(ctx, "admin", "admin@example.com", "Admin123!")
	require.NoError(t, err)
	assert.True(t, created)
	users := storedUsers(t, store)
	require.Len(t, users, 1)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
}
