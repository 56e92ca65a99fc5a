package auth

import (
	"context"
	"testing"

	"github.com/grupo-santin/obras-backend-go/internal/domain/auth"
	"github.com/grupo-santin/obras-backend-go/internal/domain/user"
	"github.com/grupo-santin/obras-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users []user.User
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestService(t *testing.T) auth.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("obra-segura"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: []user.User{
		{ID: "u-1", Username: "encarregado", PasswordHash: string(hash), IsManager: true},
	}}
	jwtService := jwt.NewJWTService("test-secret-key", "1h", "24h")
	return NewAuthService(repo, jwtService)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("valid credentials issue both tokens", func(t *testing.T) {
		tokens, err := svc.Login(ctx, auth.LoginRequest{Username: "encarregado", Password: "obra-segura"})
		require.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		assert.Greater(t, tokens.AccessTokenExpiresIn, int64(0))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "encarregado", Password: "errada"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user maps to the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, auth.LoginRequest{Username: "fantasma", Password: "qualquer"})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	tokens, err := svc.Login(ctx, auth.LoginRequest{Username: "encarregado", Password: "obra-segura"})
	require.NoError(t, err)

	t.Run("valid refresh token reissues the pair", func(t *testing.T) {
		refreshed, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, refreshed.AccessToken)
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		_, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.AccessToken})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: "nem-um-jwt"})
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
