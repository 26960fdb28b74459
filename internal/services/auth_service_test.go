package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dogwalking_backend/internal/auth"
	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/repositories/memory"
	"dogwalking_backend/pkg/apperrors"
)

const testSecret = "test-secret"

func testAuthService(store *memory.Store) *AuthService {
	return NewAuthService(store.MemberRepository(), testSecret, time.Hour)
}

func TestSignupLoginResolve_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	svc := testAuthService(store)
	ctx := context.Background()

	member, err := svc.Signup(ctx, &dto.SignupRequest{
		Nickname: "닉네임1",
		Email:    "mkwak1125@gmail.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotZero(t, member.ID)
	assert.NotEqual(t, "password123", member.PasswordHash)

	login, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "mkwak1125@gmail.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, member.ID, login.Member.MemberID)

	principal, err := svc.ResolvePrincipal(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, member.ID, principal.ID)
	assert.Equal(t, "닉네임1", principal.Nickname)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	svc := testAuthService(store)
	ctx := context.Background()

	req := &dto.SignupRequest{Nickname: "닉네임1", Email: "dup@test.com", Password: "password123"}
	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)

	req2 := &dto.SignupRequest{Nickname: "닉네임2", Email: "dup@test.com", Password: "password456"}
	_, err = svc.Signup(ctx, req2)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignup_ShortPassword(t *testing.T) {
	store := memory.NewStore()
	svc := testAuthService(store)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Nickname: "닉네임1",
		Email:    "short@test.com",
		Password: "short",
	})
	require.Error(t, err)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	store := memory.NewStore()
	svc := testAuthService(store)
	ctx := context.Background()

	_, err := svc.Signup(ctx, &dto.SignupRequest{
		Nickname: "닉네임1",
		Email:    "known@test.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// Unknown email and wrong password yield the same error.
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "unknown@test.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "known@test.com", Password: "wrongpass1"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestResolvePrincipal_Rejections(t *testing.T) {
	store := memory.NewStore()
	svc := testAuthService(store)
	ctx := context.Background()

	_, err := svc.ResolvePrincipal(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	expired, err := auth.GenerateToken(testSecret, -time.Minute, 1, "닉네임1")
	require.NoError(t, err)
	_, err = svc.ResolvePrincipal(ctx, expired)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	// A well-formed token for an account that no longer exists is rejected
	// because the principal is loaded fresh from the store.
	ghost, err := auth.GenerateToken(testSecret, time.Hour, 999, "유령")
	require.NoError(t, err)
	_, err = svc.ResolvePrincipal(ctx, ghost)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
