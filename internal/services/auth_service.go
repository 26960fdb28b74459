package services

import (
	"context"
	"errors"
	"time"

	"dogwalking_backend/internal/auth"
	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories"
	"dogwalking_backend/pkg/apperrors"
)

// AuthService is the access gate: registration, credential verification,
// token issuance and principal resolution.
type AuthService struct {
	memberRepo repositories.MemberRepository
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewAuthService(memberRepo repositories.MemberRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		memberRepo: memberRepo,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
	}
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.Member, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError("비밀번호는 8자 이상이어야 합니다.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	member := &models.Member{
		Nickname:     req.Nickname,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}
	return member, nil
}

// Login verifies credentials and issues a bearer token. The error never
// reveals whether the email exists.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	member, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, member.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.jwtSecret, s.tokenTTL, member.ID, member.Nickname)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		Member:      dto.ToMemberSummary(member),
	}, nil
}

// ResolvePrincipal parses and verifies a bearer token, then loads the member
// fresh from the store. A valid token for a since-deleted account is
// rejected here, before any domain logic runs.
func (s *AuthService) ResolvePrincipal(ctx context.Context, tokenStr string) (*models.Member, error) {
	claims, err := auth.ParseToken(s.jwtSecret, tokenStr)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrUnauthenticated
	}

	member, err := s.memberRepo.FindByID(ctx, claims.MemberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.DatabaseError(err)
	}
	return member, nil
}
