package services

import (
	"context"
	"errors"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/repositories"
	"dogwalking_backend/pkg/apperrors"
)

type MemberService struct {
	memberRepo repositories.MemberRepository
	dogRepo    repositories.DogRepository
	images     *ImageService
}

func NewMemberService(memberRepo repositories.MemberRepository, dogRepo repositories.DogRepository, images *ImageService) *MemberService {
	return &MemberService{
		memberRepo: memberRepo,
		dogRepo:    dogRepo,
		images:     images,
	}
}

func (s *MemberService) GetProfile(ctx context.Context, memberID int64) (*dto.ProfileResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	dogs, err := s.dogRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.ProfileResponse{
		MemberID:       member.ID,
		Nickname:       member.Nickname,
		Email:          member.Email,
		ProfileImage:   member.ProfileImage,
		ProfileContent: member.ProfileContent,
		Coin:           member.Coin,
		DogBowl:        member.DogBowl,
		Dogs:           dto.ToDogSummaries(dogs),
	}, nil
}

// UpdateProfile changes the member's own profile text and, when an image is
// provided, the profile image. Only self-updates reach this point; the
// handler passes the authenticated member's id.
func (s *MemberService) UpdateProfile(ctx context.Context, memberID int64, req *dto.UpdateProfileRequest, image *ImageUpload) (*dto.ProfileResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	member.ProfileContent = req.ProfileContent
	if image != nil {
		ref, err := s.images.Store(ctx, "profiles", image)
		if err != nil {
			return nil, err
		}
		member.ProfileImage = ref
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return s.GetProfile(ctx, memberID)
}
