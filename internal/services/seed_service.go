package services

import (
	"context"
	"errors"
	"time"

	"dogwalking_backend/internal/auth"
	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories"
	"dogwalking_backend/pkg/apperrors"
)

// SeedService populates demo data for the init endpoint: two members, a dog
// and an open notification. Idempotent; reruns are no-ops once the first
// member exists.
type SeedService struct {
	memberRepo       repositories.MemberRepository
	dogRepo          repositories.DogRepository
	notificationRepo repositories.NotificationRepository
}

func NewSeedService(
	memberRepo repositories.MemberRepository,
	dogRepo repositories.DogRepository,
	notificationRepo repositories.NotificationRepository,
) *SeedService {
	return &SeedService{
		memberRepo:       memberRepo,
		dogRepo:          dogRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *SeedService) SeedDemoData(ctx context.Context) error {
	_, err := s.memberRepo.FindByEmail(ctx, "mkwak1125@gmail.com")
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return apperrors.DatabaseError(err)
	}

	hash, err := auth.HashPassword("kwak!6038")
	if err != nil {
		return apperrors.InternalError(err)
	}

	master1 := &models.Member{
		Nickname:       "닉네임1",
		Email:          "mkwak1125@gmail.com",
		PasswordHash:   hash,
		ProfileImage:   "1번 이미지",
		ProfileContent: "나는 1번 멤버",
		Coin:           100000,
	}
	if err := s.memberRepo.Create(ctx, master1); err != nil {
		return apperrors.DatabaseError(err)
	}

	master2 := &models.Member{
		Nickname:       "닉네임2",
		Email:          "asfd@gmail.com",
		PasswordHash:   hash,
		ProfileImage:   "2번 이미지",
		ProfileContent: "나는 2번 멤버",
		Coin:           500000,
		DogBowl:        55,
	}
	if err := s.memberRepo.Create(ctx, master2); err != nil {
		return apperrors.DatabaseError(err)
	}

	dog := &models.Dog{
		Breed:    "푸들",
		Name:     "강쥐",
		Image:    "이미지1",
		Sex:      "수컷",
		Size:     "대형견",
		MemberID: master1.ID,
	}
	if err := s.dogRepo.Create(ctx, dog); err != nil {
		return apperrors.DatabaseError(err)
	}

	n := &models.Notification{
		Title:       "제목1",
		Significant: "우리 아이는 착해용",
		Lat:         34.25,
		Lng:         43.1,
		Coin:        40000,
		StartTime:   time.Date(2023, time.October, 13, 22, 36, 0, 0, time.Local),
		EndTime:     time.Date(2023, time.October, 13, 23, 36, 0, 0, time.Local),
		DogID:       dog.ID,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}
