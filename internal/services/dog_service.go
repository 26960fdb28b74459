package services

import (
	"context"
	"errors"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories"
	"dogwalking_backend/pkg/apperrors"
)

type DogService struct {
	dogRepo repositories.DogRepository
	images  *ImageService
}

func NewDogService(dogRepo repositories.DogRepository, images *ImageService) *DogService {
	return &DogService{
		dogRepo: dogRepo,
		images:  images,
	}
}

// RegisterDog creates a dog profile for the owner. The image part is
// mandatory on creation.
func (s *DogService) RegisterDog(ctx context.Context, ownerID int64, form *dto.DogForm, image *ImageUpload) (*dto.DogSummary, error) {
	if image == nil {
		return nil, apperrors.ErrImageNotProvided
	}

	ref, err := s.images.Store(ctx, "dogs", image)
	if err != nil {
		return nil, err
	}

	dog := &models.Dog{
		Breed:    form.Breed,
		Name:     form.Name,
		Sex:      form.Sex,
		Size:     form.Size,
		Image:    ref,
		MemberID: ownerID,
	}
	if err := s.dogRepo.Create(ctx, dog); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	summary := dto.ToDogSummary(dog)
	return &summary, nil
}

// UpdateDog changes a dog profile. The caller must own the dog; the image is
// optional and keeps its previous reference when absent.
func (s *DogService) UpdateDog(ctx context.Context, ownerID, dogID int64, form *dto.DogForm, image *ImageUpload) (*dto.DogSummary, error) {
	dog, err := s.dogRepo.FindByID(ctx, dogID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrDogNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if dog.MemberID != ownerID {
		return nil, apperrors.ErrNotDogOwner
	}

	dog.Breed = form.Breed
	dog.Name = form.Name
	dog.Sex = form.Sex
	dog.Size = form.Size
	if image != nil {
		ref, err := s.images.Store(ctx, "dogs", image)
		if err != nil {
			return nil, err
		}
		dog.Image = ref
	}

	if err := s.dogRepo.Update(ctx, dog); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	summary := dto.ToDogSummary(dog)
	return &summary, nil
}

func (s *DogService) GetDog(ctx context.Context, dogID int64) (*dto.DogDetail, error) {
	dog, err := s.dogRepo.FindByID(ctx, dogID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrDogNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.DogDetail{
		DogSummary:    dto.ToDogSummary(dog),
		OwnerID:       dog.MemberID,
		OwnerNickname: dog.Member.Nickname,
	}, nil
}

func (s *DogService) ListMyDogs(ctx context.Context, ownerID int64) ([]dto.DogSummary, error) {
	dogs, err := s.dogRepo.ListByMember(ctx, ownerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ToDogSummaries(dogs), nil
}
