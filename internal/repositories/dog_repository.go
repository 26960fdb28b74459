package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dogwalking_backend/internal/models"
)

type dogRepository struct {
	db *gorm.DB
}

func NewDogRepository(db *gorm.DB) DogRepository {
	return &dogRepository{db: db}
}

func (r *dogRepository) Create(ctx context.Context, dog *models.Dog) error {
	return r.db.WithContext(ctx).Create(dog).Error
}

func (r *dogRepository) FindByID(ctx context.Context, id int64) (*models.Dog, error) {
	var dog models.Dog
	err := r.db.WithContext(ctx).Preload("Member").First(&dog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dog, nil
}

func (r *dogRepository) Update(ctx context.Context, dog *models.Dog) error {
	return r.db.WithContext(ctx).Save(dog).Error
}

func (r *dogRepository) ListByMember(ctx context.Context, memberID int64) ([]models.Dog, error) {
	var dogs []models.Dog
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("id").
		Find(&dogs).Error
	if err != nil {
		return nil, err
	}
	return dogs, nil
}
