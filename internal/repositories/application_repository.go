package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dogwalking_backend/internal/models"
)

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, a *models.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (*models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Notification").
		Preload("Notification.Dog").
		First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ExistsLive reports whether the member already has a pending or accepted
// application against the notification. Rejected applications don't block a
// re-apply.
func (r *applicationRepository) ExistsLive(ctx context.Context, memberID, notificationID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("member_id = ? AND notification_id = ? AND status <> ?",
			memberID, notificationID, models.ApplicationStatusRejected).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *applicationRepository) ListByNotification(ctx context.Context, notificationID int64) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Member").
		Where("notification_id = ?", notificationID).
		Order("created_at").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByMember(ctx context.Context, memberID int64) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Notification").
		Preload("Notification.Dog").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) CountByNotification(ctx context.Context, notificationID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("notification_id = ?", notificationID).
		Count(&count).Error
	return count, err
}
