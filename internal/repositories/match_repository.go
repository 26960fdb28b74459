package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dogwalking_backend/internal/models"
)

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchStore {
	return &matchRepository{db: db}
}

// Transaction runs fn inside a database transaction. The nested store issues
// all its statements on the transaction handle, so the close-notification /
// accept-application / reject-siblings / create-match sequence commits or
// rolls back as one unit.
func (r *matchRepository) Transaction(ctx context.Context, fn func(tx MatchStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&matchRepository{db: tx})
	})
}

// LockNotification loads the notification with a SELECT ... FOR UPDATE row
// lock. Outside a transaction the lock has no effect, so callers must use it
// inside Transaction.
func (r *matchRepository) LockNotification(ctx context.Context, id int64) (*models.Notification, error) {
	var n models.Notification
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&n, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// Dog is loaded separately: FOR UPDATE cannot be combined with the
	// outer join Preload would generate.
	if err := r.db.WithContext(ctx).Preload("Member").First(&n.Dog, n.DogID).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *matchRepository) FindApplication(ctx context.Context, id int64) (*models.Application, error) {
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

func (r *matchRepository) MarkMatched(ctx context.Context, notificationID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", notificationID).
		Update("matched", true).Error
}

func (r *matchRepository) SetApplicationStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", applicationID).
		Update("status", status).Error
}

func (r *matchRepository) RejectSiblings(ctx context.Context, notificationID, acceptedApplicationID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("notification_id = ? AND id <> ?", notificationID, acceptedApplicationID).
		Update("status", models.ApplicationStatusRejected).Error
}

func (r *matchRepository) CreateMatch(ctx context.Context, m *models.Match) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// FindMatchWithDetails returns the match with its application (and applicant)
// and notification (and dog) eagerly loaded.
func (r *matchRepository) FindMatchWithDetails(ctx context.Context, id int64) (*models.Match, error) {
	var m models.Match
	err := r.db.WithContext(ctx).
		Preload("Application").
		Preload("Application.Member").
		Preload("Notification").
		Preload("Notification.Dog").
		First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) FindMatchByNotification(ctx context.Context, notificationID int64) (*models.Match, error) {
	var m models.Match
	err := r.db.WithContext(ctx).
		Where("notification_id = ?", notificationID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
