package repositories

import (
	"context"
	"errors"

	"dogwalking_backend/internal/models"
)

// ErrNotFound is returned by all repositories when the requested record does
// not exist. Services translate it into the domain-specific not-found error.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a uniqueness constraint is violated.
var ErrDuplicate = errors.New("duplicate record")

// MemberRepository is the identity store.
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	FindByID(ctx context.Context, id int64) (*models.Member, error)
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
}

// DogRepository is the dog registry.
type DogRepository interface {
	Create(ctx context.Context, dog *models.Dog) error
	FindByID(ctx context.Context, id int64) (*models.Dog, error)
	Update(ctx context.Context, dog *models.Dog) error
	ListByMember(ctx context.Context, memberID int64) ([]models.Dog, error)
}

// NotificationRepository is the job-posting board. Reads return the
// notification with its dog (and the dog's owner) materialized, so callers
// never depend on lazy traversal.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	FindByID(ctx context.Context, id int64) (*models.Notification, error)
	ListOpen(ctx context.Context) ([]models.Notification, error)
}

// ApplicationRepository is the application ledger.
type ApplicationRepository interface {
	Create(ctx context.Context, a *models.Application) error
	FindByID(ctx context.Context, id int64) (*models.Application, error)
	ExistsLive(ctx context.Context, memberID, notificationID int64) (bool, error)
	ListByNotification(ctx context.Context, notificationID int64) ([]models.Application, error)
	ListByMember(ctx context.Context, memberID int64) ([]models.Application, error)
	CountByNotification(ctx context.Context, notificationID int64) (int64, error)
}

// MatchStore groups the operations the match selection transaction needs.
// Transaction runs fn against a store whose operations are applied as one
// atomic unit; LockNotification takes a row lock inside that unit so
// concurrent selections against the same notification serialize.
type MatchStore interface {
	Transaction(ctx context.Context, fn func(tx MatchStore) error) error
	LockNotification(ctx context.Context, id int64) (*models.Notification, error)
	FindApplication(ctx context.Context, id int64) (*models.Application, error)
	MarkMatched(ctx context.Context, notificationID int64) error
	SetApplicationStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) error
	RejectSiblings(ctx context.Context, notificationID, acceptedApplicationID int64) error
	CreateMatch(ctx context.Context, m *models.Match) error
	FindMatchWithDetails(ctx context.Context, id int64) (*models.Match, error)
	FindMatchByNotification(ctx context.Context, notificationID int64) (*models.Match, error)
}
