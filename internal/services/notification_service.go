package services

import (
	"context"
	"errors"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories"
	"dogwalking_backend/pkg/apperrors"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	dogRepo          repositories.DogRepository
	applicationRepo  repositories.ApplicationRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	dogRepo repositories.DogRepository,
	applicationRepo repositories.ApplicationRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		dogRepo:          dogRepo,
		applicationRepo:  applicationRepo,
	}
}

// CreateNotification posts a walking job. The dog must belong to the poster
// and the time window must be ordered.
func (s *NotificationService) CreateNotification(ctx context.Context, posterID int64, req *dto.WriteNotificationRequest) (*dto.NotificationSummary, error) {
	dog, err := s.dogRepo.FindByID(ctx, req.DogID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrDogNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if dog.MemberID != posterID {
		return nil, apperrors.ErrNotDogOwner
	}
	if !req.End.After(req.Start) {
		return nil, apperrors.ErrInvalidWalkWindow
	}

	n := &models.Notification{
		Title:       req.Title,
		Significant: req.Significant,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Coin:        req.Coin,
		StartTime:   req.Start,
		EndTime:     req.End,
		DogID:       dog.ID,
		Dog:         *dog,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	summary := dto.ToNotificationSummary(n)
	return &summary, nil
}

// ListOpenNotifications returns the board page for the viewer: their own
// dogs plus all open postings, newest first.
func (s *NotificationService) ListOpenNotifications(ctx context.Context, viewerID int64) (*dto.NotificationListResponse, error) {
	dogs, err := s.dogRepo.ListByMember(ctx, viewerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	notifications, err := s.notificationRepo.ListOpen(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.NotificationListResponse{
		Dogs:          dto.ToDogSummaries(dogs),
		Notifications: dto.ToNotificationSummaries(notifications),
	}, nil
}

// ListOpenSummaries returns just the open postings, for the public landing
// page where no viewer is resolved.
func (s *NotificationService) ListOpenSummaries(ctx context.Context) ([]dto.NotificationSummary, error) {
	notifications, err := s.notificationRepo.ListOpen(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.ToNotificationSummaries(notifications), nil
}

// ViewNotification returns the detail page. isMine is derived per request
// from the viewer, never stored.
func (s *NotificationService) ViewNotification(ctx context.Context, viewerID, notificationID int64) (*dto.NotificationDetail, error) {
	n, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	count, err := s.applicationRepo.CountByNotification(ctx, notificationID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.NotificationDetail{
		NotificationSummary: dto.ToNotificationSummary(n),
		Significant:         n.Significant,
		IsMine:              viewerID == n.OwnerID(),
		Poster:              dto.ToMemberSummary(&n.Dog.Member),
		ApplicationCount:    int(count),
	}, nil
}
