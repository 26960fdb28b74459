package services

import (
	"context"
	"errors"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories"
	"dogwalking_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo  repositories.ApplicationRepository
	notificationRepo repositories.NotificationRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	notificationRepo repositories.NotificationRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo:  applicationRepo,
		notificationRepo: notificationRepo,
	}
}

// Apply records the applicant's intent to take the posted walk. Closed
// notifications, self-applications and duplicates are rejected here; the
// uniqueness rule is a service invariant, not a storage constraint.
func (s *ApplicationService) Apply(ctx context.Context, applicantID, notificationID int64) (*dto.MyApplicationView, error) {
	n, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if n.Matched {
		return nil, apperrors.ErrNotificationClosed
	}
	if n.OwnerID() == applicantID {
		return nil, apperrors.ErrSelfApplication
	}

	exists, err := s.applicationRepo.ExistsLive(ctx, applicantID, notificationID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateApplication
	}

	application := &models.Application{
		MemberID:       applicantID,
		NotificationID: notificationID,
		Notification:   *n,
		Status:         models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	view := dto.ToMyApplicationView(application)
	return &view, nil
}

// ListApplicants is the poster's view of who applied to their notification.
func (s *ApplicationService) ListApplicants(ctx context.Context, posterID, notificationID int64) ([]dto.ApplicantView, error) {
	n, err := s.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if n.OwnerID() != posterID {
		return nil, apperrors.ErrNotNotificationOwner
	}

	applications, err := s.applicationRepo.ListByNotification(ctx, notificationID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	views := make([]dto.ApplicantView, 0, len(applications))
	for i := range applications {
		views = append(views, dto.ToApplicantView(&applications[i]))
	}
	return views, nil
}

// ListMyApplications returns the member's own applications with their
// status, so rejection after someone else's match is observable.
func (s *ApplicationService) ListMyApplications(ctx context.Context, memberID int64) ([]dto.MyApplicationView, error) {
	applications, err := s.applicationRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	views := make([]dto.MyApplicationView, 0, len(applications))
	for i := range applications {
		views = append(views, dto.ToMyApplicationView(&applications[i]))
	}
	return views, nil
}
