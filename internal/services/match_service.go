package services

import (
	"context"
	"errors"

	"dogwalking_backend/internal/dto"
	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories"
	"dogwalking_backend/pkg/apperrors"
)

type MatchService struct {
	store repositories.MatchStore
}

func NewMatchService(store repositories.MatchStore) *MatchService {
	return &MatchService{store: store}
}

// SelectMatch binds the chosen application to its notification. The whole
// close / accept / reject-siblings / create sequence runs in one transaction
// holding a row lock on the notification, so of two concurrent selections
// exactly one wins and the other observes the already-matched state.
func (s *MatchService) SelectMatch(ctx context.Context, posterID, applicationID int64) (*dto.MatchResponse, error) {
	var matchID int64

	err := s.store.Transaction(ctx, func(tx repositories.MatchStore) error {
		application, err := tx.FindApplication(ctx, applicationID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.ErrApplicationNotFound
			}
			return apperrors.DatabaseError(err)
		}

		// Lock the notification row first; every state decision below is
		// made against the locked row, not the snapshot on the application.
		n, err := tx.LockNotification(ctx, application.NotificationID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return apperrors.ErrNotificationNotFound
			}
			return apperrors.DatabaseError(err)
		}
		if n.OwnerID() != posterID {
			return apperrors.ErrNotNotificationOwner
		}
		if n.Matched {
			return apperrors.ErrAlreadyMatched
		}

		if err := tx.MarkMatched(ctx, n.ID); err != nil {
			return apperrors.DatabaseError(err)
		}
		if err := tx.SetApplicationStatus(ctx, application.ID, models.ApplicationStatusAccepted); err != nil {
			return apperrors.DatabaseError(err)
		}
		if err := tx.RejectSiblings(ctx, n.ID, application.ID); err != nil {
			return apperrors.DatabaseError(err)
		}

		match := &models.Match{
			ApplicationID:  application.ID,
			NotificationID: n.ID,
		}
		if err := tx.CreateMatch(ctx, match); err != nil {
			return apperrors.DatabaseError(err)
		}
		matchID = match.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	match, err := s.store.FindMatchWithDetails(ctx, matchID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := dto.ToMatchResponse(match)
	return &resp, nil
}

// GetMatch returns the match with both sides loaded. Only the poster and the
// matched applicant may see it.
func (s *MatchService) GetMatch(ctx context.Context, viewerID, matchID int64) (*dto.MatchResponse, error) {
	match, err := s.store.FindMatchWithDetails(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	if viewerID != match.Notification.OwnerID() && viewerID != match.Application.MemberID {
		return nil, apperrors.ErrForbidden
	}

	resp := dto.ToMatchResponse(match)
	return &resp, nil
}
