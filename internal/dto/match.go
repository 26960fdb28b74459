package dto

import (
	"time"

	"dogwalking_backend/internal/models"
)

type SelectMatchRequest struct {
	ApplicationID int64 `json:"applicationId" validate:"required"`
}

type MatchResponse struct {
	MatchID      int64               `json:"matchId"`
	Notification NotificationSummary `json:"notification"`
	Applicant    MemberSummary       `json:"applicant"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToMatchResponse expects a match with application (incl. member) and
// notification (incl. dog) eagerly loaded.
func ToMatchResponse(m *models.Match) MatchResponse {
	return MatchResponse{
		MatchID:      m.ID,
		Notification: ToNotificationSummary(&m.Notification),
		Applicant:    ToMemberSummary(&m.Application.Member),
		CreatedAt:    m.CreatedAt,
	}
}
