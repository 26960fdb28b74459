package dto

import (
	"time"

	"dogwalking_backend/internal/models"
)

type ApplyRequest struct {
	NotificationID int64 `json:"notificationId" validate:"required"`
}

// ApplicantView is what the poster sees when listing applicants.
type ApplicantView struct {
	ApplicationID int64                    `json:"applicationId"`
	Applicant     MemberSummary            `json:"applicant"`
	Status        models.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// MyApplicationView is what an applicant sees in their own list.
type MyApplicationView struct {
	ApplicationID int64                    `json:"applicationId"`
	Status        models.ApplicationStatus `json:"status"`
	Notification  NotificationSummary      `json:"notification"`
	CreatedAt     time.Time                `json:"createdAt"`
}

func ToApplicantView(a *models.Application) ApplicantView {
	return ApplicantView{
		ApplicationID: a.ID,
		Applicant:     ToMemberSummary(&a.Member),
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
	}
}

func ToMyApplicationView(a *models.Application) MyApplicationView {
	return MyApplicationView{
		ApplicationID: a.ID,
		Status:        a.Status,
		Notification:  ToNotificationSummary(&a.Notification),
		CreatedAt:     a.CreatedAt,
	}
}
