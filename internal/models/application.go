package models

import "time"

// ApplicationStatus is the lifecycle of a single application. Siblings of
// an accepted application are rejected in the same transaction that creates
// the match, so applicants can observe the outcome.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Application records a member's intent to take a posted walk. At most one
// live application per (member, notification) pair is allowed; the service
// layer enforces it.
type Application struct {
	ID             int64             `gorm:"primaryKey" json:"applicationId"`
	MemberID       int64             `gorm:"index;not null" json:"memberId"`
	Member         Member            `gorm:"foreignKey:MemberID" json:"-"`
	NotificationID int64             `gorm:"index;not null" json:"notificationId"`
	Notification   Notification      `gorm:"foreignKey:NotificationID" json:"-"`
	Status         ApplicationStatus `gorm:"size:20;not null;default:pending" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
