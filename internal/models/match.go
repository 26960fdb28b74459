package models

import "time"

// Match binds exactly one accepted application to its notification. The
// notification reference is denormalized so a match can be fetched with both
// sides in one query. Immutable after creation.
type Match struct {
	ID             int64        `gorm:"primaryKey" json:"matchId"`
	ApplicationID  int64        `gorm:"uniqueIndex;not null" json:"applicationId"`
	Application    Application  `gorm:"foreignKey:ApplicationID" json:"-"`
	NotificationID int64        `gorm:"uniqueIndex;not null" json:"notificationId"`
	Notification   Notification `gorm:"foreignKey:NotificationID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
