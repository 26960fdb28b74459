package models

import "time"

// Notification is a walking-job posting. It stays open for applications
// until a match is made, at which point Matched flips and no further
// applications are accepted.
type Notification struct {
	ID          int64     `gorm:"primaryKey" json:"notificationId"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Significant string    `gorm:"type:text" json:"significant"`
	Lat         float64   `gorm:"not null" json:"lat"`
	Lng         float64   `gorm:"not null" json:"lng"`
	Coin        float64   `gorm:"not null" json:"coin"`
	StartTime   time.Time `gorm:"not null" json:"start"`
	EndTime     time.Time `gorm:"not null" json:"end"`
	Matched     bool      `gorm:"not null;default:false" json:"matched"`
	DogID       int64     `gorm:"index;not null" json:"dogId"`
	Dog         Dog       `gorm:"foreignKey:DogID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// OwnerID returns the posting member's id. Requires Dog to be loaded.
func (n *Notification) OwnerID() int64 {
	return n.Dog.MemberID
}
