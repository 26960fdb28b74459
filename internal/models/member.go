package models

import "time"

// Member is a registered user. Members are never hard-deleted; coin is the
// wallet balance, dogBowl a reputation counter shown on the profile page.
type Member struct {
	ID             int64   `gorm:"primaryKey" json:"memberId"`
	Nickname       string  `gorm:"size:100;not null" json:"nickname"`
	Email          string  `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash   string  `gorm:"size:255;not null" json:"-"`
	ProfileImage   string  `gorm:"size:512" json:"profileImage"`
	ProfileContent string  `gorm:"type:text" json:"profileContent"`
	Coin           float64 `gorm:"not null;default:0" json:"coin"`
	DogBowl        int     `gorm:"not null;default:0" json:"dogBowl"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
