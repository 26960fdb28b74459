package models

import "time"

// Dog is a walking-target profile. A dog belongs to exactly one member.
type Dog struct {
	ID       int64  `gorm:"primaryKey" json:"dogId"`
	Breed    string `gorm:"size:100;not null" json:"breed"`
	Name     string `gorm:"size:100;not null" json:"dogName"`
	Image    string `gorm:"size:512" json:"image"`
	Sex      string `gorm:"size:20" json:"sex"`
	Size     string `gorm:"size:20" json:"size"`
	MemberID int64  `gorm:"index;not null" json:"memberId"`
	Member   Member `gorm:"foreignKey:MemberID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
