package dto

import "dogwalking_backend/internal/models"

type SignupRequest struct {
	Nickname string `json:"nickname" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	Member      MemberSummary `json:"member"`
}

type MemberSummary struct {
	MemberID     int64  `json:"memberId"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
}

type ProfileResponse struct {
	MemberID       int64        `json:"memberId"`
	Nickname       string       `json:"nickname"`
	Email          string       `json:"email"`
	ProfileImage   string       `json:"profileImage"`
	ProfileContent string       `json:"profileContent"`
	Coin           float64      `json:"coin"`
	DogBowl        int          `json:"dogBowl"`
	Dogs           []DogSummary `json:"dogs"`
}

type UpdateProfileRequest struct {
	ProfileContent string `form:"profileContent" validate:"max=1000"`
}

func ToMemberSummary(m *models.Member) MemberSummary {
	return MemberSummary{
		MemberID:     m.ID,
		Nickname:     m.Nickname,
		ProfileImage: m.ProfileImage,
	}
}
