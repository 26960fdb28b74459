package dto

import "dogwalking_backend/internal/models"

// DogForm is the multipart body for creating and updating a dog profile.
// The image part is handled separately by the handler.
type DogForm struct {
	Breed string `form:"breed" validate:"required,max=100"`
	Name  string `form:"name" validate:"required,max=100"`
	Sex   string `form:"sex" validate:"required"`
	Size  string `form:"size" validate:"required"`
}

type DogSummary struct {
	DogID int64  `json:"dogId"`
	Name  string `json:"dogName"`
	Breed string `json:"breed"`
	Image string `json:"image"`
	Sex   string `json:"sex"`
	Size  string `json:"size"`
}

type DogDetail struct {
	DogSummary
	OwnerID       int64  `json:"memberId"`
	OwnerNickname string `json:"ownerNickname"`
}

func ToDogSummary(d *models.Dog) DogSummary {
	return DogSummary{
		DogID: d.ID,
		Name:  d.Name,
		Breed: d.Breed,
		Image: d.Image,
		Sex:   d.Sex,
		Size:  d.Size,
	}
}

func ToDogSummaries(dogs []models.Dog) []DogSummary {
	out := make([]DogSummary, 0, len(dogs))
	for i := range dogs {
		out = append(out, ToDogSummary(&dogs[i]))
	}
	return out
}
