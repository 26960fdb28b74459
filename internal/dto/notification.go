package dto

import (
	"time"

	"dogwalking_backend/internal/models"
)

type WriteNotificationRequest struct {
	DogID       int64     `json:"dogId" validate:"required"`
	Title       string    `json:"title" validate:"required,max=255"`
	Significant string    `json:"significant" validate:"max=1000"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end" validate:"required"`
	Coin        float64   `json:"coin" validate:"required,min=0"`
	Lat         float64   `json:"lat" validate:"required"`
	Lng         float64   `json:"lng" validate:"required"`
}

type NotificationSummary struct {
	NotificationID int64      `json:"notificationId"`
	Title          string     `json:"title"`
	Coin           float64    `json:"coin"`
	Lat            float64    `json:"lat"`
	Lng            float64    `json:"lng"`
	Start          time.Time  `json:"start"`
	End            time.Time  `json:"end"`
	Matched        bool       `json:"matched"`
	Dog            DogSummary `json:"dog"`
}

type NotificationDetail struct {
	NotificationSummary
	Significant      string        `json:"significant"`
	IsMine           bool          `json:"isMine"`
	Poster           MemberSummary `json:"poster"`
	ApplicationCount int           `json:"applicationCount"`
}

// NotificationListResponse carries the board page: the viewer's own dogs for
// the posting form alongside the open postings.
type NotificationListResponse struct {
	Dogs          []DogSummary          `json:"dogs"`
	Notifications []NotificationSummary `json:"notifications"`
}

func ToNotificationSummary(n *models.Notification) NotificationSummary {
	return NotificationSummary{
		NotificationID: n.ID,
		Title:          n.Title,
		Coin:           n.Coin,
		Lat:            n.Lat,
		Lng:            n.Lng,
		Start:          n.StartTime,
		End:            n.EndTime,
		Matched:        n.Matched,
		Dog:            ToDogSummary(&n.Dog),
	}
}

func ToNotificationSummaries(ns []models.Notification) []NotificationSummary {
	out := make([]NotificationSummary, 0, len(ns))
	for i := range ns {
		out = append(out, ToNotificationSummary(&ns[i]))
	}
	return out
}
