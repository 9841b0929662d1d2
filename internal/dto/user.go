package dto

import (
	"time"

	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/google/uuid"
)

type UserResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Email         *string    `json:"email,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	IsActive      bool       `json:"isActive"`
	Tier          md.Tier    `json:"tier"`
	TrialEndsAt   *time.Time `json:"trialEndsAt,omitempty"`
	DailyRequests int        `json:"dailyRequests"`
}

func NewUserResponse(u *md.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		IsActive:      u.IsActive,
		Tier:          u.Tier,
		TrialEndsAt:   u.TrialEndsAt,
		DailyRequests: u.DailyRequests,
	}
}
