package models

import (
	"time"

	"github.com/google/uuid"
)

type Tier string

const (
	TierTrial   Tier = "trial"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

type User struct {
	ID              uuid.UUID  `db:"id"                json:"id"`
	Name            string     `db:"name"              json:"name"`
	Email           *string    `db:"email"             json:"email,omitempty"`
	Phone           *string    `db:"phone"             json:"phone,omitempty"`
	Password        string     `db:"password"          json:"-"`
	IsActive        bool       `db:"is_active"         json:"isActive"`
	IsDeleted       bool       `db:"is_deleted"        json:"isDeleted"`
	Tier            Tier       `db:"tier"              json:"tier"`
	TrialEndsAt     *time.Time `db:"trial_ends_at"     json:"trialEndsAt,omitempty"`
	DailyRequests   int        `db:"daily_requests"    json:"dailyRequests"`
	RequestsResetAt time.Time  `db:"requests_reset_at" json:"requestsResetAt"`
	CreatedAt       time.Time  `db:"created_at"        json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at"        json:"updatedAt"`
}

// TrialExpired reports whether a trial-tier user is past the trial end.
// Paid tiers never expire here.
func (u *User) TrialExpired(now time.Time) bool {
	if u.Tier != TierTrial || u.TrialEndsAt == nil {
		return false
	}
	return now.After(*u.TrialEndsAt)
}
