package models

import (
	"time"

	"github.com/google/uuid"
)

type RefreshToken struct {
	ID        uint64     `db:"id"         json:"id"`
	UserID    uuid.UUID  `db:"user_id"    json:"userId"`
	TokenHash string     `db:"token_hash" json:"-"`
	SessionID *uuid.UUID `db:"session_id" json:"sessionId,omitempty"`
	ExpiresAt time.Time  `db:"expires_at" json:"expiresAt"`
	Revoked   bool       `db:"revoked"    json:"revoked"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}

type WebSession struct {
	ID                uuid.UUID  `db:"id"                 json:"id"`
	UserID            uuid.UUID  `db:"user_id"            json:"userId"`
	IsActive          bool       `db:"is_active"          json:"isActive"`
	IP                string     `db:"ip"                 json:"ip"`
	UA                string     `db:"user_agent"         json:"ua"`
	DeviceFingerprint *string    `db:"device_fingerprint" json:"deviceFingerprint,omitempty"`
	CreatedAt         time.Time  `db:"created_at"         json:"createdAt"`
	LastActivity      time.Time  `db:"last_activity"      json:"lastActivity"`
	LoggedOutAt       *time.Time `db:"logged_out_at"      json:"loggedOutAt,omitempty"`
}
