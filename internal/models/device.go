package models

import (
	"time"

	"github.com/google/uuid"
)

type DeviceStatus string

const (
	DeviceActive  DeviceStatus = "active"
	DeviceBlocked DeviceStatus = "blocked"
)

type Device struct {
	ID             uuid.UUID    `db:"id"              json:"id"`
	UserID         uuid.UUID    `db:"user_id"         json:"userId"`
	Fingerprint    string       `db:"fingerprint"     json:"fingerprint"`
	Status         DeviceStatus `db:"status"          json:"status"`
	DeviceType     string       `db:"device_type"     json:"deviceType"`
	UA             string       `db:"user_agent"      json:"ua"`
	IP             string       `db:"ip"              json:"ip"`
	AutoRegistered bool         `db:"auto_registered" json:"autoRegistered"`
	FirstSeen      time.Time    `db:"first_seen"      json:"firstSeen"`
	LastSeen       time.Time    `db:"last_seen"       json:"lastSeen"`
}
