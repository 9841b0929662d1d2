package models

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type SecurityEventType string

const (
	EventRateLimitExceeded     SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventDailyLimitExceeded    SecurityEventType = "DAILY_LIMIT_EXCEEDED"
	EventDeviceLimitExceeded   SecurityEventType = "DEVICE_LIMIT_EXCEEDED"
	EventDeviceAutoRegistered  SecurityEventType = "DEVICE_AUTO_REGISTERED"
	EventDeviceBlocked         SecurityEventType = "DEVICE_BLOCKED"
	EventBlockedDeviceAttempt  SecurityEventType = "BLOCKED_DEVICE_ATTEMPT"
	EventDeviceRegistrationOff SecurityEventType = "DEVICE_REGISTRATION_DISABLED"
	EventSuspiciousActivity    SecurityEventType = "SUSPICIOUS_ACTIVITY_DETECTED"
	EventInvalidOrigin         SecurityEventType = "INVALID_ORIGIN"
	EventInvalidExtension      SecurityEventType = "INVALID_EXTENSION"
	EventWebAuthRequired       SecurityEventType = "WEB_AUTH_REQUIRED"
)

// Details is a free-form payload stored as jsonb.
type Details map[string]any

func (d Details) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

func (d *Details) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = Details{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported details type")
	}
	return json.Unmarshal(raw, d)
}

type SecurityEvent struct {
	ID        uint64            `db:"id"         json:"id"`
	Type      SecurityEventType `db:"type"       json:"type"`
	Severity  Severity          `db:"severity"   json:"severity"`
	UserID    *uuid.UUID        `db:"user_id"    json:"userId,omitempty"`
	IP        string            `db:"ip"         json:"ip"`
	UA        string            `db:"user_agent" json:"ua"`
	Endpoint  string            `db:"endpoint"   json:"endpoint"`
	Details   Details           `db:"details"    json:"details"`
	CreatedAt time.Time         `db:"created_at" json:"createdAt"`
}

type ExtensionRequestLog struct {
	ID        uint64     `db:"id"         json:"id"`
	UserID    *uuid.UUID `db:"user_id"    json:"userId,omitempty"`
	IP        string     `db:"ip"         json:"ip"`
	UA        string     `db:"user_agent" json:"ua"`
	Endpoint  string     `db:"endpoint"   json:"endpoint"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}
