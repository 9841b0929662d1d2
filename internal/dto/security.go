package dto

import (
	"time"

	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/google/uuid"
)

type SecurityEventFilter struct {
	Type     md.SecurityEventType
	Severity md.Severity
	UserID   *uuid.UUID
	Since    *time.Time
	Limit    int
}
