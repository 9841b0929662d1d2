package dto

import (
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/google/uuid"
)

// DeviceRequest is the request metadata attached by the Device middleware.
type DeviceRequest struct {
	IP       string `json:"ip"`
	UA       string `json:"ua"`
	Endpoint string `json:"endpoint,omitempty"`
}

type DeviceValidation struct {
	Valid    bool       `json:"valid"`
	DeviceID *uuid.UUID `json:"deviceId,omitempty"`
	IsNew    bool       `json:"isNew"`
	Reason   string     `json:"reason,omitempty"`
	Device   *md.Device `json:"-"`
}
