package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,max=128"`
	Email    string `json:"email"    validate:"required_without=Phone,omitempty,email"`
	Phone    string `json:"phone"    validate:"required_without=Email,omitempty,e164"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email       string `json:"email"    validate:"required_without=Phone,omitempty,email"`
	Phone       string `json:"phone"    validate:"required_without=Email,omitempty,e164"`
	Password    string `json:"password"          validate:"required"`
	Token       string `json:"token"`
	Fingerprint string `json:"deviceFingerprint" validate:"max=512"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type RegisterResponse struct {
	ID uuid.UUID `json:"id"`
	TokenPair
}

type LoginResponse struct {
	TokenPair
	SessionID uuid.UUID `json:"sessionId"`
}

type LiveSession struct {
	Active       bool       `json:"active"`
	SessionID    *uuid.UUID `json:"sessionId,omitempty"`
	LastActivity *time.Time `json:"lastActivity,omitempty"`
}

type SessionValidateResponse struct {
	Valid     bool              `json:"valid"`
	Token     string            `json:"token"`
	ExpiresIn int64             `json:"expiresIn"`
	SessionID uuid.UUID         `json:"sessionId"`
	Device    *DeviceValidation `json:"device,omitempty"`
}
