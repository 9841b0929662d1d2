package dto

import (
	md "github.com/JMURv/trust-bridge/internal/models"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type PatternType string

const (
	PatternHighFrequencyIP     PatternType = "HIGH_FREQUENCY_IP"
	PatternSuspiciousUA        PatternType = "SUSPICIOUS_USER_AGENT"
	PatternEndpointAbuse       PatternType = "ENDPOINT_ABUSE"
	PatternMultipleUsersSameIP PatternType = "MULTIPLE_USERS_SAME_IP"
	PatternRepeatedViolations  PatternType = "REPEATED_SECURITY_VIOLATIONS"
)

type RiskPattern struct {
	Type      PatternType    `json:"type"`
	RiskLevel RiskLevel      `json:"riskLevel"`
	Details   map[string]any `json:"details"`
}

// ExtensionRequest holds everything the gate needs from one extension call.
type ExtensionRequest struct {
	Origin      string
	ExtensionID string
	Token       string
	Fingerprint string
	IP          string
	UA          string
	Endpoint    string
}

// ExtensionContext is attached to admitted requests.
type ExtensionContext struct {
	User        *md.User      `json:"user"`
	Device      *md.Device    `json:"device,omitempty"`
	Session     *LiveSession  `json:"session"`
	Patterns    []RiskPattern `json:"patterns,omitempty"`
	ExtensionID string        `json:"extensionId"`
}

type UsageResponse struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

type ExtensionMeResponse struct {
	User        *UserResponse `json:"user"`
	Device      *md.Device    `json:"device,omitempty"`
	Session     *LiveSession  `json:"session"`
	ExtensionID string        `json:"extensionId"`
}
