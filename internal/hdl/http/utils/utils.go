package utils

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/ctrl"
	"github.com/JMURv/trust-bridge/internal/dto"
	"github.com/JMURv/trust-bridge/internal/hdl"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeDailyLimitExceeded = "DAILY_LIMIT_EXCEEDED"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Response struct {
	Data any `json:"data"`
}

type ErrorsResponse struct {
	Errors      []string `json:"errors"`
	Code        string   `json:"code,omitempty"`
	WebLoginURL string   `json:"webLoginUrl,omitempty"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(&Response{Data: data}); err != nil {
		zap.L().Debug("failed to encode response", zap.Error(err))
	}
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, err error) {
	writeErrors(w, statusCode, &ErrorsResponse{Errors: []string{err.Error()}})
}

func CodeErrResponse(w http.ResponseWriter, statusCode int, code string, err error) {
	writeErrors(w, statusCode, &ErrorsResponse{Errors: []string{err.Error()}, Code: code})
}

// GateErrResponse writes a gate rejection. Anything that is not a *ctrl.GateError is a 500.
func GateErrResponse(w http.ResponseWriter, err error) {
	gerr := &ctrl.GateError{}
	if !errors.As(err, &gerr) {
		ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	msg := gerr.Message
	if gerr.Code == ctrl.CodeInternal {
		msg = hdl.ErrInternal.Error()
	}
	writeErrors(
		w, GateStatus(gerr.Code), &ErrorsResponse{
			Errors:      []string{msg},
			Code:        string(gerr.Code),
			WebLoginURL: gerr.WebLoginURL,
		},
	)
}

func GateStatus(code ctrl.GateCode) int {
	switch code {
	case ctrl.CodeInvalidOrigin, ctrl.CodeInvalidExtension, ctrl.CodeTrialExpired, ctrl.CodeDeviceNotAuthorized:
		return http.StatusForbidden
	case ctrl.CodeUnauthenticated, ctrl.CodeAccountDeactivated, ctrl.CodeWebAuthRequired:
		return http.StatusUnauthorized
	case ctrl.CodeSecurityViolation:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func writeErrors(w http.ResponseWriter, statusCode int, res *ErrorsResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		zap.L().Debug("failed to encode error response", zap.Error(err))
	}
}

// ParseAndValidate decodes the body into dst and runs struct validation,
// writing a 400 on failure.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		zap.L().Debug("failed to decode request", zap.Error(err))
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		ErrResponse(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func ParseDeviceByRequest(ctx context.Context) (dto.DeviceRequest, bool) {
	ip, ok := ctx.Value(config.IpKey).(string)
	if !ok {
		return dto.DeviceRequest{}, false
	}

	ua, ok := ctx.Value(config.UaKey).(string)
	if !ok {
		return dto.DeviceRequest{}, false
	}
	return dto.DeviceRequest{IP: ip, UA: ua}, true
}

func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
