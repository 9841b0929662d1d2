package ctrl

type GateCode string

const (
	CodeInvalidOrigin       GateCode = "INVALID_ORIGIN"
	CodeInvalidExtension    GateCode = "INVALID_EXTENSION"
	CodeUnauthenticated     GateCode = "UNAUTHENTICATED"
	CodeAccountDeactivated  GateCode = "ACCOUNT_DEACTIVATED"
	CodeTrialExpired        GateCode = "TRIAL_EXPIRED"
	CodeWebAuthRequired     GateCode = "WEB_AUTH_REQUIRED"
	CodeDeviceNotAuthorized GateCode = "DEVICE_NOT_AUTHORIZED"
	CodeSecurityViolation   GateCode = "SECURITY_VIOLATION"
	CodeInternal            GateCode = "INTERNAL_ERROR"
)

// GateError is the rejection produced by the extension gate.
type GateError struct {
	Code        GateCode
	Message     string
	WebLoginURL string
	Err         error
}

func (e *GateError) Error() string {
	return e.Message
}

func (e *GateError) Unwrap() error {
	return e.Err
}
