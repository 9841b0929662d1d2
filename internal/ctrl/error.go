package ctrl

import "errors"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when a resource already exists.
var ErrAlreadyExists = errors.New("already exists")

var ErrAccountInactive = errors.New("account is deactivated")
var ErrDailyLimitExceeded = errors.New("daily request limit exceeded")
var ErrRateLimited = errors.New("hourly request limit exceeded")
