package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")

var ErrToRetrievePathArg = errors.New("error to retrieve path argument")
var ErrToRetrieveQueryArg = errors.New("error to retrieve query argument")
var ErrFailedToGetUUID = errors.New("failed to get uid from context")
var ErrFailedToParseUUID = errors.New("failed to parse uid")

var ErrNoDeviceInfo = errors.New("no device info")
var ErrMissingToken = errors.New("missing access token")
var ErrNoWebSession = errors.New("token is not bound to a web session")
var ErrInvalidAdminKey = errors.New("invalid admin key")
