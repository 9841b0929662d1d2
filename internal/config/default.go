package config

import "time"

type ctxKey string

const (
	UidKey    ctxKey = "uid"
	SidKey    ctxKey = "sid"
	IpKey     ctxKey = "ip"
	UaKey     ctxKey = "ua"
	ExtCtxKey ctxKey = "extension"
)

const ErrorSpanTag = "error"

const (
	UserCacheTime      = 5 * time.Minute
	DefaultEventsLimit = 100
	MaxEventsLimit     = 1000
)

const (
	ExtensionOriginScheme = "chrome-extension://"
	ExtensionScope        = "extension"
	RefreshTokenType      = "refresh"
)

const (
	HeaderFingerprint = "X-Device-Fingerprint"
	HeaderExtensionID = "X-Extension-Id"
	HeaderAdminKey    = "X-Admin-Key"
)
