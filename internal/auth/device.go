package auth

import "strings"

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceUnknown = "unknown"
)

// DeviceType classifies a user agent string for device records.
func DeviceType(ua string) string {
	if ua == "" {
		return DeviceUnknown
	}

	l := strings.ToLower(ua)
	switch {
	case strings.Contains(l, "ipad") || strings.Contains(l, "tablet"):
		return DeviceTablet
	case strings.Contains(l, "android") && !strings.Contains(l, "mobile"):
		return DeviceTablet
	case strings.Contains(l, "mobile") || strings.Contains(l, "iphone"):
		return DeviceMobile
	case strings.Contains(l, "windows") || strings.Contains(l, "macintosh") ||
		strings.Contains(l, "linux") || strings.Contains(l, "cros"):
		return DeviceDesktop
	}

	return DeviceUnknown
}
