package http

import (
	mid "github.com/JMURv/trust-bridge/internal/hdl/http/middleware"
)

func (h *Handler) RegisterRoutes() {
	h.RegisterAuthRoutes()
	h.RegisterUserRoutes()
	h.RegisterExtensionRoutes()
	h.RegisterAdminRoutes()
}

func (h *Handler) RegisterAuthRoutes() {
	h.router.Post("/api/auth/register", h.register)
	h.router.With(mid.Device).Post("/api/auth/login", h.login)
	h.router.Post("/api/auth/refresh", h.refresh)
	h.router.With(mid.Auth(h.au)).Post("/api/auth/logout", h.logout)
	h.router.With(mid.Auth(h.au), mid.Device).Post("/api/auth/session/refresh", h.refreshSession)
	h.router.With(mid.Auth(h.au), mid.Device).Post("/api/auth/session/validate", h.validateSession)
}

func (h *Handler) RegisterUserRoutes() {
	h.router.With(mid.Auth(h.au)).Get("/api/users/me", h.me)
	h.router.With(mid.Auth(h.au)).Delete("/api/users/me", h.deleteMe)
}

func (h *Handler) RegisterExtensionRoutes() {
	gated := h.router.With(mid.Extension(h.ctrl), mid.Device)
	gated.Get("/api/extension/me", h.extensionMe)
	gated.Get("/api/extension/devices", h.extensionDevices)
	gated.With(mid.RateLimit(h.ctrl)).Post("/api/extension/usage", h.extensionUsage)
}

func (h *Handler) RegisterAdminRoutes() {
	admin := h.router.With(mid.AdminKey(h.adminKey))
	admin.Post("/api/admin/devices/{id}/block", h.blockDevice)
	admin.Get("/api/admin/security-events", h.securityEvents)
}
