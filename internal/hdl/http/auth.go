package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/auth/captcha"
	"github.com/JMURv/trust-bridge/internal/auth/jwt"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/ctrl"
	"github.com/JMURv/trust-bridge/internal/dto"
	"github.com/JMURv/trust-bridge/internal/hdl"
	"github.com/JMURv/trust-bridge/internal/hdl/http/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// register godoc
//
//	@Summary		Register a new account
//	@Description	Creates a trial account and returns an access and refresh token pair
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterRequest	true	"Account data"
//	@Success		201		{object}	dto.RegisterResponse
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		409		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/api/auth/register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req := &dto.RegisterRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// login godoc
//
//	@Summary		Authenticate using email or phone and password
//	@Description	Verify reCAPTCHA, authenticate and open a web session
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			User-Agent	header		string				true	"Client User-Agent"
//	@Param			body		body		dto.LoginRequest	true	"Login credentials"
//	@Success		200			{object}	dto.LoginResponse
//	@Failure		400			{object}	utils.ErrorsResponse
//	@Failure		401			{object}	utils.ErrorsResponse
//	@Failure		500			{object}	utils.ErrorsResponse
//	@Router			/api/auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}
	d.Endpoint = r.URL.Path

	req := &dto.LoginRequest{}
	if ok = utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	valid, err := h.au.VerifyRecaptcha(r.Context(), req.Token, captcha.PassAuth)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}
	if !valid {
		utils.ErrResponse(w, http.StatusUnauthorized, captcha.ErrValidationFailed)
		return
	}

	res, err := h.ctrl.Authenticate(r.Context(), &d, req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, ctrl.ErrAccountInactive) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// refresh godoc
//
//	@Summary		Refresh token pair
//	@Description	Exchange a valid refresh token for a new token pair
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	dto.TokenPair
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		401		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/api/auth/refresh [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, req); !ok {
		return
	}

	res, err := h.ctrl.Refresh(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrInvalidToken),
			errors.Is(err, jwt.ErrTokenExpired),
			errors.Is(err, jwt.ErrWrongTokenType),
			errors.Is(err, auth.ErrTokenRevoked),
			errors.Is(err, ctrl.ErrAccountInactive):
			utils.ErrResponse(w, http.StatusUnauthorized, err)
		default:
			utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		}
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// logout godoc
//
//	@Summary		Logout
//	@Description	End the web session bound to the token and revoke refresh tokens
//	@Tags			Authentication
//	@Produce		json
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		200				"Logged out"
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		500				{object}	utils.ErrorsResponse	"internal error"
//	@Router			/api/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUUID.Error(), zap.Any("uid", r.Context().Value(config.UidKey)))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	var sid *uuid.UUID
	if v, ok := r.Context().Value(config.SidKey).(uuid.UUID); ok {
		sid = &v
	}

	if err := h.ctrl.Logout(r.Context(), uid, sid); err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// refreshSession godoc
//
//	@Summary		Keep the web session alive
//	@Tags			Sessions
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		200				"Session touched"
//	@Failure		400				{object}	utils.ErrorsResponse
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		500				{object}	utils.ErrorsResponse
//	@Router			/api/auth/session/refresh [post]
func (h *Handler) refreshSession(w http.ResponseWriter, r *http.Request) {
	sid, ok := r.Context().Value(config.SidKey).(uuid.UUID)
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoWebSession)
		return
	}

	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	if err := h.ctrl.TouchSession(r.Context(), sid, d.IP); err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// validateSession godoc
//
//	@Summary		Exchange a live web session for an extension token
//	@Tags			Sessions
//	@Produce		json
//	@Param			Authorization			header		string	true	"Bearer access token"
//	@Param			X-Device-Fingerprint	header		string	false	"Device fingerprint"
//	@Success		200						{object}	dto.SessionValidateResponse
//	@Failure		401						{object}	utils.ErrorsResponse
//	@Failure		403						{object}	utils.ErrorsResponse
//	@Failure		500						{object}	utils.ErrorsResponse
//	@Router			/api/auth/session/validate [post]
func (h *Handler) validateSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUUID.Error(), zap.Any("uid", r.Context().Value(config.UidKey)))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}
	d.Endpoint = r.URL.Path

	res, err := h.ctrl.ValidateExtensionSession(r.Context(), uid, r.Header.Get(config.HeaderFingerprint), &d)
	if err != nil {
		utils.GateErrResponse(w, err)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
