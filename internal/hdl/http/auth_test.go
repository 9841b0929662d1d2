package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JMURv/trust-bridge/internal/auth"
	"github.com/JMURv/trust-bridge/internal/auth/captcha"
	"github.com/JMURv/trust-bridge/internal/auth/jwt"
	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/ctrl"
	"github.com/JMURv/trust-bridge/internal/dto"
	"github.com/JMURv/trust-bridge/internal/hdl"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Register(t *testing.T) {
	const uri = "/api/auth/register"
	testErr := errors.New("testErr")
	uid := uuid.New()

	valid := map[string]any{
		"name":     "User",
		"email":    "user@example.com",
		"password": "password123",
	}

	tests := []struct {
		name       string
		payload    any
		status     int
		expect     func(mctrl *mockCtrl)
		assertions func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:    "ErrDecodeRequest",
			payload: map[string]any{"name": 1},
			status:  http.StatusBadRequest,
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, hdl.ErrDecodeRequest.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:    "MissingPassword",
			payload: map[string]any{"name": "User", "email": "user@example.com"},
			status:  http.StatusBadRequest,
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeErrors(t, w).Errors[0], "Password")
			},
		},
		{
			name:    "MissingEmailAndPhone",
			payload: map[string]any{"name": "User", "password": "password123"},
			status:  http.StatusBadRequest,
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, decodeErrors(t, w).Errors[0], "required_without")
			},
		},
		{
			name:    "AlreadyExists",
			payload: valid,
			status:  http.StatusConflict,
			expect: func(mctrl *mockCtrl) {
				mctrl.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, ctrl.ErrAlreadyExists)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, ctrl.ErrAlreadyExists.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:    "InternalError",
			payload: valid,
			status:  http.StatusInternalServerError,
			expect: func(mctrl *mockCtrl) {
				mctrl.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, testErr)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, hdl.ErrInternal.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:    "Success",
			payload: valid,
			status:  http.StatusCreated,
			expect: func(mctrl *mockCtrl) {
				mctrl.EXPECT().Register(
					gomock.Any(), &dto.RegisterRequest{
						Name:     "User",
						Email:    "user@example.com",
						Password: "password123",
					},
				).Return(
					&dto.RegisterResponse{ID: uid, TokenPair: dto.TokenPair{Access: "a", Refresh: "r"}}, nil,
				)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				res := decodeData[dto.RegisterResponse](t, w)
				assert.Equal(t, uid, res.ID)
				assert.Equal(t, "a", res.Access)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				h, mctrl, _ := newTestHandler(t)
				if tt.expect != nil {
					tt.expect(mctrl)
				}

				w := httptest.NewRecorder()
				h.register(w, newJSONRequest(t, http.MethodPost, uri, tt.payload))
				assert.Equal(t, tt.status, w.Result().StatusCode)
				tt.assertions(t, w)
			},
		)
	}
}

func TestHandler_Login(t *testing.T) {
	const uri = "/api/auth/login"
	testErr := errors.New("testErr")
	sid := uuid.New()

	payload := map[string]any{
		"email":             "user@example.com",
		"password":          "password123",
		"token":             "captcha",
		"deviceFingerprint": "fp-1",
	}
	device := &dto.DeviceRequest{IP: testIP, UA: testUA, Endpoint: uri}
	login := &dto.LoginRequest{
		Email:       "user@example.com",
		Password:    "password123",
		Token:       "captcha",
		Fingerprint: "fp-1",
	}

	tests := []struct {
		name       string
		noDevice   bool
		status     int
		expect     func(mctrl *mockCtrl, mauth *mockCore)
		assertions func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:     "ErrNoDeviceInfo",
			noDevice: true,
			status:   http.StatusBadRequest,
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, hdl.ErrNoDeviceInfo.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:   "CaptchaFailure",
			status: http.StatusInternalServerError,
			expect: func(_ *mockCtrl, mauth *mockCore) {
				mauth.EXPECT().VerifyRecaptcha(gomock.Any(), "captcha", captcha.PassAuth).Return(false, testErr)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, hdl.ErrInternal.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:   "CaptchaRejected",
			status: http.StatusUnauthorized,
			expect: func(_ *mockCtrl, mauth *mockCore) {
				mauth.EXPECT().VerifyRecaptcha(gomock.Any(), "captcha", captcha.PassAuth).Return(false, nil)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, captcha.ErrValidationFailed.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:   "InvalidCredentials",
			status: http.StatusUnauthorized,
			expect: func(mctrl *mockCtrl, mauth *mockCore) {
				mauth.EXPECT().VerifyRecaptcha(gomock.Any(), "captcha", captcha.PassAuth).Return(true, nil)
				mctrl.EXPECT().Authenticate(gomock.Any(), device, login).Return(nil, auth.ErrInvalidCredentials)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, auth.ErrInvalidCredentials.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:   "AccountInactive",
			status: http.StatusUnauthorized,
			expect: func(mctrl *mockCtrl, mauth *mockCore) {
				mauth.EXPECT().VerifyRecaptcha(gomock.Any(), "captcha", captcha.PassAuth).Return(true, nil)
				mctrl.EXPECT().Authenticate(gomock.Any(), device, login).Return(nil, ctrl.ErrAccountInactive)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, ctrl.ErrAccountInactive.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:   "InternalError",
			status: http.StatusInternalServerError,
			expect: func(mctrl *mockCtrl, mauth *mockCore) {
				mauth.EXPECT().VerifyRecaptcha(gomock.Any(), "captcha", captcha.PassAuth).Return(true, nil)
				mctrl.EXPECT().Authenticate(gomock.Any(), device, login).Return(nil, testErr)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, hdl.ErrInternal.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:   "Success",
			status: http.StatusOK,
			expect: func(mctrl *mockCtrl, mauth *mockCore) {
				mauth.EXPECT().VerifyRecaptcha(gomock.Any(), "captcha", captcha.PassAuth).Return(true, nil)
				mctrl.EXPECT().Authenticate(gomock.Any(), device, login).Return(
					&dto.LoginResponse{
						TokenPair: dto.TokenPair{Access: "a", Refresh: "r"},
						SessionID: sid,
					}, nil,
				)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				res := decodeData[dto.LoginResponse](t, w)
				assert.Equal(t, sid, res.SessionID)
				assert.Equal(t, "r", res.Refresh)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				h, mctrl, mauth := newTestHandler(t)
				if tt.expect != nil {
					tt.expect(mctrl, mauth)
				}

				req := newJSONRequest(t, http.MethodPost, uri, payload)
				if !tt.noDevice {
					req = withDevice(req)
				}

				w := httptest.NewRecorder()
				h.login(w, req)
				assert.Equal(t, tt.status, w.Result().StatusCode)
				tt.assertions(t, w)
			},
		)
	}
}

func TestHandler_Refresh(t *testing.T) {
	const uri = "/api/auth/refresh"
	payload := map[string]any{"refresh": "refresh-token"}

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "InvalidToken", err: jwt.ErrInvalidToken, status: http.StatusUnauthorized},
		{name: "Expired", err: jwt.ErrTokenExpired, status: http.StatusUnauthorized},
		{name: "WrongType", err: jwt.ErrWrongTokenType, status: http.StatusUnauthorized},
		{name: "Revoked", err: auth.ErrTokenRevoked, status: http.StatusUnauthorized},
		{name: "Inactive", err: ctrl.ErrAccountInactive, status: http.StatusUnauthorized},
		{name: "Internal", err: errors.New("db down"), status: http.StatusInternalServerError},
		{name: "Success", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				h, mctrl, _ := newTestHandler(t)

				var pair *dto.TokenPair
				if tt.err == nil {
					pair = &dto.TokenPair{Access: "a2", Refresh: "r2"}
				}
				mctrl.EXPECT().Refresh(gomock.Any(), &dto.RefreshRequest{Refresh: "refresh-token"}).Return(pair, tt.err)

				w := httptest.NewRecorder()
				h.refresh(w, newJSONRequest(t, http.MethodPost, uri, payload))
				assert.Equal(t, tt.status, w.Result().StatusCode)

				if tt.err == nil {
					res := decodeData[dto.TokenPair](t, w)
					assert.Equal(t, "r2", res.Refresh)
				}
			},
		)
	}
}

func TestHandler_Logout(t *testing.T) {
	const uri = "/api/auth/logout"
	uid := uuid.New()
	sid := uuid.New()

	t.Run(
		"MissingUID", func(t *testing.T) {
			h, _, _ := newTestHandler(t)

			w := httptest.NewRecorder()
			h.logout(w, newJSONRequest(t, http.MethodPost, uri, nil))
			assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
		},
	)

	t.Run(
		"WithSession", func(t *testing.T) {
			h, mctrl, _ := newTestHandler(t)
			mctrl.EXPECT().Logout(gomock.Any(), uid, &sid).Return(nil)

			req := withValue(newJSONRequest(t, http.MethodPost, uri, nil), config.UidKey, uid)
			req = withValue(req, config.SidKey, sid)

			w := httptest.NewRecorder()
			h.logout(w, req)
			assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		},
	)

	t.Run(
		"WithoutSession", func(t *testing.T) {
			h, mctrl, _ := newTestHandler(t)
			mctrl.EXPECT().Logout(gomock.Any(), uid, nil).Return(errors.New("db down"))

			w := httptest.NewRecorder()
			h.logout(w, withValue(newJSONRequest(t, http.MethodPost, uri, nil), config.UidKey, uid))
			assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
		},
	)
}

func TestHandler_RefreshSession(t *testing.T) {
	const uri = "/api/auth/session/refresh"
	sid := uuid.New()

	t.Run(
		"NoWebSession", func(t *testing.T) {
			h, _, _ := newTestHandler(t)

			w := httptest.NewRecorder()
			h.refreshSession(w, withDevice(newJSONRequest(t, http.MethodPost, uri, nil)))
			assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
			assert.Equal(t, hdl.ErrNoWebSession.Error(), decodeErrors(t, w).Errors[0])
		},
	)

	t.Run(
		"Success", func(t *testing.T) {
			h, mctrl, _ := newTestHandler(t)
			mctrl.EXPECT().TouchSession(gomock.Any(), sid, testIP).Return(nil)

			req := withValue(withDevice(newJSONRequest(t, http.MethodPost, uri, nil)), config.SidKey, sid)

			w := httptest.NewRecorder()
			h.refreshSession(w, req)
			assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		},
	)
}

func TestHandler_ValidateSession(t *testing.T) {
	const uri = "/api/auth/session/validate"
	uid := uuid.New()
	sid := uuid.New()
	device := &dto.DeviceRequest{IP: testIP, UA: testUA, Endpoint: uri}

	tests := []struct {
		name       string
		status     int
		expect     func(mctrl *mockCtrl)
		assertions func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:   "NoLiveSession",
			status: http.StatusUnauthorized,
			expect: func(mctrl *mockCtrl) {
				mctrl.EXPECT().ValidateExtensionSession(gomock.Any(), uid, "fp-1", device).Return(
					nil, &ctrl.GateError{
						Code:        ctrl.CodeWebAuthRequired,
						Message:     "Please log in on the website",
						WebLoginURL: "https://example.com/login",
					},
				)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				res := decodeErrors(t, w)
				assert.Equal(t, string(ctrl.CodeWebAuthRequired), res.Code)
				assert.Equal(t, "https://example.com/login", res.WebLoginURL)
			},
		},
		{
			name:   "DeviceBlocked",
			status: http.StatusForbidden,
			expect: func(mctrl *mockCtrl) {
				mctrl.EXPECT().ValidateExtensionSession(gomock.Any(), uid, "fp-1", device).Return(
					nil, &ctrl.GateError{Code: ctrl.CodeDeviceNotAuthorized, Message: "device blocked"},
				)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, string(ctrl.CodeDeviceNotAuthorized), decodeErrors(t, w).Code)
			},
		},
		{
			name:   "UnexpectedError",
			status: http.StatusInternalServerError,
			expect: func(mctrl *mockCtrl) {
				mctrl.EXPECT().ValidateExtensionSession(gomock.Any(), uid, "fp-1", device).Return(
					nil, errors.New("boom"),
				)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, hdl.ErrInternal.Error(), decodeErrors(t, w).Errors[0])
			},
		},
		{
			name:   "Success",
			status: http.StatusOK,
			expect: func(mctrl *mockCtrl) {
				mctrl.EXPECT().ValidateExtensionSession(gomock.Any(), uid, "fp-1", device).Return(
					&dto.SessionValidateResponse{Valid: true, Token: "ext", ExpiresIn: 3600, SessionID: sid}, nil,
				)
			},
			assertions: func(t *testing.T, w *httptest.ResponseRecorder) {
				res := decodeData[dto.SessionValidateResponse](t, w)
				assert.True(t, res.Valid)
				assert.Equal(t, sid, res.SessionID)
				assert.Equal(t, int64(3600), res.ExpiresIn)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				h, mctrl, _ := newTestHandler(t)
				tt.expect(mctrl)

				req := withValue(withDevice(newJSONRequest(t, http.MethodPost, uri, nil)), config.UidKey, uid)
				req.Header.Set(config.HeaderFingerprint, "fp-1")

				w := httptest.NewRecorder()
				h.validateSession(w, req)
				assert.Equal(t, tt.status, w.Result().StatusCode)
				tt.assertions(t, w)
			},
		)
	}
}
