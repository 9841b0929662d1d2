package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/ctrl"
	"github.com/JMURv/trust-bridge/internal/dto"
	"github.com/JMURv/trust-bridge/internal/hdl"
	"github.com/JMURv/trust-bridge/internal/hdl/http/utils"
	"go.uber.org/zap"
)

func extensionContext(w http.ResponseWriter, r *http.Request) (*dto.ExtensionContext, bool) {
	ext, ok := r.Context().Value(config.ExtCtxKey).(*dto.ExtensionContext)
	if !ok {
		zap.L().Error("missing extension context", zap.String("path", r.URL.Path))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return nil, false
	}
	return ext, true
}

// extensionMe godoc
//
//	@Summary		Identity as seen by the extension
//	@Tags			Extension
//	@Produce		json
//	@Param			Origin					header		string	true	"chrome-extension://<id>"
//	@Param			Authorization			header		string	true	"Bearer access token"
//	@Param			X-Device-Fingerprint	header		string	false	"Device fingerprint"
//	@Success		200						{object}	dto.ExtensionMeResponse
//	@Failure		401						{object}	utils.ErrorsResponse
//	@Failure		403						{object}	utils.ErrorsResponse
//	@Failure		429						{object}	utils.ErrorsResponse
//	@Router			/api/extension/me [get]
func (h *Handler) extensionMe(w http.ResponseWriter, r *http.Request) {
	ext, ok := extensionContext(w, r)
	if !ok {
		return
	}

	utils.SuccessResponse(
		w, http.StatusOK, &dto.ExtensionMeResponse{
			User:        dto.NewUserResponse(ext.User),
			Device:      ext.Device,
			Session:     ext.Session,
			ExtensionID: ext.ExtensionID,
		},
	)
}

// extensionDevices godoc
//
//	@Summary		Devices registered to the current user
//	@Tags			Extension
//	@Produce		json
//	@Param			Origin			header		string	true	"chrome-extension://<id>"
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Success		200				{array}		md.Device
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		403				{object}	utils.ErrorsResponse
//	@Router			/api/extension/devices [get]
func (h *Handler) extensionDevices(w http.ResponseWriter, r *http.Request) {
	ext, ok := extensionContext(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.ListDevices(r.Context(), ext.User.ID)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// extensionUsage godoc
//
//	@Summary		Consume one metered request
//	@Description	Counts against the daily tier quota and the hourly rate limit
//	@Tags			Extension
//	@Produce		json
//	@Param			Origin			header		string	true	"chrome-extension://<id>"
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Success		200				{object}	dto.UsageResponse
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		403				{object}	utils.ErrorsResponse
//	@Failure		429				{object}	utils.ErrorsResponse
//	@Router			/api/extension/usage [post]
func (h *Handler) extensionUsage(w http.ResponseWriter, r *http.Request) {
	ext, ok := extensionContext(w, r)
	if !ok {
		return
	}

	d, ok := utils.ParseDeviceByRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}
	d.Endpoint = r.URL.Path

	res, err := h.ctrl.ConsumeRequest(r.Context(), ext.User, &d)
	if err != nil {
		if errors.Is(err, ctrl.ErrDailyLimitExceeded) {
			utils.CodeErrResponse(w, http.StatusTooManyRequests, utils.CodeDailyLimitExceeded, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
