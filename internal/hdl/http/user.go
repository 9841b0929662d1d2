package http

import (
	"errors"
	"net/http"

	"github.com/JMURv/trust-bridge/internal/config"
	"github.com/JMURv/trust-bridge/internal/ctrl"
	"github.com/JMURv/trust-bridge/internal/dto"
	"github.com/JMURv/trust-bridge/internal/hdl"
	"github.com/JMURv/trust-bridge/internal/hdl/http/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// me godoc
//
//	@Summary		Current user profile
//	@Tags			Users
//	@Produce		json
//	@Param			Authorization	header		string	true	"Bearer access token"
//	@Success		200				{object}	dto.UserResponse
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		404				{object}	utils.ErrorsResponse
//	@Failure		500				{object}	utils.ErrorsResponse
//	@Router			/api/users/me [get]
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUUID.Error(), zap.Any("uid", r.Context().Value(config.UidKey)))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	u, err := h.ctrl.GetUserByID(r.Context(), uid)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, dto.NewUserResponse(u))
}

// deleteMe godoc
//
//	@Summary		Delete the current account
//	@Description	Soft delete; ends every session and revokes refresh tokens
//	@Tags			Users
//	@Param			Authorization	header	string	true	"Bearer access token"
//	@Success		204				"Deleted"
//	@Failure		401				{object}	utils.ErrorsResponse
//	@Failure		404				{object}	utils.ErrorsResponse
//	@Failure		500				{object}	utils.ErrorsResponse
//	@Router			/api/users/me [delete]
func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUUID.Error(), zap.Any("uid", r.Context().Value(config.UidKey)))
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	if err := h.ctrl.DeleteUser(r.Context(), uid); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusNoContent)
}
