package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/JMURv/trust-bridge/internal/ctrl"
	"github.com/JMURv/trust-bridge/internal/dto"
	"github.com/JMURv/trust-bridge/internal/hdl"
	"github.com/JMURv/trust-bridge/internal/hdl/http/utils"
	md "github.com/JMURv/trust-bridge/internal/models"
	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// blockDevice godoc
//
//	@Summary		Block a device
//	@Tags			Admin
//	@Param			X-Admin-Key	header	string	true	"Administrator key"
//	@Param			id			path	string	true	"Device ID"
//	@Success		200			"Blocked"
//	@Failure		400			{object}	utils.ErrorsResponse
//	@Failure		403			{object}	utils.ErrorsResponse
//	@Failure		404			{object}	utils.ErrorsResponse
//	@Failure		500			{object}	utils.ErrorsResponse
//	@Router			/api/admin/devices/{id}/block [post]
func (h *Handler) blockDevice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrievePathArg)
		return
	}

	if err = h.ctrl.BlockDevice(r.Context(), id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK)
}

// securityEvents godoc
//
//	@Summary		List security events
//	@Tags			Admin
//	@Produce		json
//	@Param			X-Admin-Key	header		string	true	"Administrator key"
//	@Param			type		query		string	false	"Event type"
//	@Param			severity	query		string	false	"Severity"
//	@Param			userId		query		string	false	"User ID"
//	@Param			since		query		string	false	"RFC3339 lower bound"
//	@Param			limit		query		int		false	"Max events"
//	@Success		200			{array}		md.SecurityEvent
//	@Failure		400			{object}	utils.ErrorsResponse
//	@Failure		403			{object}	utils.ErrorsResponse
//	@Failure		500			{object}	utils.ErrorsResponse
//	@Router			/api/admin/security-events [get]
func (h *Handler) securityEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := dto.SecurityEventFilter{
		Type:     md.SecurityEventType(q.Get("type")),
		Severity: md.Severity(q.Get("severity")),
	}

	if v := q.Get("userId"); v != "" {
		uid, err := uuid.Parse(v)
		if err != nil {
			utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrFailedToParseUUID)
			return
		}
		f.UserID = &uid
	}

	if v := q.Get("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrieveQueryArg)
			return
		}
		f.Since = &since
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrToRetrieveQueryArg)
			return
		}
		f.Limit = limit
	}

	res, err := h.ctrl.ListSecurityEvents(r.Context(), f)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}
