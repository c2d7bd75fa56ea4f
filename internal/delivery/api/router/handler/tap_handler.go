// Package handler contains the HTTP handlers for the tap API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"tapgate/internal/delivery/api/response"
	"tapgate/internal/domain/entity"
	"tapgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TapHandlerParams holds dependencies for TapHandler, injected by Fx.
type TapHandlerParams struct {
	fx.In

	TapUC  usecase.TapUsecase
	Logger *slog.Logger
}

// TapHandler holds dependencies for tap-related handlers
type TapHandler struct {
	tapUC  usecase.TapUsecase
	logger *slog.Logger
}

// NewTapHandler is the constructor for TapHandler
func NewTapHandler(params TapHandlerParams) *TapHandler {
	return &TapHandler{
		tapUC:  params.TapUC,
		logger: params.Logger,
	}
}

// ProcessTapRequest represents the request body a reader device sends per tap
type ProcessTapRequest struct {
	DeviceCode    string `json:"device_code" validate:"required"`
	CredentialUID string `json:"credential_uid" validate:"required"`
	ClassHint     string `json:"class_hint" validate:"omitempty,oneof=student teacher"`
}

// TapResponse is the payload returned to the reader device for every tap
type TapResponse struct {
	Accepted             bool             `json:"accepted"`
	TapEventID           string           `json:"tap_event_id,omitempty"`
	Direction            string           `json:"direction,omitempty"`
	ReasonCode           string           `json:"reason_code,omitempty"`
	Message              string           `json:"message,omitempty"`
	RemainingWaitSeconds int              `json:"remaining_wait_seconds,omitempty"`
	Identity             *IdentityPayload `json:"identity,omitempty"`
	LocationLabel        string           `json:"location_label,omitempty"`
	TappedAt             string           `json:"tapped_at"`
}

// IdentityPayload is the resolved identity echoed back to the device display
type IdentityPayload struct {
	ID    string `json:"id"`
	Class string `json:"class"`
	Code  string `json:"code"`
	Name  string `json:"name"`
}

// TapEventPayload is the read-model view of one ledger entry
type TapEventPayload struct {
	ID                  string `json:"id"`
	IdentityID          string `json:"identity_id"`
	IdentityClass       string `json:"identity_class"`
	DeviceID            string `json:"device_id"`
	Direction           string `json:"direction"`
	TappedAt            string `json:"tapped_at"`
	NotificationOutcome string `json:"notification_outcome"`
}

// ProcessTap handles one tap from a reader device.
// Acceptance returns 201; a policy rejection returns 200 with accepted=false
// so firmware can branch on the payload without treating it as an error.
func (h *TapHandler) ProcessTap(c echo.Context) error {
	var req ProcessTapRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tap input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.tapUC.ProcessTap(c.Request().Context(), &usecase.TapRequest{
		DeviceCode:    req.DeviceCode,
		CredentialUID: req.CredentialUID,
		ClassHint:     req.ClassHint,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	statusCode := http.StatusOK
	if result.Accepted {
		statusCode = http.StatusCreated
	}

	return response.Success(c, statusCode, toTapResponse(result))
}

// LastTap returns the identity's most recent ledger entry across all days.
func (h *TapHandler) LastTap(c echo.Context) error {
	ref, err := parseIdentityRef(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	event, err := h.tapUC.LastTap(c.Request().Context(), ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTapEventPayload(event))
}

// LastTapToday returns the identity's most recent ledger entry for the
// current local calendar day.
func (h *TapHandler) LastTapToday(c echo.Context) error {
	ref, err := parseIdentityRef(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	event, err := h.tapUC.LastTapToday(c.Request().Context(), ref)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTapEventPayload(event))
}

func parseIdentityRef(c echo.Context) (entity.IdentityRef, error) {
	class := entity.IdentityClass(c.Param("class"))
	if !class.Valid() {
		return entity.IdentityRef{}, echo.NewHTTPError(http.StatusBadRequest, "class must be student or teacher")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return entity.IdentityRef{}, echo.NewHTTPError(http.StatusBadRequest, "invalid identity ID")
	}

	return entity.IdentityRef{Class: class, ID: id}, nil
}

func toTapResponse(result *usecase.TapResult) *TapResponse {
	resp := &TapResponse{
		Accepted:      result.Accepted,
		ReasonCode:    result.ReasonCode,
		Message:       result.Message,
		LocationLabel: result.LocationLabel,
		TappedAt:      result.TappedAt.Format(time.RFC3339),
	}
	if result.Accepted {
		resp.TapEventID = result.TapEventID.String()
		resp.Direction = string(result.Direction)
	}
	if result.RemainingWait > 0 {
		resp.RemainingWaitSeconds = int(result.RemainingWait.Seconds())
	}
	if result.Identity != nil {
		resp.Identity = &IdentityPayload{
			ID:    result.Identity.ID.String(),
			Class: string(result.Identity.Class),
			Code:  result.Identity.Code,
			Name:  result.Identity.Name,
		}
	}

	return resp
}

func toTapEventPayload(event *entity.TapEvent) *TapEventPayload {
	return &TapEventPayload{
		ID:                  event.ID.String(),
		IdentityID:          event.IdentityID.String(),
		IdentityClass:       string(event.IdentityClass),
		DeviceID:            event.DeviceID.String(),
		Direction:           string(event.Direction),
		TappedAt:            event.TappedAt.Format(time.RFC3339),
		NotificationOutcome: string(event.NotificationOutcome),
	}
}
