package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tapgate/internal/delivery/api/validator"
	"tapgate/internal/domain/entity"
	domainerrors "tapgate/internal/domain/errors"
	mockUsecase "tapgate/internal/mocks/usecase"
	"tapgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tapHandlerFixtures holds all test dependencies for tap handler tests.
type tapHandlerFixtures struct {
	handler *TapHandler
	tapUC   *mockUsecase.MockTapUsecase
	echo    *echo.Echo
}

func createTestTapHandler(t *testing.T) tapHandlerFixtures {
	tapUC := mockUsecase.NewMockTapUsecase(t)
	handler := &TapHandler{
		tapUC:  tapUC,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return tapHandlerFixtures{
		handler: handler,
		tapUC:   tapUC,
		echo:    e,
	}
}

func postTap(fx tapHandlerFixtures, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/taps", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, fx.echo.NewContext(req, rec)
}

func TestTapHandler_ProcessTap_Accepted(t *testing.T) {
	fx := createTestTapHandler(t)

	tapEventID := uuid.New()
	identityID := uuid.New()
	tappedAt := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	fx.tapUC.EXPECT().
		ProcessTap(mock.Anything, &usecase.TapRequest{
			DeviceCode:    "gate-01",
			CredentialUID: "04:AB:CD:EF",
		}).
		Return(&usecase.TapResult{
			Accepted:   true,
			TapEventID: tapEventID,
			Direction:  entity.DirectionIn,
			Identity: &usecase.IdentitySummary{
				ID:    identityID,
				Class: entity.ClassStudent,
				Code:  "S-1001",
				Name:  "Budi",
			},
			LocationLabel: "Main Gate",
			TappedAt:      tappedAt,
		}, nil)

	rec, c := postTap(fx, `{"device_code":"gate-01","credential_uid":"04:AB:CD:EF"}`)
	require.NoError(t, fx.handler.ProcessTap(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data TapResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Data.Accepted)
	assert.Equal(t, tapEventID.String(), envelope.Data.TapEventID)
	assert.Equal(t, "in", envelope.Data.Direction)
	assert.Equal(t, "Main Gate", envelope.Data.LocationLabel)
	require.NotNil(t, envelope.Data.Identity)
	assert.Equal(t, "Budi", envelope.Data.Identity.Name)
	assert.Equal(t, tappedAt.Format(time.RFC3339), envelope.Data.TappedAt)
}

func TestTapHandler_ProcessTap_TooSoonIsOK(t *testing.T) {
	fx := createTestTapHandler(t)

	fx.tapUC.EXPECT().
		ProcessTap(mock.Anything, mock.AnythingOfType("*usecase.TapRequest")).
		Return(&usecase.TapResult{
			Accepted:      false,
			ReasonCode:    domainerrors.CodeTooSoon,
			Message:       "already tapped recently, try again in 3 minute(s)",
			RemainingWait: 3 * time.Minute,
			TappedAt:      time.Now(),
		}, nil)

	rec, c := postTap(fx, `{"device_code":"gate-01","credential_uid":"04:AB:CD:EF"}`)
	require.NoError(t, fx.handler.ProcessTap(c))

	// Policy rejections are results the firmware branches on, not errors.
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data TapResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.False(t, envelope.Data.Accepted)
	assert.Equal(t, domainerrors.CodeTooSoon, envelope.Data.ReasonCode)
	assert.Equal(t, 180, envelope.Data.RemainingWaitSeconds)
	assert.Empty(t, envelope.Data.TapEventID)
}

func TestTapHandler_ProcessTap_MissingFields(t *testing.T) {
	fx := createTestTapHandler(t)

	rec, c := postTap(fx, `{"device_code":"gate-01"}`)
	require.NoError(t, fx.handler.ProcessTap(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestTapHandler_ProcessTap_InvalidClassHint(t *testing.T) {
	fx := createTestTapHandler(t)

	rec, c := postTap(fx, `{"device_code":"gate-01","credential_uid":"04:AB","class_hint":"visitor"}`)
	require.NoError(t, fx.handler.ProcessTap(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTapHandler_ProcessTap_MalformedJSON(t *testing.T) {
	fx := createTestTapHandler(t)

	rec, c := postTap(fx, `{"device_code":`)
	require.NoError(t, fx.handler.ProcessTap(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestTapHandler_ProcessTap_LedgerUnavailable(t *testing.T) {
	fx := createTestTapHandler(t)

	fx.tapUC.EXPECT().
		ProcessTap(mock.Anything, mock.AnythingOfType("*usecase.TapRequest")).
		Return(nil, domainerrors.NewLedgerUnavailableError(errors.New("connection refused"), "append failed"))

	rec, c := postTap(fx, `{"device_code":"gate-01","credential_uid":"04:AB:CD:EF"}`)
	require.NoError(t, fx.handler.ProcessTap(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.CodeLedgerUnavailable)
}

func TestTapHandler_LastTap(t *testing.T) {
	fx := createTestTapHandler(t)

	identityID := uuid.New()
	event := &entity.TapEvent{
		ID:                  uuid.New(),
		IdentityID:          identityID,
		IdentityClass:       entity.ClassStudent,
		DeviceID:            uuid.New(),
		Direction:           entity.DirectionOut,
		TappedAt:            time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC),
		NotificationOutcome: entity.OutcomeSent,
	}

	fx.tapUC.EXPECT().
		LastTap(mock.Anything, entity.IdentityRef{Class: entity.ClassStudent, ID: identityID}).
		Return(event, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("class", "id")
	c.SetParamValues("student", identityID.String())

	require.NoError(t, fx.handler.LastTap(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data TapEventPayload `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, event.ID.String(), envelope.Data.ID)
	assert.Equal(t, "out", envelope.Data.Direction)
	assert.Equal(t, "sent", envelope.Data.NotificationOutcome)
}

func TestTapHandler_LastTap_NotFound(t *testing.T) {
	fx := createTestTapHandler(t)

	identityID := uuid.New()
	fx.tapUC.EXPECT().
		LastTap(mock.Anything, entity.IdentityRef{Class: entity.ClassTeacher, ID: identityID}).
		Return(nil, domainerrors.ErrTapNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("class", "id")
	c.SetParamValues("teacher", identityID.String())

	require.NoError(t, fx.handler.LastTap(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTapHandler_LastTap_InvalidClass(t *testing.T) {
	fx := createTestTapHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("class", "id")
	c.SetParamValues("visitor", uuid.New().String())

	require.NoError(t, fx.handler.LastTap(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTapHandler_LastTapToday_InvalidID(t *testing.T) {
	fx := createTestTapHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("class", "id")
	c.SetParamValues("student", "not-a-uuid")

	require.NoError(t, fx.handler.LastTapToday(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
