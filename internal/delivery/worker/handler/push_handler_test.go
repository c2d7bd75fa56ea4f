package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tapgate/internal/domain/service"
	mockUsecase "tapgate/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushHandlerFixtures holds all test dependencies for push handler tests.
type pushHandlerFixtures struct {
	handler    *PushHandler
	dispatchUC *mockUsecase.MockDispatchUsecase
	echo       *echo.Echo
}

func createTestPushHandler(t *testing.T) pushHandlerFixtures {
	dispatchUC := mockUsecase.NewMockDispatchUsecase(t)
	handler := &PushHandler{
		verifyPushAuth: false,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		dispatchUC:     dispatchUC,
	}

	return pushHandlerFixtures{
		handler:    handler,
		dispatchUC: dispatchUC,
		echo:       echo.New(),
	}
}

func pushBody(t *testing.T, event *service.TapAcceptedEvent, attributes map[string]string) string {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	msg := PubSubMessage{Subscription: "projects/local/subscriptions/tap-dispatch-sub"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func postPush(fx pushHandlerFixtures, body string) (*httptest.ResponseRecorder, echo.Context) {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, fx.echo.NewContext(req, rec)
}

func testEvent() *service.TapAcceptedEvent {
	return &service.TapAcceptedEvent{
		TapEventID:    uuid.New().String(),
		IdentityID:    uuid.New().String(),
		IdentityClass: "student",
		IdentityName:  "Budi",
		IdentityCode:  "S-1001",
		DeviceCode:    "gate-01",
		LocationLabel: "Main Gate",
		Direction:     "in",
		TappedAt:      "2025-03-10T07:00:00Z",
	}
}

func TestPushHandler_HandlePush_Success(t *testing.T) {
	fx := createTestPushHandler(t)
	event := testEvent()

	var dispatched *service.TapAcceptedEvent
	fx.dispatchUC.EXPECT().
		DispatchTapNotification(mock.Anything, mock.AnythingOfType("*service.TapAcceptedEvent")).
		Run(func(_ context.Context, e *service.TapAcceptedEvent) {
			dispatched = e
		}).
		Return(nil)

	rec, c := postPush(fx, pushBody(t, event, map[string]string{"request_id": uuid.New().String()}))
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, dispatched)
	assert.Equal(t, event.TapEventID, dispatched.TapEventID)
	assert.Equal(t, "student", dispatched.IdentityClass)
}

func TestPushHandler_HandlePush_DispatchFailureAsksRedelivery(t *testing.T) {
	fx := createTestPushHandler(t)

	fx.dispatchUC.EXPECT().
		DispatchTapNotification(mock.Anything, mock.AnythingOfType("*service.TapAcceptedEvent")).
		Return(errors.New("outcome not persisted"))

	rec, c := postPush(fx, pushBody(t, testEvent(), nil))
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_InvalidBase64(t *testing.T) {
	fx := createTestPushHandler(t)

	rec, c := postPush(fx, `{"message":{"data":"%%%not-base64%%%"},"subscription":"s"}`)
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_InvalidEventJSON(t *testing.T) {
	fx := createTestPushHandler(t)

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	rec, c := postPush(fx, `{"message":{"data":"`+data+`"},"subscription":"s"}`)
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_HandlePush_MalformedEnvelope(t *testing.T) {
	fx := createTestPushHandler(t)

	rec, c := postPush(fx, `{"message":`)
	require.NoError(t, fx.handler.HandlePush(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
