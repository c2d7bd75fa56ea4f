package notification

import (
	"context"
	"log/slog"

	"tapgate/internal/domain/service"

	"github.com/google/uuid"
)

// logMessenger is the development fallback used when Firebase is not
// configured. It logs the message instead of sending it and reports success,
// so the full dispatch and reconciliation path stays exercised locally.
type logMessenger struct {
	logger *slog.Logger
}

// NewLogMessenger creates a Messenger that only logs.
func NewLogMessenger(logger *slog.Logger) service.Messenger {
	return &logMessenger{logger: logger}
}

func (s *logMessenger) Send(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	messageID := uuid.New().String()

	s.logger.LogAttrs(ctx, slog.LevelInfo, "push delivery (log only)",
		slog.String("token", token),
		slog.String("title", title),
		slog.String("body", body),
		slog.String("message_id", messageID),
	)

	return messageID, nil
}
