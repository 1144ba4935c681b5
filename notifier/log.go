package notifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-receiver/domain"
)

// logBackend is used on hosts without a notification server.
type logBackend struct{}

func (logBackend) show(ctx context.Context, req domain.NotificationRequest) error {
	log.Info("notification",
		zap.String("title", req.Title),
		zap.String("body", req.Options.Body),
		zap.String("icon", req.Options.Icon),
	)
	return nil
}

func (logBackend) close() error {
	return nil
}
