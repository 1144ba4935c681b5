package push

import (
	"context"
	"time"

	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-receiver/domain"
)

type handler struct {
	p *push
}

func (h *handler) OnBackgroundMessage(ctx context.Context, payload domain.PushMessage) (err error) {
	st := time.Now()
	defer func() {
		if h.p.metric == nil {
			return
		}
		h.p.metric.RequestLog(ctx, "push.onBackgroundMessage",
			metric.TotalDur(time.Since(st)),
			zap.String("messageId", payload.MessageId),
			zap.Error(err),
		)
	}()
	return h.p.HandleBackgroundMessage(ctx, payload)
}
