package push

import (
	"context"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-receiver/domain"
	"github.com/anyproto/anytype-push-receiver/notifier"
	"github.com/anyproto/anytype-push-receiver/receiver"
)

const CName = "push"

var log = logger.NewNamed(CName)

const DefaultIcon = "/icons/Icon-192.png"

type Config struct {
	Icon string `yaml:"icon"`
}

type configSource interface {
	GetPush() Config
}

func New() Push {
	return new(push)
}

// Push shows a notification for every background message delivered to the receiver.
type Push interface {
	HandleBackgroundMessage(ctx context.Context, payload domain.PushMessage) error
	app.ComponentRunnable
}

type push struct {
	receiver receiver.Receiver
	notifier notifier.Notifier
	metric   metric.Metric
	icon     string
	handler  *handler
}

func (p *push) Init(a *app.App) (err error) {
	p.receiver = a.MustComponent(receiver.CName).(receiver.Receiver)
	p.notifier = a.MustComponent(notifier.CName).(notifier.Notifier)
	p.metric, _ = a.Component(metric.CName).(metric.Metric)
	p.icon = a.MustComponent("config").(configSource).GetPush().Icon
	if p.icon == "" {
		p.icon = DefaultIcon
	}
	p.handler = &handler{p: p}
	return
}

func (p *push) Name() (name string) {
	return CName
}

func (p *push) Run(ctx context.Context) (err error) {
	return p.receiver.OnBackgroundMessage(p.handler.OnBackgroundMessage)
}

func (p *push) HandleBackgroundMessage(ctx context.Context, payload domain.PushMessage) error {
	log.Debug("received background message", zap.Any("payload", payload))
	req, err := domain.NewNotificationRequest(payload, p.icon)
	if err != nil {
		return err
	}
	return p.notifier.ShowNotification(ctx, req)
}

func (p *push) Close(ctx context.Context) (err error) {
	return nil
}
