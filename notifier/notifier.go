//go:generate mockgen -destination mock_notifier/mock_notifier.go github.com/anyproto/anytype-push-receiver/notifier Notifier

// Package notifier shows notification requests on the host.
package notifier

import (
	"context"
	"fmt"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"

	"github.com/anyproto/anytype-push-receiver/domain"
)

const CName = "push.notifier"

var log = logger.NewNamed(CName)

const (
	BackendDBus = "dbus"
	BackendLog  = "log"
)

const defaultAppName = "anytype"

type Config struct {
	Backend string `yaml:"backend"`
	AppName string `yaml:"appName"`
	// ExpireTimeout in milliseconds, zero lets the notification server decide
	ExpireTimeout int32 `yaml:"expireTimeout"`
}

type configSource interface {
	GetNotifier() Config
}

func New() Notifier {
	return new(notifier)
}

type Notifier interface {
	// ShowNotification displays the request. Display errors are returned as is.
	ShowNotification(ctx context.Context, req domain.NotificationRequest) error
	app.ComponentRunnable
}

type backend interface {
	show(ctx context.Context, req domain.NotificationRequest) error
	close() error
}

type notifier struct {
	conf    Config
	backend backend
}

func (n *notifier) Init(a *app.App) (err error) {
	n.conf = a.MustComponent("config").(configSource).GetNotifier()
	if n.conf.AppName == "" {
		n.conf.AppName = defaultAppName
	}
	switch n.conf.Backend {
	case "", BackendDBus:
		n.conf.Backend = BackendDBus
	case BackendLog:
	default:
		return fmt.Errorf("unexpected notifier backend: %q", n.conf.Backend)
	}
	return nil
}

func (n *notifier) Name() (name string) {
	return CName
}

func (n *notifier) Run(ctx context.Context) (err error) {
	switch n.conf.Backend {
	case BackendDBus:
		n.backend, err = newDBusBackend(n.conf)
	case BackendLog:
		n.backend = logBackend{}
	}
	return
}

func (n *notifier) ShowNotification(ctx context.Context, req domain.NotificationRequest) error {
	return n.backend.show(ctx, req)
}

func (n *notifier) Close(ctx context.Context) (err error) {
	if n.backend != nil {
		return n.backend.close()
	}
	return nil
}
