//go:generate mockgen -destination mock_receiver/mock_receiver.go github.com/anyproto/anytype-push-receiver/receiver Receiver

package receiver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-receiver/domain"
	"github.com/anyproto/anytype-push-receiver/queue"
	"github.com/anyproto/anytype-push-receiver/repo/registrationrepo"
)

const CName = "push.receiver"

var log = logger.NewNamed(CName)

var (
	ErrNotRegistered = errors.New("receiver is not registered")
	ErrHandlerExists = errors.New("background message handler already exists")
)

func New() Receiver {
	return new(receiver)
}

// BackgroundHandler is called once per delivered push message.
type BackgroundHandler func(ctx context.Context, payload domain.PushMessage) error

type Receiver interface {
	RegisterProvider(provider Provider)
	// OnBackgroundMessage subscribes the handler to incoming messages. Allowed only in the registered state.
	OnBackgroundMessage(handler BackgroundHandler) error
	State() domain.RegistrationState
	Registration() domain.Registration
	app.ComponentRunnable
}

// Provider is the vendor side of the registration.
type Provider interface {
	SubscribeToTopic(ctx context.Context, token, topic string) (err error)
}

type configSource interface {
	GetReceiver() Config
}

type receiver struct {
	conf             Config
	queue            queue.Queue
	registrationRepo registrationrepo.RegistrationRepo
	provider         Provider
	metrics          metrics

	mu           sync.Mutex
	state        domain.RegistrationState
	registration domain.Registration
	handler      BackgroundHandler
}

func (r *receiver) Init(a *app.App) (err error) {
	r.conf = a.MustComponent("config").(configSource).GetReceiver()
	if err = r.conf.Validate(); err != nil {
		return err
	}
	r.queue = a.MustComponent(queue.CName).(queue.Queue)
	r.registrationRepo = a.MustComponent(registrationrepo.CName).(registrationrepo.RegistrationRepo)
	if m, ok := a.Component(metric.CName).(metric.Metric); ok {
		registerMetrics(m.Registry(), r)
	}
	return
}

func (r *receiver) Name() (name string) {
	return CName
}

func (r *receiver) RegisterProvider(provider Provider) {
	r.provider = provider
}

// Run registers the receiver: topic subscriptions first, then the registration record.
func (r *receiver) Run(ctx context.Context) (err error) {
	reg := domain.Registration{
		Id:        domain.NewRegistrationId(r.conf.ProjectId, r.conf.MessagingSenderId, r.conf.AppId),
		ProjectId: r.conf.ProjectId,
		SenderId:  r.conf.MessagingSenderId,
		AppId:     r.conf.AppId,
	}
	if len(r.conf.Topics) > 0 {
		if r.provider == nil {
			log.Warn("no messaging provider, skip topic subscriptions", zap.Strings("topics", r.conf.Topics))
		} else {
			for _, topic := range r.conf.Topics {
				if err = r.provider.SubscribeToTopic(ctx, r.conf.RegistrationToken, topic); err != nil {
					return fmt.Errorf("subscribe to topic %q: %w", topic, err)
				}
				reg.Topics = append(reg.Topics, topic)
			}
		}
	}
	if err = r.registrationRepo.Upsert(ctx, reg); err != nil {
		return err
	}

	r.mu.Lock()
	r.registration = reg
	r.state = domain.RegistrationStateRegistered
	r.mu.Unlock()

	log.Info("registered",
		zap.String("id", reg.Id),
		zap.String("projectId", reg.ProjectId),
		zap.String("senderId", reg.SenderId),
		zap.Strings("topics", reg.Topics),
	)
	return nil
}

func (r *receiver) OnBackgroundMessage(handler BackgroundHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != domain.RegistrationStateRegistered {
		return ErrNotRegistered
	}
	if r.handler != nil {
		return ErrHandlerExists
	}
	r.handler = handler
	return r.queue.Consume(context.Background(), r.handle)
}

func (r *receiver) handle(ctx context.Context, payload domain.PushMessage) (err error) {
	r.metrics.received.Add(1)
	st := time.Now()
	err = r.handler(ctx, payload)
	if r.metrics.handleDuration != nil {
		r.metrics.handleDuration.WithLabelValues().Observe(time.Since(st).Seconds())
	}
	if err != nil {
		r.metrics.failed.Add(1)
		log.Warn("background message handler failed", zap.String("messageId", payload.MessageId), zap.Error(err))
		return err
	}
	r.metrics.handled.Add(1)
	return nil
}

func (r *receiver) State() domain.RegistrationState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *receiver) Registration() domain.Registration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registration
}

func (r *receiver) Close(ctx context.Context) (err error) {
	return nil
}
