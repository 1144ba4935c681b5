package receiver

import (
	"context"
	"errors"
	"testing"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/anytype-push-receiver/domain"
	"github.com/anyproto/anytype-push-receiver/queue"
	"github.com/anyproto/anytype-push-receiver/queue/mock_queue"
	"github.com/anyproto/anytype-push-receiver/repo/registrationrepo"
	"github.com/anyproto/anytype-push-receiver/repo/registrationrepo/mock_registrationrepo"
)

var ctx = context.Background()

var testReceiverConfig = Config{
	APIKey:            "key",
	AuthDomain:        "project.firebaseapp.com",
	ProjectId:         "project",
	MessagingSenderId: "1234",
	AppId:             "1:1234:web:abcd",
	RegistrationToken: "token",
	Topics:            []string{"news", "chats"},
}

func TestReceiver_Run(t *testing.T) {
	t.Run("registered", func(t *testing.T) {
		fx := newFixture(t, testReceiverConfig, nil)
		assert.Equal(t, domain.RegistrationStateRegistered, fx.State())
		reg := fx.Registration()
		assert.Equal(t, domain.NewRegistrationId("project", "1234", "1:1234:web:abcd"), reg.Id)
		assert.Equal(t, []string{"news", "chats"}, reg.Topics)
		assert.Equal(t, []string{"news", "chats"}, fx.provider.topics)
	})
	t.Run("provider error", func(t *testing.T) {
		fx := newBareFixture(t, testReceiverConfig)
		fx.provider.err = errors.New("unavailable")
		require.Error(t, fx.a.Start(ctx))
		assert.Equal(t, domain.RegistrationStateUninitialized, fx.State())
	})
}

func TestReceiver_OnBackgroundMessage(t *testing.T) {
	t.Run("not registered", func(t *testing.T) {
		r := New()
		assert.ErrorIs(t, r.OnBackgroundMessage(func(ctx context.Context, payload domain.PushMessage) error {
			return nil
		}), ErrNotRegistered)
	})
	t.Run("deliver", func(t *testing.T) {
		var consume func(context.Context, domain.PushMessage) error
		fx := newFixture(t, testReceiverConfig, func(fx *fixture) {
			fx.queue.EXPECT().Consume(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, handle func(context.Context, domain.PushMessage) error) error {
					consume = handle
					return nil
				})
		})
		var received []domain.PushMessage
		require.NoError(t, fx.OnBackgroundMessage(func(ctx context.Context, payload domain.PushMessage) error {
			received = append(received, payload)
			if payload.Notification == nil {
				return domain.ErrNoNotification
			}
			return nil
		}))
		require.NotNil(t, consume)

		msg := domain.PushMessage{Notification: &domain.Notification{Title: "New message", Body: "Hello"}}
		require.NoError(t, consume(ctx, msg))
		require.ErrorIs(t, consume(ctx, domain.PushMessage{}), domain.ErrNoNotification)
		assert.Len(t, received, 2)

		r := fx.Receiver.(*receiver)
		assert.Equal(t, uint64(2), r.metrics.received.Load())
		assert.Equal(t, uint64(1), r.metrics.handled.Load())
		assert.Equal(t, uint64(1), r.metrics.failed.Load())
	})
	t.Run("second handler", func(t *testing.T) {
		fx := newFixture(t, testReceiverConfig, func(fx *fixture) {
			fx.queue.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil)
		})
		h := func(ctx context.Context, payload domain.PushMessage) error { return nil }
		require.NoError(t, fx.OnBackgroundMessage(h))
		assert.ErrorIs(t, fx.OnBackgroundMessage(h), ErrHandlerExists)
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, testReceiverConfig.Validate())

	conf := testReceiverConfig
	conf.APIKey = ""
	assert.ErrorIs(t, conf.Validate(), ErrInvalidConfig)

	conf = testReceiverConfig
	conf.AppId = ""
	assert.ErrorIs(t, conf.Validate(), ErrInvalidConfig)

	conf = testReceiverConfig
	conf.RegistrationToken = ""
	assert.ErrorIs(t, conf.Validate(), ErrInvalidConfig)

	conf.Topics = nil
	assert.NoError(t, conf.Validate())
}

type fixture struct {
	Receiver
	a                *app.App
	queue            *mock_queue.MockQueue
	registrationRepo *mock_registrationrepo.MockRegistrationRepo
	provider         *testProvider
}

func newBareFixture(t *testing.T, conf Config) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		Receiver:         New(),
		a:                new(app.App),
		queue:            mock_queue.NewMockQueue(ctrl),
		registrationRepo: mock_registrationrepo.NewMockRegistrationRepo(ctrl),
		provider:         &testProvider{},
	}
	fx.queue.EXPECT().Init(gomock.Any()).AnyTimes()
	fx.queue.EXPECT().Name().Return(queue.CName).AnyTimes()
	fx.queue.EXPECT().Run(gomock.Any()).AnyTimes()
	fx.queue.EXPECT().Close(gomock.Any()).AnyTimes()
	fx.registrationRepo.EXPECT().Init(gomock.Any()).AnyTimes()
	fx.registrationRepo.EXPECT().Name().Return(registrationrepo.CName).AnyTimes()
	fx.registrationRepo.EXPECT().Run(gomock.Any()).AnyTimes()
	fx.registrationRepo.EXPECT().Close(gomock.Any()).AnyTimes()
	fx.Receiver.RegisterProvider(fx.provider)

	fx.a.Register(&testConfig{Receiver: conf}).
		Register(fx.queue).
		Register(fx.registrationRepo).
		Register(fx.Receiver)
	return fx
}

func newFixture(t *testing.T, conf Config, expect func(fx *fixture)) *fixture {
	fx := newBareFixture(t, conf)
	fx.registrationRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	if expect != nil {
		expect(fx)
	}
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return fx
}

type testProvider struct {
	topics []string
	err    error
}

func (p *testProvider) SubscribeToTopic(ctx context.Context, token, topic string) (err error) {
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	return nil
}

type testConfig struct {
	Receiver Config
}

func (c *testConfig) Init(a *app.App) (err error) {
	return nil
}

func (c *testConfig) Name() (name string) {
	return "config"
}

func (c *testConfig) GetReceiver() Config {
	return c.Receiver
}
