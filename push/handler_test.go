package push

import (
	"context"
	"errors"
	"testing"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/anytype-push-receiver/domain"
	"github.com/anyproto/anytype-push-receiver/notifier"
	"github.com/anyproto/anytype-push-receiver/notifier/mock_notifier"
	"github.com/anyproto/anytype-push-receiver/receiver"
	"github.com/anyproto/anytype-push-receiver/receiver/mock_receiver"
)

var ctx = context.Background()

func TestHandler_OnBackgroundMessage(t *testing.T) {
	t.Run("new message", func(t *testing.T) {
		fx := newFixture(t, Config{})
		fx.notifier.EXPECT().ShowNotification(ctx, domain.NotificationRequest{
			Title:   "New message",
			Options: domain.NotificationOptions{Body: "Hello", Icon: "/icons/Icon-192.png"},
		}).Return(nil)
		require.NoError(t, fx.handler.OnBackgroundMessage(ctx, domain.PushMessage{
			Notification: &domain.Notification{Title: "New message", Body: "Hello"},
		}))
	})
	t.Run("empty title and body", func(t *testing.T) {
		fx := newFixture(t, Config{})
		fx.notifier.EXPECT().ShowNotification(ctx, domain.NotificationRequest{
			Options: domain.NotificationOptions{Icon: DefaultIcon},
		}).Return(nil)
		require.NoError(t, fx.handler.OnBackgroundMessage(ctx, domain.PushMessage{
			Notification: &domain.Notification{},
		}))
	})
	t.Run("no notification", func(t *testing.T) {
		fx := newFixture(t, Config{})
		err := fx.handler.OnBackgroundMessage(ctx, domain.PushMessage{Data: map[string]string{"k": "v"}})
		require.ErrorIs(t, err, domain.ErrNoNotification)
	})
	t.Run("twice", func(t *testing.T) {
		fx := newFixture(t, Config{})
		var shown []domain.NotificationRequest
		fx.notifier.EXPECT().ShowNotification(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.NotificationRequest) error {
				shown = append(shown, req)
				return nil
			}).Times(2)
		msg := domain.PushMessage{Notification: &domain.Notification{Title: "t", Body: "b"}}
		require.NoError(t, fx.handler.OnBackgroundMessage(ctx, msg))
		require.NoError(t, fx.handler.OnBackgroundMessage(ctx, msg))
		require.Len(t, shown, 2)
		assert.Equal(t, shown[0], shown[1])
	})
	t.Run("configured icon", func(t *testing.T) {
		fx := newFixture(t, Config{Icon: "/usr/share/icons/anytype.png"})
		fx.notifier.EXPECT().ShowNotification(ctx, domain.NotificationRequest{
			Title:   "t",
			Options: domain.NotificationOptions{Body: "b", Icon: "/usr/share/icons/anytype.png"},
		}).Return(nil)
		require.NoError(t, fx.handler.OnBackgroundMessage(ctx, domain.PushMessage{
			Notification: &domain.Notification{Title: "t", Body: "b"},
		}))
	})
	t.Run("notifier error", func(t *testing.T) {
		fx := newFixture(t, Config{})
		expErr := errors.New("permission denied")
		fx.notifier.EXPECT().ShowNotification(ctx, gomock.Any()).Return(expErr)
		err := fx.handler.OnBackgroundMessage(ctx, domain.PushMessage{
			Notification: &domain.Notification{Title: "t", Body: "b"},
		})
		require.ErrorIs(t, err, expErr)
	})
}

type fixture struct {
	*push
	notifier *mock_notifier.MockNotifier
	receiver *mock_receiver.MockReceiver
	a        *app.App
}

func newFixture(t *testing.T, conf Config) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		push:     New().(*push),
		a:        new(app.App),
		notifier: mock_notifier.NewMockNotifier(ctrl),
		receiver: mock_receiver.NewMockReceiver(ctrl),
	}
	fx.notifier.EXPECT().Init(gomock.Any()).AnyTimes()
	fx.notifier.EXPECT().Name().Return(notifier.CName).AnyTimes()
	fx.notifier.EXPECT().Run(gomock.Any()).AnyTimes()
	fx.notifier.EXPECT().Close(gomock.Any()).AnyTimes()
	fx.receiver.EXPECT().Init(gomock.Any()).AnyTimes()
	fx.receiver.EXPECT().Name().Return(receiver.CName).AnyTimes()
	fx.receiver.EXPECT().Run(gomock.Any()).AnyTimes()
	fx.receiver.EXPECT().Close(gomock.Any()).AnyTimes()
	fx.receiver.EXPECT().OnBackgroundMessage(gomock.Any()).Return(nil)

	fx.a.Register(&testConfig{Push: conf}).
		Register(fx.notifier).
		Register(fx.receiver).
		Register(fx.push)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return fx
}

type testConfig struct {
	Push Config
}

func (c *testConfig) Init(a *app.App) (err error) {
	return nil
}

func (c *testConfig) Name() (name string) {
	return "config"
}

func (c *testConfig) GetPush() Config {
	return c.Push
}
