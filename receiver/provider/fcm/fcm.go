package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/anyproto/anytype-push-receiver/receiver"
)

const CName = "push.provider.fcm"

var log = logger.NewNamed(CName)

func New() FCM {
	return new(fcm)
}

type FCM interface {
	app.Component
}

type fcm struct {
}

func (f *fcm) Init(a *app.App) (err error) {
	r := a.MustComponent(receiver.CName).(receiver.Receiver)
	cs := a.MustComponent("config").(configSource)
	if err = cs.GetFCM().Validate(cs.GetReceiver()); err != nil {
		return err
	}

	provider, err := newProvider(cs.GetReceiver(), cs.GetFCM())
	if err != nil {
		return err
	}
	r.RegisterProvider(provider)
	return
}

func (f *fcm) Name() (name string) {
	return CName
}

func clientOptions(rConf receiver.Config, conf Config) []option.ClientOption {
	if conf.CredentialsFile != "" {
		return []option.ClientOption{option.WithCredentialsFile(conf.CredentialsFile)}
	}
	return []option.ClientOption{option.WithAPIKey(rConf.APIKey)}
}

func newProvider(rConf receiver.Config, conf Config) (receiver.Provider, error) {
	fcmApp, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID:     rConf.ProjectId,
		StorageBucket: rConf.StorageBucket,
	}, clientOptions(rConf, conf)...)
	if err != nil {
		return nil, err
	}
	client, err := fcmApp.Messaging(context.Background())
	if err != nil {
		return nil, err
	}
	return &fcmProvider{client: client}, nil
}

type topicManager interface {
	SubscribeToTopic(ctx context.Context, tokens []string, topic string) (*messaging.TopicManagementResponse, error)
}

type fcmProvider struct {
	client topicManager
}

func (f *fcmProvider) SubscribeToTopic(ctx context.Context, token, topic string) (err error) {
	resp, err := f.client.SubscribeToTopic(ctx, []string{token}, topic)
	if err != nil {
		return err
	}
	if resp.FailureCount > 0 {
		var reason string
		if len(resp.Errors) > 0 {
			reason = resp.Errors[0].Reason
		}
		return fmt.Errorf("fcm rejected topic subscription: %s", reason)
	}
	log.Info("subscribed to topic", zap.String("topic", topic))
	return nil
}
