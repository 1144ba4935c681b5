package config

import (
	"os"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/anytype-push-receiver/db"
	"github.com/anyproto/anytype-push-receiver/notifier"
	"github.com/anyproto/anytype-push-receiver/push"
	"github.com/anyproto/anytype-push-receiver/queue"
	"github.com/anyproto/anytype-push-receiver/receiver"
	"github.com/anyproto/anytype-push-receiver/receiver/provider/fcm"
	"github.com/anyproto/anytype-push-receiver/redisprovider"
)

const CName = "config"

func NewFromFile(path string) (c *Config, err error) {
	c = &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return
}

type Config struct {
	Log      logger.Config        `yaml:"log"`
	Metric   metric.Config        `yaml:"metric"`
	Mongo    db.Mongo             `yaml:"mongo"`
	Redis    redisprovider.Config `yaml:"redis"`
	Queue    queue.Config         `yaml:"queue"`
	Receiver receiver.Config      `yaml:"receiver"`
	FCM      fcm.Config           `yaml:"fcm"`
	Notifier notifier.Config      `yaml:"notifier"`
	Push     push.Config          `yaml:"push"`
}

func (c *Config) Init(a *app.App) (err error) {
	return nil
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetMongo() db.Mongo {
	return c.Mongo
}

func (c *Config) GetRedis() redisprovider.Config {
	return c.Redis
}

func (c *Config) GetQueue() queue.Config {
	return c.Queue
}

func (c *Config) GetReceiver() receiver.Config {
	return c.Receiver
}

func (c *Config) GetFCM() fcm.Config {
	return c.FCM
}

func (c *Config) GetNotifier() notifier.Config {
	return c.Notifier
}

func (c *Config) GetPush() push.Config {
	return c.Push
}
