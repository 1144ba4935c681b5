//go:generate mockgen -destination mock_queue/mock_queue.go github.com/anyproto/anytype-push-receiver/queue Queue

package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-receiver/domain"
	"github.com/anyproto/anytype-push-receiver/redisprovider"
)

const CName = "push.queue"

var log = logger.NewNamed(CName)

const (
	defaultName         = "msgs"
	defaultTag          = "push-receiver"
	defaultPollInterval = 100 * time.Millisecond
)

type Config struct {
	Name           string `yaml:"name"`
	Tag            string `yaml:"tag"`
	PollIntervalMs int    `yaml:"pollIntervalMs"`
}

type configSource interface {
	GetQueue() Config
}

func New() Queue {
	return new(queue)
}

type Queue interface {
	Add(ctx context.Context, msg domain.PushMessage) error
	Consume(ctx context.Context, handle func(ctx context.Context, msg domain.PushMessage) error) error
	app.ComponentRunnable
}

type queue struct {
	conf         Config
	client       redis.UniversalClient
	rmqConn      rmq.Connection
	queue        rmq.Queue
	errCh        chan error
	pollInterval time.Duration
	runCtx       context.Context
	runCtxCancel context.CancelFunc
}

func (q *queue) Init(a *app.App) (err error) {
	q.client = a.MustComponent(redisprovider.CName).(redisprovider.RedisProvider).Redis()
	if cs, ok := a.Component("config").(configSource); ok {
		q.conf = cs.GetQueue()
	}
	if q.conf.Name == "" {
		q.conf.Name = defaultName
	}
	if q.conf.Tag == "" {
		q.conf.Tag = defaultTag
	}
	q.pollInterval = defaultPollInterval
	if q.conf.PollIntervalMs > 0 {
		q.pollInterval = time.Duration(q.conf.PollIntervalMs) * time.Millisecond
	}
	q.runCtx, q.runCtxCancel = context.WithCancel(context.Background())
	return
}

func (q *queue) Name() (name string) {
	return CName
}

func (q *queue) Run(ctx context.Context) (err error) {
	q.errCh = make(chan error, 10)
	if q.rmqConn, err = openConnection(q.conf.Tag, q.client, q.errCh); err != nil {
		return err
	}
	go q.logRmqErrs()
	if q.queue, err = q.rmqConn.OpenQueue(q.conf.Name); err != nil {
		return err
	}
	// one consumer handles one delivery at a time, a larger prefetch would only park messages in unacked
	return q.queue.StartConsuming(1, q.pollInterval)
}

func openConnection(tag string, client redis.UniversalClient, errCh chan<- error) (rmq.Connection, error) {
	if cluster, ok := client.(*redis.ClusterClient); ok {
		return rmq.OpenClusterConnection(tag, cluster, errCh)
	}
	return rmq.OpenConnectionWithRedisClient(tag, client, errCh)
}

func (q *queue) Add(ctx context.Context, msg domain.PushMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode push message: %w", err)
	}
	return q.queue.PublishBytes(data)
}

// Consume adds a single consumer, so handle is never called concurrently.
// Undecodable payloads and handle errors reject the delivery.
func (q *queue) Consume(ctx context.Context, handle func(ctx context.Context, msg domain.PushMessage) error) error {
	cons := func(delivery rmq.Delivery) {
		if ctx.Err() != nil || q.runCtx.Err() != nil {
			settle(delivery, false)
			return
		}
		var msg domain.PushMessage
		if err := json.Unmarshal([]byte(delivery.Payload()), &msg); err != nil {
			log.Warn("can't decode message", zap.Error(err))
			settle(delivery, false)
			return
		}
		settle(delivery, handle(q.runCtx, msg) == nil)
	}
	_, err := q.queue.AddConsumerFunc(q.conf.Tag, cons)
	return err
}

func settle(delivery rmq.Delivery, ack bool) {
	var err error
	if ack {
		err = delivery.Ack()
	} else {
		err = delivery.Reject()
	}
	if err != nil {
		log.Warn("can't settle delivery", zap.Bool("ack", ack), zap.Error(err))
	}
}

func (q *queue) logRmqErrs() {
	for {
		select {
		case <-q.runCtx.Done():
			return
		case err := <-q.errCh:
			log.Warn("rmq error", zap.Error(err))
		}
	}
}

func (q *queue) Close(ctx context.Context) (err error) {
	if q.runCtxCancel != nil {
		q.runCtxCancel()
	}
	if q.queue == nil {
		return nil
	}
	select {
	case <-q.queue.StopConsuming():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
