package queue

import (
	"context"
	"testing"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/anytype-push-receiver/domain"
	"github.com/anyproto/anytype-push-receiver/redisprovider/testredisprovider"
)

var ctx = context.Background()

func TestQueue_Consume(t *testing.T) {
	fx := newFixture(t)
	var toSend = []domain.PushMessage{
		{MessageId: "1", Notification: &domain.Notification{Title: "New message", Body: "Hello"}},
		{MessageId: "2", Data: map[string]string{"k": "v"}},
	}
	require.NoError(t, fx.Add(ctx, toSend[0]))
	var msgs = make(chan domain.PushMessage)
	require.NoError(t, fx.Consume(ctx, func(ctx context.Context, msg domain.PushMessage) error {
		msgs <- msg
		return nil
	}))

	require.NoError(t, fx.Add(ctx, toSend[1]))
	var result = make([]domain.PushMessage, 2)
	for i := range result {
		select {
		case msg := <-msgs:
			result[i] = msg
		case <-time.After(time.Second * 5):
			t.Fatal("timeout")
		}
	}
	assert.Equal(t, toSend, result)
}

func TestQueue_ConsumeReject(t *testing.T) {
	fx := newFixture(t)
	q := fx.Queue.(*queue)

	var seen = make(chan domain.PushMessage, 3)
	require.NoError(t, fx.Consume(ctx, func(ctx context.Context, msg domain.PushMessage) error {
		seen <- msg
		if msg.Notification == nil {
			return domain.ErrNoNotification
		}
		return nil
	}))

	require.NoError(t, q.queue.Publish("not json"))
	require.NoError(t, fx.Add(ctx, domain.PushMessage{MessageId: "bad"}))
	require.NoError(t, fx.Add(ctx, domain.PushMessage{
		MessageId:    "ok",
		Notification: &domain.Notification{Title: "New message", Body: "Hello"},
	}))

	var ids []string
	for i := 0; i < 2; i++ {
		select {
		case msg := <-seen:
			ids = append(ids, msg.MessageId)
		case <-time.After(time.Second * 5):
			t.Fatal("timeout")
		}
	}
	assert.Equal(t, []string{"bad", "ok"}, ids)

	rejectedKey := "rmq::queue::[" + defaultName + "]::rejected"
	require.Eventually(t, func() bool {
		return q.client.LLen(ctx, rejectedKey).Val() == 2 && unackedCount(q) == 0
	}, time.Second*5, time.Millisecond*50)

	rejected, err := q.client.LRange(ctx, rejectedKey, 0, -1).Result()
	require.NoError(t, err)
	assert.Contains(t, rejected, "not json")
	for _, payload := range rejected {
		assert.NotContains(t, payload, `"ok"`)
	}
	select {
	case msg := <-seen:
		t.Fatalf("unexpected delivery: %+v", msg)
	default:
	}
}

func unackedCount(q *queue) (count int64) {
	keys, err := q.client.Keys(ctx, "rmq::connection::*::unacked").Result()
	if err != nil {
		return -1
	}
	for _, key := range keys {
		count += q.client.LLen(ctx, key).Val()
	}
	return
}

type fixture struct {
	Queue
	a *app.App
}

func newFixture(t *testing.T) *fixture {
	fx := &fixture{
		Queue: New(),
		a:     new(app.App),
	}
	fx.a.Register(testredisprovider.NewTestRedisProvider()).Register(fx.Queue)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return fx
}
