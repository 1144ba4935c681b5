package testredisprovider

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/anyproto/any-sync/app"
	"github.com/redis/go-redis/v9"

	"github.com/anyproto/anytype-push-receiver/redisprovider"
)

// NewTestRedisProvider returns a redis provider backed by an in-memory miniredis.
func NewTestRedisProvider() redisprovider.RedisProvider {
	return new(testRedisProvider)
}

type testRedisProvider struct {
	srv   *miniredis.Miniredis
	redis redis.UniversalClient
}

func (t *testRedisProvider) Init(a *app.App) (err error) {
	if t.srv, err = miniredis.Run(); err != nil {
		return err
	}
	t.redis = redis.NewClient(&redis.Options{Addr: t.srv.Addr()})
	return nil
}

func (t *testRedisProvider) Name() (name string) {
	return redisprovider.CName
}

func (t *testRedisProvider) Run(ctx context.Context) (err error) {
	return t.redis.Ping(ctx).Err()
}

func (t *testRedisProvider) Redis() redis.UniversalClient {
	return t.redis
}

func (t *testRedisProvider) Close(ctx context.Context) (err error) {
	if t.redis != nil {
		err = t.redis.Close()
	}
	if t.srv != nil {
		t.srv.Close()
	}
	return
}
