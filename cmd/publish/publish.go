// Command publish puts a push message into the receiver queue.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-receiver/config"
	"github.com/anyproto/anytype-push-receiver/domain"
	"github.com/anyproto/anytype-push-receiver/queue"
	"github.com/anyproto/anytype-push-receiver/redisprovider"
)

var log = logger.NewNamed("publish")

var (
	flagConfigFile = flag.String("c", "etc/receiver.yml", "path to config file")
	flagMessage    = flag.String("m", "", "push message json, read from stdin when empty")
)

func main() {
	flag.Parse()

	conf, err := config.NewFromFile(*flagConfigFile)
	if err != nil {
		log.Fatal("can't open config file", zap.Error(err))
	}
	conf.Log.ApplyGlobal()

	data := []byte(*flagMessage)
	if len(data) == 0 {
		if data, err = io.ReadAll(os.Stdin); err != nil {
			log.Fatal("can't read message", zap.Error(err))
		}
	}
	var msg domain.PushMessage
	if err = json.Unmarshal(data, &msg); err != nil {
		log.Fatal("invalid message", zap.Error(err))
	}

	q := queue.New()
	a := new(app.App)
	a.Register(conf).
		Register(redisprovider.New()).
		Register(q)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err = a.Start(ctx); err != nil {
		log.Fatal("can't start app", zap.Error(err))
	}
	defer func() {
		_ = a.Close(ctx)
	}()
	if err = q.Add(ctx, msg); err != nil {
		log.Error("publish failed", zap.Error(err))
		return
	}
	log.Info("message published", zap.String("messageId", msg.MessageId))
}
