package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-receiver/config"
	"github.com/anyproto/anytype-push-receiver/db"
	"github.com/anyproto/anytype-push-receiver/notifier"
	"github.com/anyproto/anytype-push-receiver/push"
	"github.com/anyproto/anytype-push-receiver/queue"
	"github.com/anyproto/anytype-push-receiver/receiver"
	"github.com/anyproto/anytype-push-receiver/receiver/provider/fcm"
	"github.com/anyproto/anytype-push-receiver/redisprovider"
	"github.com/anyproto/anytype-push-receiver/repo/registrationrepo"
)

var log = logger.NewNamed("main")

// set by govvv
var (
	GitCommit  string
	GitBranch  string
	GitState   string
	GitSummary string
	BuildDate  string
	Version    = "dev"
)

var (
	flagConfigFile = flag.String("c", "etc/receiver.yml", "path to config file")
	flagVersion    = flag.Bool("v", false, "show version and exit")
	flagHelp       = flag.Bool("h", false, "show help and exit")
)

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("anytype-push-receiver %s\n", Version)
		fmt.Printf("build %s, commit %s (%s, %s %s)\n", BuildDate, GitCommit, GitSummary, GitBranch, GitState)
		return
	}
	if *flagHelp {
		flag.PrintDefaults()
		return
	}

	conf, err := config.NewFromFile(*flagConfigFile)
	if err != nil {
		log.Fatal("can't open config file", zap.Error(err))
	}
	conf.Log.ApplyGlobal()

	a := new(app.App)
	Bootstrap(a, conf)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err = a.Start(ctx); err != nil {
		log.Fatal("can't start app", zap.Error(err))
	}
	log.Info("app started", zap.String("version", Version))

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-exit
	log.Info("received exit signal, stop app...", zap.String("signal", fmt.Sprint(sig)))

	ctx, cancel = context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err = a.Close(ctx); err != nil {
		log.Fatal("close error", zap.Error(err))
	} else {
		log.Info("goodbye!")
	}
	time.Sleep(time.Second / 3)
}

// Bootstrap registers components in start order: the receiver must run before push subscribes to it.
func Bootstrap(a *app.App, conf *config.Config) {
	a.Register(conf).
		Register(metric.New()).
		Register(db.New()).
		Register(redisprovider.New()).
		Register(registrationrepo.New()).
		Register(queue.New()).
		Register(receiver.New()).
		Register(fcm.New()).
		Register(notifier.New()).
		Register(push.New())
}
