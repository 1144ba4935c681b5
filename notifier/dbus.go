package notifier

import (
	"context"
	"fmt"

	godbus "github.com/godbus/dbus/v5"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-receiver/domain"
)

const (
	dbusDest   = "org.freedesktop.Notifications"
	dbusPath   = godbus.ObjectPath("/org/freedesktop/Notifications")
	dbusNotify = dbusDest + ".Notify"
)

type dbusBackend struct {
	conn *godbus.Conn
	obj  godbus.BusObject
	conf Config
}

func newDBusBackend(conf Config) (*dbusBackend, error) {
	conn, err := godbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &dbusBackend{
		conn: conn,
		obj:  conn.Object(dbusDest, dbusPath),
		conf: conf,
	}, nil
}

// notifyArgs follows org.freedesktop.Notifications.Notify:
// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout.
func notifyArgs(conf Config, req domain.NotificationRequest) []any {
	expire := conf.ExpireTimeout
	if expire <= 0 {
		expire = -1
	}
	return []any{
		conf.AppName,
		uint32(0),
		req.Options.Icon,
		req.Title,
		req.Options.Body,
		[]string{},
		map[string]godbus.Variant{},
		expire,
	}
}

func (d *dbusBackend) show(ctx context.Context, req domain.NotificationRequest) error {
	var id uint32
	call := d.obj.CallWithContext(ctx, dbusNotify, 0, notifyArgs(d.conf, req)...)
	if call.Err != nil {
		return fmt.Errorf("notify call failed: %w", call.Err)
	}
	if err := call.Store(&id); err != nil {
		return err
	}
	log.Debug("notification shown", zap.Uint32("id", id), zap.String("title", req.Title))
	return nil
}

func (d *dbusBackend) close() error {
	return d.conn.Close()
}
