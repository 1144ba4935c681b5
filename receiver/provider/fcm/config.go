package fcm

import (
	"errors"

	"github.com/anyproto/anytype-push-receiver/receiver"
)

// ErrCredentialsRequired is returned when topics are configured without a service account:
// topic management is not available with an api key.
var ErrCredentialsRequired = errors.New("fcm: topics require credentialsFile")

type configSource interface {
	GetFCM() Config
	GetReceiver() receiver.Config
}

type Config struct {
	// CredentialsFile is a service account file, the receiver api key is used when empty
	CredentialsFile string `yaml:"credentialsFile"`
}

func (c Config) Validate(rConf receiver.Config) error {
	if len(rConf.Topics) > 0 && c.CredentialsFile == "" {
		return ErrCredentialsRequired
	}
	return nil
}
