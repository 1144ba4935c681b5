package receiver

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid receiver config")

// Config identifies the messaging project the receiver registers with.
type Config struct {
	APIKey            string   `yaml:"apiKey"`
	AuthDomain        string   `yaml:"authDomain"`
	ProjectId         string   `yaml:"projectId"`
	StorageBucket     string   `yaml:"storageBucket"`
	MessagingSenderId string   `yaml:"messagingSenderId"`
	AppId             string   `yaml:"appId"`
	RegistrationToken string   `yaml:"registrationToken"`
	Topics            []string `yaml:"topics"`
}

func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"apiKey", c.APIKey},
		{"authDomain", c.AuthDomain},
		{"projectId", c.ProjectId},
		{"messagingSenderId", c.MessagingSenderId},
		{"appId", c.AppId},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, f.name)
		}
	}
	if len(c.Topics) > 0 && c.RegistrationToken == "" {
		return fmt.Errorf("%w: topics require registrationToken", ErrInvalidConfig)
	}
	return nil
}
