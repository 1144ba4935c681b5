package domain

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

type RegistrationState uint32

const (
	RegistrationStateUninitialized RegistrationState = iota
	RegistrationStateRegistered
)

func (s RegistrationState) String() string {
	switch s {
	case RegistrationStateUninitialized:
		return "uninitialized"
	case RegistrationStateRegistered:
		return "registered"
	default:
		return "unknown"
	}
}

// NewRegistrationId returns a stable id for the project/sender/app triple.
func NewRegistrationId(projectId, senderId, appId string) string {
	sum := sha256.Sum256([]byte(projectId + "/" + senderId + "/" + appId))
	return base58.Encode(sum[:])
}

type Registration struct {
	Id        string   `bson:"_id"`
	ProjectId string   `bson:"projectId"`
	SenderId  string   `bson:"senderId"`
	AppId     string   `bson:"appId"`
	Topics    []string `bson:"topics"`
	Created   int64    `bson:"created"`
	Updated   int64    `bson:"updated"`
}
