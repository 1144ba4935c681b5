//go:generate mockgen -destination mock_registrationrepo/mock_registrationrepo.go github.com/anyproto/anytype-push-receiver/repo/registrationrepo RegistrationRepo

package registrationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/anyproto/any-sync/app"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anyproto/anytype-push-receiver/db"
	"github.com/anyproto/anytype-push-receiver/domain"
)

const CName = "push.registrationrepo"

const collName = "registration"

var (
	ErrNotFound = errors.New("registration not found")
)

func New() RegistrationRepo {
	return new(registrationRepo)
}

type RegistrationRepo interface {
	Upsert(ctx context.Context, reg domain.Registration) (err error)
	Get(ctx context.Context, id string) (reg domain.Registration, err error)
	app.ComponentRunnable
}

type registrationRepo struct {
	coll *mongo.Collection
}

func (r *registrationRepo) Init(a *app.App) (err error) {
	r.coll = a.MustComponent(db.CName).(db.Database).Db().Collection(collName)
	return
}

func (r *registrationRepo) Name() (name string) {
	return CName
}

func (r *registrationRepo) Run(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{"senderId", 1}},
	})
	return err
}

func (r *registrationRepo) Upsert(ctx context.Context, reg domain.Registration) (err error) {
	now := time.Now().Unix()
	topics := reg.Topics
	if topics == nil {
		topics = []string{}
	}
	opts := options.Update().SetUpsert(true)
	_, err = r.coll.UpdateByID(
		ctx,
		reg.Id,
		bson.D{
			{"$set", bson.D{
				{"projectId", reg.ProjectId},
				{"senderId", reg.SenderId},
				{"appId", reg.AppId},
				{"topics", topics},
				{"updated", now},
			}},
			{"$setOnInsert", bson.D{{"created", now}}},
		},
		opts,
	)
	return
}

func (r *registrationRepo) Get(ctx context.Context, id string) (reg domain.Registration, err error) {
	err = r.coll.FindOne(ctx, bson.D{{"_id", id}}).Decode(&reg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = ErrNotFound
	}
	return
}

func (r *registrationRepo) Close(ctx context.Context) (err error) {
	return nil
}
