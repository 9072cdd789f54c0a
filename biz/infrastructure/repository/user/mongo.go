package user

import (
	"context"
	"errors"
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	UserCollectionName = "user"
)

type IMongoMapper interface {
	FindOneByUsername(ctx context.Context, username string) (*User, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var MongoMapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(IMongoMapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewUserMongoMapper collection: %s", UserCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, UserCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

// FindOneByUsername 角色可能被身份系统修改, 不走缓存
func (m *MongoMapper) FindOneByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := m.conn.FindOneNoCache(ctx, &u, bson.M{
		consts.Username: username,
	})
	switch {
	case err == nil:
		return &u, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrUserNotFound
	default:
		return nil, consts.NewStorageErrno(err)
	}
}
