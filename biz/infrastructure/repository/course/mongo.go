package course

import (
	"context"
	"errors"
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/util/log"
	"time"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixCourseCacheKey = "cache:course:"
	CourseCollectionName = "course"
)

type IMongoMapper interface {
	Insert(ctx context.Context, course *Course) error
	FindOneByCode(ctx context.Context, courseCode string) (*Course, error)
}

type MongoMapper struct {
	conn *monc.Model
}

var MongoMapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(IMongoMapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewCourseMongoMapper collection: %s", CourseCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, CourseCollectionName, config.Cache)
	_, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: consts.CourseCode, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create course_code index failed: %v", err)
	}
	return &MongoMapper{
		conn: conn,
	}
}

// Insert course_code 上建有唯一索引, 重复时返回 ErrDuplicateCourse
func (m *MongoMapper) Insert(ctx context.Context, course *Course) error {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
		course.CreateTime = time.Now()
		course.UpdateTime = course.CreateTime
	}
	// 先修课程按集合语义去重
	course.PreReq = lo.Uniq(append([]string{}, course.PreReq...))
	_, err := m.conn.InsertOneNoCache(ctx, course)
	switch {
	case err == nil:
		return nil
	case mongo.IsDuplicateKeyError(err):
		return consts.ErrDuplicateCourse
	default:
		return consts.NewStorageErrno(err)
	}
}

// FindOneByCode 课程创建后不再修改, 按课程代码走缓存
func (m *MongoMapper) FindOneByCode(ctx context.Context, courseCode string) (*Course, error) {
	var c Course
	err := m.conn.FindOne(ctx, prefixCourseCacheKey+courseCode, &c, bson.M{
		consts.CourseCode: courseCode,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrCourseNotFound
	default:
		return nil, consts.NewStorageErrno(err)
	}
}
