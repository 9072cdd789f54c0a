package class

import (
	"context"
	"errors"
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/util/log"
	"time"

	"github.com/google/wire"
	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ClassCollectionName = "class_run"
)

type IMongoMapper interface {
	Insert(ctx context.Context, class *ClassRun) error
	FindOne(ctx context.Context, id string) (*ClassRun, error)
	FindByCourse(ctx context.Context, courseCode string) ([]*ClassRun, error)
	FindByLearner(ctx context.Context, username string) ([]*ClassRun, error)
	FindByTrainer(ctx context.Context, username string) ([]*ClassRun, error)
	UpdateLearners(ctx context.Context, id primitive.ObjectID, learners []*Learner) error
	UpdateTrainers(ctx context.Context, id primitive.ObjectID, trainers []string) error
	AddLearner(ctx context.Context, id primitive.ObjectID, learner *Learner) (bool, error)
	ApproveLearner(ctx context.Context, id primitive.ObjectID, username string) error
	PushChapter(ctx context.Context, id primitive.ObjectID, chapter *Chapter) error
	PushSection(ctx context.Context, id, chapterId primitive.ObjectID, section *Section) error
	PushContent(ctx context.Context, id, chapterId, sectionId primitive.ObjectID, items []*ContentItem) error
}

type MongoMapper struct {
	conn *monc.Model
}

var MongoMapperSet = wire.NewSet(
	NewMongoMapper,
	wire.Bind(new(IMongoMapper), new(*MongoMapper)),
)

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewClassMongoMapper collection: %s", ClassCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ClassCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class *ClassRun) error {
	if class.ID.IsZero() {
		class.ID = primitive.NewObjectID()
		class.CreateTime = time.Now()
		class.UpdateTime = class.CreateTime
	}
	if class.Trainers == nil {
		class.Trainers = []string{}
	}
	if class.Learners == nil {
		class.Learners = []*Learner{}
	}
	if class.Content == nil {
		class.Content = []*Chapter{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, class)
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*ClassRun, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrClassNotFound
	}
	var c ClassRun
	err = m.conn.FindOneNoCache(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrClassNotFound
	default:
		return nil, consts.NewStorageErrno(err)
	}
}

func (m *MongoMapper) FindByCourse(ctx context.Context, courseCode string) ([]*ClassRun, error) {
	return m.find(ctx, bson.M{consts.Course + "." + consts.CourseCode: courseCode})
}

func (m *MongoMapper) FindByLearner(ctx context.Context, username string) ([]*ClassRun, error) {
	return m.find(ctx, bson.M{consts.LearnerName: username})
}

func (m *MongoMapper) FindByTrainer(ctx context.Context, username string) ([]*ClassRun, error) {
	// trainers 为字符串数组, 等值匹配即数组包含
	return m.find(ctx, bson.M{consts.Trainers: username})
}

func (m *MongoMapper) find(ctx context.Context, filter bson.M) ([]*ClassRun, error) {
	classes := make([]*ClassRun, 0)
	err := m.conn.Find(ctx, &classes, filter, &options.FindOptions{
		Sort: bson.D{{Key: consts.StartDate, Value: 1}},
	})
	if err != nil {
		return nil, consts.NewStorageErrno(err)
	}
	return classes, nil
}

// UpdateLearners 整体覆盖学员名单, 并发写入以最后一次为准
func (m *MongoMapper) UpdateLearners(ctx context.Context, id primitive.ObjectID, learners []*Learner) error {
	return m.set(ctx, id, consts.Learners, learners)
}

// UpdateTrainers 整体覆盖讲师名单
func (m *MongoMapper) UpdateTrainers(ctx context.Context, id primitive.ObjectID, trainers []string) error {
	return m.set(ctx, id, consts.Trainers, trainers)
}

// AddLearner 学员不在名单中时追加, 已存在返回 false
func (m *MongoMapper) AddLearner(ctx context.Context, id primitive.ObjectID, learner *Learner) (bool, error) {
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.ID:          id,
		consts.LearnerName: bson.M{consts.NotEqual: learner.Username},
	}, bson.M{
		consts.Push: bson.M{consts.Learners: learner},
		consts.Set:  bson.M{consts.UpdateTime: time.Now()},
	})
	if err != nil {
		return false, consts.NewStorageErrno(err)
	}
	return res.MatchedCount > 0, nil
}

// ApproveLearner 只修改匹配学员的 enrolled, 不覆盖名单
func (m *MongoMapper) ApproveLearner(ctx context.Context, id primitive.ObjectID, username string) error {
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.ID:          id,
		consts.LearnerName: username,
	}, bson.M{
		consts.Set: bson.M{
			consts.LearnerEnrolled: true,
			consts.UpdateTime:      time.Now(),
		},
	})
	if err != nil {
		return consts.NewStorageErrno(err)
	}
	if res.MatchedCount == 0 {
		return consts.ErrLearnerNotFound
	}
	return nil
}

func (m *MongoMapper) PushChapter(ctx context.Context, id primitive.ObjectID, chapter *Chapter) error {
	return m.push(ctx, bson.M{consts.ID: id}, bson.M{consts.Content: chapter}, nil, consts.ErrClassNotFound)
}

func (m *MongoMapper) PushSection(ctx context.Context, id, chapterId primitive.ObjectID, section *Section) error {
	return m.push(ctx,
		bson.M{consts.ID: id, consts.ChapterID: chapterId},
		bson.M{"content.$[ch].sections": section},
		[]any{bson.M{"ch._id": chapterId}},
		consts.ErrChapterNotFound,
	)
}

// PushContent 按顺序追加到小节末尾
func (m *MongoMapper) PushContent(ctx context.Context, id, chapterId, sectionId primitive.ObjectID, items []*ContentItem) error {
	return m.push(ctx,
		bson.M{consts.ID: id, consts.Content: bson.M{consts.ElemMatch: bson.M{
			consts.ID:        chapterId,
			consts.SectionIDs: sectionId,
		}}},
		bson.M{"content.$[ch].sections.$[sec].content": bson.M{consts.Each: items}},
		[]any{bson.M{"ch._id": chapterId}, bson.M{"sec._id": sectionId}},
		consts.ErrSectionNotFound,
	)
}

// push 用 $push 原子追加, 并发追加互不覆盖
func (m *MongoMapper) push(ctx context.Context, filter, value bson.M, arrayFilters []any, notFound error) error {
	opts := options.Update()
	if len(arrayFilters) > 0 {
		opts.SetArrayFilters(options.ArrayFilters{Filters: arrayFilters})
	}
	res, err := m.conn.UpdateOneNoCache(ctx, filter, bson.M{
		consts.Push: value,
		consts.Set:  bson.M{consts.UpdateTime: time.Now()},
	}, opts)
	if err != nil {
		return consts.NewStorageErrno(err)
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}

// set 只覆盖单个字段, 不影响同一文档上的其他名单
func (m *MongoMapper) set(ctx context.Context, id primitive.ObjectID, field string, value any) error {
	res, err := m.conn.UpdateByIDNoCache(ctx, id, bson.M{
		consts.Set: bson.M{
			field:             value,
			consts.UpdateTime: time.Now(),
		},
	})
	if err != nil {
		return consts.NewStorageErrno(err)
	}
	if res.MatchedCount == 0 {
		return consts.ErrClassNotFound
	}
	return nil
}
