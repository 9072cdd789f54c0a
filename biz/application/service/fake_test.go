package service

import (
	"context"
	"errors"
	"io"
	"lms-show/biz/infrastructure/cache"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/repository/class"
	"lms-show/biz/infrastructure/repository/course"
	"lms-show/biz/infrastructure/repository/quiz"
	"lms-show/biz/infrastructure/repository/user"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存实现的 mapper, 读写都经过 bson 编解码, 与数据库一样不共享指针

type fakeClassMapper struct {
	mu      sync.Mutex
	classes map[primitive.ObjectID][]byte
	order   []primitive.ObjectID
}

func newFakeClassMapper() *fakeClassMapper {
	return &fakeClassMapper{classes: map[primitive.ObjectID][]byte{}}
}

func (m *fakeClassMapper) encode(c *class.ClassRun) {
	data, err := bson.Marshal(c)
	if err != nil {
		panic(err)
	}
	if _, ok := m.classes[c.ID]; !ok {
		m.order = append(m.order, c.ID)
	}
	m.classes[c.ID] = data
}

func (m *fakeClassMapper) decode(id primitive.ObjectID) (*class.ClassRun, bool) {
	data, ok := m.classes[id]
	if !ok {
		return nil, false
	}
	c := new(class.ClassRun)
	if err := bson.Unmarshal(data, c); err != nil {
		panic(err)
	}
	return c, true
}

func (m *fakeClassMapper) Insert(_ context.Context, c *class.ClassRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
		c.CreateTime = time.Now()
		c.UpdateTime = c.CreateTime
	}
	if c.Trainers == nil {
		c.Trainers = []string{}
	}
	if c.Learners == nil {
		c.Learners = []*class.Learner{}
	}
	if c.Content == nil {
		c.Content = []*class.Chapter{}
	}
	m.encode(c)
	return nil
}

func (m *fakeClassMapper) FindOne(_ context.Context, id string) (*class.ClassRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrClassNotFound
	}
	c, ok := m.decode(oid)
	if !ok {
		return nil, consts.ErrClassNotFound
	}
	return c, nil
}

func (m *fakeClassMapper) filter(pred func(c *class.ClassRun) bool) []*class.ClassRun {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]*class.ClassRun, 0)
	for _, id := range m.order {
		c, _ := m.decode(id)
		if pred(c) {
			res = append(res, c)
		}
	}
	return res
}

func (m *fakeClassMapper) FindByCourse(_ context.Context, courseCode string) ([]*class.ClassRun, error) {
	return m.filter(func(c *class.ClassRun) bool { return c.Course.CourseCode == courseCode }), nil
}

func (m *fakeClassMapper) FindByLearner(_ context.Context, username string) ([]*class.ClassRun, error) {
	return m.filter(func(c *class.ClassRun) bool { return c.HasLearner(username) }), nil
}

func (m *fakeClassMapper) FindByTrainer(_ context.Context, username string) ([]*class.ClassRun, error) {
	return m.filter(func(c *class.ClassRun) bool { return c.HasTrainer(username) }), nil
}

// update 在锁内读改写, 对应数据库的单文档原子更新
func (m *fakeClassMapper) update(id primitive.ObjectID, fn func(c *class.ClassRun) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.decode(id)
	if !ok {
		return consts.ErrClassNotFound
	}
	if err := fn(c); err != nil {
		return err
	}
	c.UpdateTime = time.Now()
	m.encode(c)
	return nil
}

func (m *fakeClassMapper) UpdateLearners(_ context.Context, id primitive.ObjectID, learners []*class.Learner) error {
	return m.update(id, func(c *class.ClassRun) error {
		c.Learners = learners
		return nil
	})
}

func (m *fakeClassMapper) UpdateTrainers(_ context.Context, id primitive.ObjectID, trainers []string) error {
	return m.update(id, func(c *class.ClassRun) error {
		c.Trainers = trainers
		return nil
	})
}

func (m *fakeClassMapper) AddLearner(_ context.Context, id primitive.ObjectID, learner *class.Learner) (bool, error) {
	var added bool
	err := m.update(id, func(c *class.ClassRun) error {
		if c.HasLearner(learner.Username) {
			return nil
		}
		c.Learners = append(c.Learners, learner)
		added = true
		return nil
	})
	return added, err
}

func (m *fakeClassMapper) ApproveLearner(_ context.Context, id primitive.ObjectID, username string) error {
	return m.update(id, func(c *class.ClassRun) error {
		if !c.Approve(username) {
			return consts.ErrLearnerNotFound
		}
		return nil
	})
}

func (m *fakeClassMapper) PushChapter(_ context.Context, id primitive.ObjectID, chapter *class.Chapter) error {
	return m.update(id, func(c *class.ClassRun) error {
		c.Content = append(c.Content, chapter)
		return nil
	})
}

func (m *fakeClassMapper) PushSection(_ context.Context, id, chapterId primitive.ObjectID, section *class.Section) error {
	return m.update(id, func(c *class.ClassRun) error {
		ch, err := c.FindChapter(chapterId.Hex())
		if err != nil {
			return err
		}
		ch.Sections = append(ch.Sections, section)
		return nil
	})
}

func (m *fakeClassMapper) PushContent(_ context.Context, id, chapterId, sectionId primitive.ObjectID, items []*class.ContentItem) error {
	return m.update(id, func(c *class.ClassRun) error {
		sec, err := c.FindSection(chapterId.Hex(), sectionId.Hex())
		if err != nil {
			return err
		}
		sec.Append(items...)
		return nil
	})
}

type fakeCourseMapper struct {
	courses map[string]*course.Course
}

func newFakeCourseMapper(courses ...*course.Course) *fakeCourseMapper {
	m := &fakeCourseMapper{courses: map[string]*course.Course{}}
	for _, c := range courses {
		_ = m.Insert(context.Background(), c)
	}
	return m
}

func (m *fakeCourseMapper) Insert(_ context.Context, c *course.Course) error {
	if _, ok := m.courses[c.CourseCode]; ok {
		return consts.ErrDuplicateCourse
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	c.PreReq = lo.Uniq(append([]string{}, c.PreReq...))
	m.courses[c.CourseCode] = c
	return nil
}

func (m *fakeCourseMapper) FindOneByCode(_ context.Context, courseCode string) (*course.Course, error) {
	c, ok := m.courses[courseCode]
	if !ok {
		return nil, consts.ErrCourseNotFound
	}
	return c, nil
}

type fakeUserMapper struct {
	users map[string]*user.User
	err   error
}

func (m *fakeUserMapper) FindOneByUsername(_ context.Context, username string) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[username]
	if !ok {
		return nil, consts.ErrUserNotFound
	}
	return u, nil
}

type fakeQuizMapper struct {
	quizzes []*quiz.Quiz
	err     error
}

func (m *fakeQuizMapper) FindByClassID(_ context.Context, classId string) ([]*quiz.Quiz, error) {
	if m.err != nil {
		return nil, m.err
	}
	return lo.Filter(m.quizzes, func(q *quiz.Quiz, _ int) bool { return q.ClassId == classId }), nil
}

type fakeContentCache struct {
	mu      sync.Mutex
	entries map[string][]*class.Chapter
	gets    int
	deletes int
}

func newFakeContentCache() *fakeContentCache {
	return &fakeContentCache{entries: map[string][]*class.Chapter{}}
}

func (m *fakeContentCache) Get(_ context.Context, classId string) ([]*class.Chapter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	content, ok := m.entries[classId]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return content, nil
}

func (m *fakeContentCache) Set(_ context.Context, classId string, content []*class.Chapter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[classId] = content
	return nil
}

func (m *fakeContentCache) Delete(_ context.Context, classId string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	delete(m.entries, classId)
	return nil
}

type fakeStorage struct {
	keys  []string
	types []string
	data  [][]byte
	err   error
}

func (s *fakeStorage) Upload(_ context.Context, key, contentType string, r io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.keys = append(s.keys, key)
	s.types = append(s.types, contentType)
	s.data = append(s.data, b)
	return "https://files.example.com/" + key, nil
}

var errBoom = errors.New("boom")
