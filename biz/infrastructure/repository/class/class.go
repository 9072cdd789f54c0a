package class

import (
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassRun 课程的一次开班, 学员、讲师与课程内容都内嵌在同一文档中
type ClassRun struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Course     CourseRef          `bson:"course" json:"course"`
	StartDate  time.Time          `bson:"start_date" json:"startDate"`
	EndDate    time.Time          `bson:"end_date" json:"endDate"`
	Capacity   int64              `bson:"capacity" json:"capacity"` // 仅作展示, 不限制报名人数
	Trainers   []string           `bson:"trainers" json:"trainers"`
	Learners   []*Learner         `bson:"learners" json:"learners"`
	Content    []*Chapter         `bson:"content" json:"content"`
	CreateTime time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime time.Time          `bson:"update_time" json:"updateTime"`
}

// CourseRef 开班时的课程快照
type CourseRef struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	CourseCode  string             `bson:"course_code" json:"courseCode"`
	CourseTitle string             `bson:"course_title" json:"courseTitle"`
}

// Learner Enrolled 为 false 表示自主报名待审批
type Learner struct {
	Username string `bson:"username" json:"username"`
	Enrolled bool   `bson:"enrolled" json:"enrolled"`
}

// Approve 将学员标记为已录取, 学员不存在时返回 false
func (c *ClassRun) Approve(username string) bool {
	l, ok := lo.Find(c.Learners, func(l *Learner) bool {
		return l.Username == username
	})
	if !ok {
		return false
	}
	l.Enrolled = true
	return true
}

// Apply 追加一条待审批记录, 已在名单中时不做修改并返回 false
func (c *ClassRun) Apply(username string) bool {
	if c.HasLearner(username) {
		return false
	}
	c.Learners = append(c.Learners, &Learner{Username: username, Enrolled: false})
	return true
}

func (c *ClassRun) HasLearner(username string) bool {
	return lo.ContainsBy(c.Learners, func(l *Learner) bool {
		return l.Username == username
	})
}

func (c *ClassRun) HasTrainer(username string) bool {
	return lo.Contains(c.Trainers, username)
}

// Applicants 待审批的学员
func (c *ClassRun) Applicants() []*Learner {
	return lo.Filter(c.Learners, func(l *Learner, _ int) bool {
		return !l.Enrolled
	})
}

// EnrolledCount 已录取人数
func (c *ClassRun) EnrolledCount() int64 {
	return int64(lo.CountBy(c.Learners, func(l *Learner) bool {
		return l.Enrolled
	}))
}

func (c *ClassRun) LearnerList() []*Learner {
	if c.Learners == nil {
		return []*Learner{}
	}
	return c.Learners
}

func (c *ClassRun) TrainerList() []string {
	if c.Trainers == nil {
		return []string{}
	}
	return c.Trainers
}

func (c *ClassRun) ChapterList() []*Chapter {
	if c.Content == nil {
		return []*Chapter{}
	}
	return c.Content
}
