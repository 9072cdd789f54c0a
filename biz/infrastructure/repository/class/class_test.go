package class

import (
	"lms-show/biz/infrastructure/consts"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestApproveAndApply(t *testing.T) {
	c := &ClassRun{Learners: []*Learner{{Username: "claire.niu"}}}

	assert.True(t, c.Approve("claire.niu"))
	assert.True(t, c.Approve("claire.niu"))
	assert.False(t, c.Approve("nobody"))
	assert.Equal(t, int64(1), c.EnrolledCount())

	assert.True(t, c.Apply("joen.chua"))
	assert.False(t, c.Apply("joen.chua"))
	assert.False(t, c.Apply("claire.niu"))
	assert.Len(t, c.Learners, 2)
	assert.Equal(t, []*Learner{{Username: "joen.chua", Enrolled: false}}, c.Applicants())
	assert.True(t, c.HasLearner("joen.chua"))
}

func TestListsAreNeverNil(t *testing.T) {
	c := new(ClassRun)
	assert.NotNil(t, c.LearnerList())
	assert.NotNil(t, c.TrainerList())
	assert.NotNil(t, c.ChapterList())
	assert.NotNil(t, c.Applicants())
	assert.False(t, c.HasTrainer("hong.wei"))

	c.Trainers = []string{"hong.wei"}
	assert.True(t, c.HasTrainer("hong.wei"))
}

func TestContentTree(t *testing.T) {
	c := new(ClassRun)
	ch := c.AddChapter("Week 1")
	sec := ch.AddSection("Intro")
	sec.Append(NewLink("https://example.com/a"), NewLink("https://example.com/b"))
	sec.Append(NewFile(&FileInfo{Location: "https://files.example.com/x.pdf", Name: "x.pdf"}))

	got, err := c.FindSection(ch.ID.Hex(), sec.ID.Hex())
	require.NoError(t, err)
	require.Len(t, got.ContentList(), 3)
	assert.Equal(t, "https://example.com/a", got.Content[0].Link)
	assert.Equal(t, "https://example.com/b", got.Content[1].Link)
	assert.Equal(t, consts.ContentFile, got.Content[2].Type)
	assert.Equal(t, "x.pdf", got.Content[2].File.Name)

	_, err = c.FindChapter("bad")
	assert.ErrorIs(t, err, consts.ErrChapterNotFound)
	_, err = c.FindSection(ch.ID.Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, consts.ErrSectionNotFound)
	_, err = c.FindSection(ch.ID.Hex(), "bad")
	assert.ErrorIs(t, err, consts.ErrSectionNotFound)
}
