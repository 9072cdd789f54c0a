package class

import (
	"lms-show/biz/infrastructure/consts"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 课程内容树: Chapter -> Section -> ContentItem, 只追加不删改

type Chapter struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Sections []*Section         `bson:"sections" json:"sections"`
}

type Section struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Content []*ContentItem     `bson:"content" json:"content"`
}

// ContentItem Type 为 link 时 Link 有值, 为 file 时 File 有值
type ContentItem struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Type       string             `bson:"type" json:"type"`
	Link       string             `bson:"link,omitempty" json:"link,omitempty"`
	File       *FileInfo          `bson:"file,omitempty" json:"file,omitempty"`
	UploadTime time.Time          `bson:"upload_time" json:"uploadTime"`
}

// FileInfo 文件存储返回的描述信息
type FileInfo struct {
	Location string `bson:"location" json:"location" mapstructure:"location"`
	Name     string `bson:"name" json:"name" mapstructure:"name"`
	Size     int64  `bson:"size" json:"size" mapstructure:"size"`
	Type     string `bson:"type" json:"type" mapstructure:"type"`
}

func NewLink(url string) *ContentItem {
	return &ContentItem{
		ID:         primitive.NewObjectID(),
		Type:       consts.ContentLink,
		Link:       url,
		UploadTime: time.Now(),
	}
}

func NewFile(info *FileInfo) *ContentItem {
	return &ContentItem{
		ID:         primitive.NewObjectID(),
		Type:       consts.ContentFile,
		File:       info,
		UploadTime: time.Now(),
	}
}

// AddChapter 在末尾追加一个空章节
func (c *ClassRun) AddChapter(title string) *Chapter {
	ch := &Chapter{
		ID:       primitive.NewObjectID(),
		Title:    title,
		Sections: []*Section{},
	}
	c.Content = append(c.Content, ch)
	return ch
}

func (c *ClassRun) FindChapter(chapterId string) (*Chapter, error) {
	oid, err := primitive.ObjectIDFromHex(chapterId)
	if err != nil {
		return nil, consts.ErrChapterNotFound
	}
	ch, ok := lo.Find(c.Content, func(ch *Chapter) bool {
		return ch.ID == oid
	})
	if !ok {
		return nil, consts.ErrChapterNotFound
	}
	return ch, nil
}

func (c *ClassRun) FindSection(chapterId, sectionId string) (*Section, error) {
	ch, err := c.FindChapter(chapterId)
	if err != nil {
		return nil, err
	}
	return ch.FindSection(sectionId)
}

// AddSection 在章节末尾追加一个空小节
func (ch *Chapter) AddSection(title string) *Section {
	s := &Section{
		ID:      primitive.NewObjectID(),
		Title:   title,
		Content: []*ContentItem{},
	}
	ch.Sections = append(ch.Sections, s)
	return s
}

func (ch *Chapter) FindSection(sectionId string) (*Section, error) {
	oid, err := primitive.ObjectIDFromHex(sectionId)
	if err != nil {
		return nil, consts.ErrSectionNotFound
	}
	s, ok := lo.Find(ch.Sections, func(s *Section) bool {
		return s.ID == oid
	})
	if !ok {
		return nil, consts.ErrSectionNotFound
	}
	return s, nil
}

// Append 按提交顺序追加内容
func (s *Section) Append(items ...*ContentItem) {
	s.Content = append(s.Content, items...)
}

func (s *Section) ContentList() []*ContentItem {
	if s.Content == nil {
		return []*ContentItem{}
	}
	return s.Content
}
