package service

import (
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/repository/class"
	"time"

	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 数据库模型到响应结构的转换

var copierOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: primitive.ObjectID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(primitive.ObjectID).Hex(), nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(consts.DateLayout), nil
			},
		},
	},
}

func toClassInfo(c *class.ClassRun) (*lms.ClassInfo, error) {
	info := new(lms.ClassInfo)
	if err := copier.CopyWithOption(info, c, copierOption); err != nil {
		return nil, err
	}
	info.Trainers = c.TrainerList()
	info.LearnerCount = int64(len(c.Learners))
	info.EnrolledCount = c.EnrolledCount()
	return info, nil
}

func toClassInfos(classes []*class.ClassRun) ([]*lms.ClassInfo, error) {
	infos := make([]*lms.ClassInfo, 0, len(classes))
	for _, c := range classes {
		info, err := toClassInfo(c)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func toLearnerInfos(learners []*class.Learner) ([]*lms.LearnerInfo, error) {
	infos := make([]*lms.LearnerInfo, 0, len(learners))
	if err := copier.Copy(&infos, learners); err != nil {
		return nil, err
	}
	return infos, nil
}

func toLearners(reqs []lms.LearnerReq) []*class.Learner {
	return lo.Map(reqs, func(r lms.LearnerReq, _ int) *class.Learner {
		return &class.Learner{Username: r.Username, Enrolled: lo.FromPtr(r.Enrolled)}
	})
}

func toContentInfos(items []*class.ContentItem) []*lms.ContentInfo {
	return lo.Map(items, func(item *class.ContentItem, _ int) *lms.ContentInfo {
		info := &lms.ContentInfo{
			ID:         item.ID.Hex(),
			Type:       item.Type,
			Link:       item.Link,
			UploadTime: item.UploadTime.Format(time.RFC3339),
		}
		if item.File != nil {
			info.File = &lms.FileInfo{
				Location: item.File.Location,
				Name:     item.File.Name,
				Size:     item.File.Size,
				Type:     item.File.Type,
			}
		}
		return info
	})
}

func toChapterInfos(chapters []*class.Chapter) []*lms.ChapterInfo {
	return lo.Map(chapters, func(ch *class.Chapter, _ int) *lms.ChapterInfo {
		return &lms.ChapterInfo{
			ID:    ch.ID.Hex(),
			Title: ch.Title,
			Sections: lo.Map(ch.Sections, func(s *class.Section, _ int) *lms.SectionInfo {
				return &lms.SectionInfo{
					ID:      s.ID.Hex(),
					Title:   s.Title,
					Content: toContentInfos(s.ContentList()),
				}
			}),
		}
	})
}
