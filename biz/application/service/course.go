package service

import (
	"context"
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/infrastructure/repository/class"
	"lms-show/biz/infrastructure/repository/course"
	"lms-show/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type ICourseService interface {
	CreateCourse(ctx context.Context, req *lms.CreateCourseReq) (*lms.CreateCourseResp, error)
	GetCourseInfo(ctx context.Context, req *lms.CourseCodeReq) (*lms.GetCourseInfoResp, error)
	GetClassesByCourse(ctx context.Context, req *lms.CourseCodeReq) (*lms.ListClassesResp, error)
}

type CourseService struct {
	CourseMapper course.IMongoMapper
	ClassMapper  class.IMongoMapper
}

var CourseServiceSet = wire.NewSet(
	wire.Struct(new(CourseService), "*"),
	wire.Bind(new(ICourseService), new(*CourseService)),
)

// CreateCourse 创建课程, 课程代码唯一
func (s *CourseService) CreateCourse(ctx context.Context, req *lms.CreateCourseReq) (*lms.CreateCourseResp, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c := &course.Course{
		CourseCode:  req.CourseCode,
		CourseTitle: req.CourseTitle,
		PreReq:      req.PreReq,
	}
	if err := s.CourseMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "创建课程失败: course=%s, err=%v", req.CourseCode, err)
		return nil, err
	}
	return &lms.CreateCourseResp{
		IsSuccess:  true,
		DocumentId: c.ID.Hex(),
		Message:    "course created",
	}, nil
}

func (s *CourseService) GetCourseInfo(ctx context.Context, req *lms.CourseCodeReq) (*lms.GetCourseInfoResp, error) {
	c, err := s.CourseMapper.FindOneByCode(ctx, req.CourseCode)
	if err != nil {
		return nil, err
	}
	info := new(lms.CourseInfo)
	if err = copier.CopyWithOption(info, c, copierOption); err != nil {
		return nil, err
	}
	return &lms.GetCourseInfoResp{Courses: info}, nil
}

// GetClassesByCourse 课程下的全部开班, 按开课日期排序
func (s *CourseService) GetClassesByCourse(ctx context.Context, req *lms.CourseCodeReq) (*lms.ListClassesResp, error) {
	classes, err := s.ClassMapper.FindByCourse(ctx, req.CourseCode)
	if err != nil {
		return nil, err
	}
	infos, err := toClassInfos(classes)
	if err != nil {
		return nil, err
	}
	return &lms.ListClassesResp{Classes: infos}, nil
}
