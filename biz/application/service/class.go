package service

import (
	"context"
	"errors"
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/repository/class"
	"lms-show/biz/infrastructure/repository/course"
	"lms-show/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/spf13/cast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IClassService interface {
	CreateNewClass(ctx context.Context, req *lms.CreateClassReq) (*lms.CreateClassResp, error)
	GetClassInfo(ctx context.Context, req *lms.ClassIdReq) (*lms.GetClassInfoResp, error)
	UpdateClassLearners(ctx context.Context, req *lms.UpdateLearnersReq) (*lms.Response, error)
	GetLearnerInClass(ctx context.Context, req *lms.ClassIdReq) (*lms.GetLearnersResp, error)
	UpdateClassTrainers(ctx context.Context, req *lms.UpdateTrainersReq) (*lms.Response, error)
	GetTrainerInClass(ctx context.Context, req *lms.ClassIdReq) (*lms.GetTrainersResp, error)
	ApproveSelfEnrollment(ctx context.Context, req *lms.ApproveReq) (*lms.Response, error)
	ApplyToClass(ctx context.Context, req *lms.ApplyReq) (*lms.Response, error)
	GetApplicants(ctx context.Context, req *lms.ClassIdReq) (*lms.GetApplicantsResp, error)
	GetEnrolledClass(ctx context.Context, req *lms.UsernameReq) (*lms.ListClassesResp, error)
	GetTeachingClass(ctx context.Context, req *lms.UsernameReq) (*lms.ListClassesResp, error)
}

type ClassService struct {
	ClassMapper  class.IMongoMapper
	CourseMapper course.IMongoMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateNewClass 为已有课程开班, 开班时记录课程快照
func (s *ClassService) CreateNewClass(ctx context.Context, req *lms.CreateClassReq) (*lms.CreateClassResp, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	start, err := cast.ToTimeE(req.StartDate)
	if err != nil {
		return nil, invalid("startDate must be a valid date")
	}
	end, err := cast.ToTimeE(req.EndDate)
	if err != nil {
		return nil, invalid("endDate must be a valid date")
	}
	if end.Before(start) {
		return nil, invalid("endDate must not be earlier than startDate")
	}

	cs, err := s.CourseMapper.FindOneByCode(ctx, req.CourseCode)
	if err != nil {
		return nil, err
	}

	c := &class.ClassRun{
		Course: class.CourseRef{
			ID:          cs.ID,
			CourseCode:  cs.CourseCode,
			CourseTitle: cs.CourseTitle,
		},
		StartDate: start,
		EndDate:   end,
		Capacity:  req.Capacity,
	}
	if err = s.ClassMapper.Insert(ctx, c); err != nil {
		log.CtxError(ctx, "创建开班失败: course=%s, err=%v", req.CourseCode, err)
		return nil, consts.NewStorageErrno(err)
	}
	return &lms.CreateClassResp{
		Message: "class created",
		ClassId: c.ID.Hex(),
	}, nil
}

func (s *ClassService) GetClassInfo(ctx context.Context, req *lms.ClassIdReq) (*lms.GetClassInfoResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	info, err := toClassInfo(c)
	if err != nil {
		log.CtxError(ctx, "转换开班信息失败: %v", err)
		return nil, err
	}
	return &lms.GetClassInfoResp{ClassInfo: info}, nil
}

// UpdateClassLearners 用提交的名单整体替换学员, 开班不存在视为参数错误
func (s *ClassService) UpdateClassLearners(ctx context.Context, req *lms.UpdateLearnersReq) (*lms.Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	oid, err := replaceTarget(req.ClassId)
	if err != nil {
		return nil, err
	}
	err = s.ClassMapper.UpdateLearners(ctx, oid, toLearners(req.Learners))
	if err != nil {
		return nil, replaceError(req.ClassId, err)
	}
	return &lms.Response{Message: "learners updated"}, nil
}

func (s *ClassService) GetLearnerInClass(ctx context.Context, req *lms.ClassIdReq) (*lms.GetLearnersResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	learners, err := toLearnerInfos(c.LearnerList())
	if err != nil {
		return nil, err
	}
	return &lms.GetLearnersResp{Learners: learners}, nil
}

// UpdateClassTrainers 用提交的名单整体替换讲师
func (s *ClassService) UpdateClassTrainers(ctx context.Context, req *lms.UpdateTrainersReq) (*lms.Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	oid, err := replaceTarget(req.ClassId)
	if err != nil {
		return nil, err
	}
	if err = s.ClassMapper.UpdateTrainers(ctx, oid, req.Trainers); err != nil {
		return nil, replaceError(req.ClassId, err)
	}
	return &lms.Response{Message: "trainers updated"}, nil
}

func (s *ClassService) GetTrainerInClass(ctx context.Context, req *lms.ClassIdReq) (*lms.GetTrainersResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	return &lms.GetTrainersResp{Trainers: c.TrainerList()}, nil
}

// ApproveSelfEnrollment 录取一名已报名的学员, 重复审批结果不变
func (s *ClassService) ApproveSelfEnrollment(ctx context.Context, req *lms.ApproveReq) (*lms.Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	if !c.HasLearner(req.Username) {
		return nil, consts.ErrLearnerNotFound
	}
	if err = s.ClassMapper.ApproveLearner(ctx, c.ID, req.Username); err != nil {
		log.CtxError(ctx, "审批报名失败: class=%s, learner=%s, err=%v", req.ClassId, req.Username, err)
		return nil, err
	}
	return &lms.Response{Message: "learner approved"}, nil
}

// ApplyToClass 学员自主报名, 已在名单中时直接返回
func (s *ClassService) ApplyToClass(ctx context.Context, req *lms.ApplyReq) (*lms.Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	if c.HasLearner(req.Username) {
		return &lms.Response{Message: "already applied"}, nil
	}
	added, err := s.ClassMapper.AddLearner(ctx, c.ID, &class.Learner{Username: req.Username})
	if err != nil {
		log.CtxError(ctx, "报名失败: class=%s, learner=%s, err=%v", req.ClassId, req.Username, err)
		return nil, err
	}
	if !added {
		return &lms.Response{Message: "already applied"}, nil
	}
	return &lms.Response{Message: "application submitted"}, nil
}

func (s *ClassService) GetApplicants(ctx context.Context, req *lms.ClassIdReq) (*lms.GetApplicantsResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	applicants, err := toLearnerInfos(c.Applicants())
	if err != nil {
		return nil, err
	}
	return &lms.GetApplicantsResp{Applicants: applicants}, nil
}

// GetEnrolledClass 学员名单中包含当前用户的开班, 含待审批
func (s *ClassService) GetEnrolledClass(ctx context.Context, req *lms.UsernameReq) (*lms.ListClassesResp, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	classes, err := s.ClassMapper.FindByLearner(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	infos, err := toClassInfos(classes)
	if err != nil {
		return nil, err
	}
	return &lms.ListClassesResp{Classes: infos}, nil
}

// GetTeachingClass 当前用户任教的开班
func (s *ClassService) GetTeachingClass(ctx context.Context, req *lms.UsernameReq) (*lms.ListClassesResp, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	classes, err := s.ClassMapper.FindByTrainer(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	infos, err := toClassInfos(classes)
	if err != nil {
		return nil, err
	}
	return &lms.ListClassesResp{Classes: infos}, nil
}

func replaceTarget(classId string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(classId)
	if err != nil {
		return primitive.NilObjectID, invalid("class %s not found", classId)
	}
	return oid, nil
}

func replaceError(classId string, err error) error {
	if errors.Is(err, consts.ErrClassNotFound) {
		return invalid("class %s not found", classId)
	}
	return err
}
