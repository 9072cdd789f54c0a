package service

import (
	"context"
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/repository/quiz"
	"lms-show/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type IQuizService interface {
	GetQuizzesByClass(ctx context.Context, req *lms.ClassIdReq) (*lms.GetQuizzesResp, error)
}

type QuizService struct {
	QuizMapper quiz.IMySQLMapper
}

var QuizServiceSet = wire.NewSet(
	wire.Struct(new(QuizService), "*"),
	wire.Bind(new(IQuizService), new(*QuizService)),
)

// GetQuizzesByClass 测验由测验服务维护, 这里只读
func (s *QuizService) GetQuizzesByClass(ctx context.Context, req *lms.ClassIdReq) (*lms.GetQuizzesResp, error) {
	quizzes, err := s.QuizMapper.FindByClassID(ctx, req.ClassId)
	if err != nil {
		log.CtxError(ctx, "获取测验失败: class=%s, err=%v", req.ClassId, err)
		return nil, consts.NewStorageErrno(err)
	}
	infos := make([]*lms.QuizInfo, 0, len(quizzes))
	if err = copier.Copy(&infos, quizzes); err != nil {
		return nil, err
	}
	return &lms.GetQuizzesResp{Quizzes: infos}, nil
}
