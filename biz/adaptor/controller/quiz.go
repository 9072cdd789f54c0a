package controller

import (
	"context"
	"lms-show/biz/adaptor"
	"lms-show/biz/application/dto/lms"
	"lms-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// GetQuizzesByClass .
// @router /api/quiz/class/:classId [GET]
func GetQuizzesByClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.ClassIdReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.QuizService.GetQuizzesByClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
