package controller

import (
	"context"
	"lms-show/biz/adaptor"
	"lms-show/biz/application/dto/lms"
	"lms-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateNewClass .
// @router /api/class/new [POST]
func CreateNewClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.CreateClassReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.CreateNewClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetEnrolledClass .
// @router /api/class/enrolled [GET]
func GetEnrolledClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.UsernameReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetEnrolledClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetTeachingClass .
// @router /api/class/teach [GET]
func GetTeachingClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.UsernameReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetTeachingClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ApproveSelfEnrollment .
// @router /api/class/approve [PUT]
func ApproveSelfEnrollment(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.ApproveReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ApproveSelfEnrollment(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClassInfo .
// @router /api/class/:classId/info [GET]
func GetClassInfo(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.ClassIdReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetClassInfo(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateClassLearners .
// @router /api/class/:classId/learners [PUT]
func UpdateClassLearners(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.UpdateLearnersReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.UpdateClassLearners(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetLearnerInClass .
// @router /api/class/:classId/learners [GET]
func GetLearnerInClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.ClassIdReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetLearnerInClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateClassTrainers .
// @router /api/class/:classId/trainers [PUT]
func UpdateClassTrainers(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.UpdateTrainersReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.UpdateClassTrainers(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetTrainerInClass .
// @router /api/class/:classId/trainers [GET]
func GetTrainerInClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.ClassIdReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetTrainerInClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ApplyToClass .
// @router /api/class/:classId/apply [POST]
func ApplyToClass(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.ApplyReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.ApplyToClass(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetApplicants .
// @router /api/class/:classId/applicants [GET]
func GetApplicants(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.ClassIdReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ClassService.GetApplicants(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
