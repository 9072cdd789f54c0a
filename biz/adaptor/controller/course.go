package controller

import (
	"context"
	"lms-show/biz/adaptor"
	"lms-show/biz/application/dto/lms"
	"lms-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// CreateCourse .
// @router /api/course/new [POST]
func CreateCourse(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.CreateCourseReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.CreateCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetCourseInfo .
// @router /api/course/:courseCode/info [GET]
func GetCourseInfo(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.CourseCodeReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.GetCourseInfo(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetClassesByCourse .
// @router /api/course/:courseCode/classes [GET]
func GetClassesByCourse(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.CourseCodeReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.CourseService.GetClassesByCourse(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
