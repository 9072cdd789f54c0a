package controller

import (
	"context"
	"lms-show/biz/adaptor"
	"lms-show/biz/application/dto/lms"
	"lms-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// GetUser .
// @router /api/user/:username [GET]
func GetUser(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.GetUserReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.UserService.GetUser(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
