package controller

import (
	"context"
	"lms-show/biz/adaptor"
	"lms-show/biz/infrastructure/consts"
	"lms-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
)

// UploadFile 只上传文件, 返回文件描述供后续挂载到小节
// @router /api/file/upload [POST]
func UploadFile(ctx context.Context, c *app.RequestContext) {
	fh, err := c.FormFile(consts.FormFile)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.FileService.Upload(ctx, fh)
	adaptor.PostProcess(ctx, c, fh.Filename, resp, err)
}
