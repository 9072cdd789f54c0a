package controller

import (
	"context"
	"lms-show/biz/adaptor"
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/infrastructure/consts"
	"lms-show/provider"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetClassContent .
// @router /api/class/:classId/contents [GET]
func GetClassContent(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.ClassIdReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ContentService.GetClassContent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// NewChapter .
// @router /api/class/:classId/chapter/new [POST]
func NewChapter(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.NewChapterReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ContentService.NewChapter(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// NewSection .
// @router /api/class/:classId/:chapterId/section/new [POST]
func NewSection(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.NewSectionReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ContentService.NewSection(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UploadLinks .
// @router /api/class/:classId/:chapterId/:sectionId/upload/links [PUT]
func UploadLinks(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.UploadLinksReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ContentService.UploadLinks(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// GetContent .
// @router /api/class/:classId/:chapterId/:sectionId/contents [GET]
func GetContent(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.SectionPathReq
	err = c.Bind(&req)
	if err != nil {
		adaptor.BadRequest(ctx, c, err)
		return
	}

	p := provider.Get()
	resp, err := p.ContentService.GetContent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UploadContent 表单带 file 时先存储文件, 否则使用 fileInfo 字段中的文件描述
// @router /api/class/:classId/:chapterId/:sectionId/upload/file [POST]
func UploadContent(ctx context.Context, c *app.RequestContext) {
	var err error
	var req lms.UploadContentReq
	if !isMultipart(c) {
		if err = c.Bind(&req); err != nil {
			adaptor.BadRequest(ctx, c, err)
			return
		}
	} else {
		if err = c.Bind(&req.SectionPathReq); err != nil {
			adaptor.BadRequest(ctx, c, err)
			return
		}
		if raw := c.PostForm(consts.FormFileInfo); raw != "" {
			if err = sonic.UnmarshalString(raw, &req.FileInfo); err != nil {
				adaptor.BadRequest(ctx, c, err)
				return
			}
		}
	}

	p := provider.Get()
	if fh, ferr := c.FormFile(consts.FormFile); ferr == nil {
		ctx = adaptor.InjectContext(ctx, c)
		uploaded, err := p.FileService.Upload(ctx, fh)
		if err != nil {
			adaptor.PostProcess(ctx, c, &req, nil, err)
			return
		}
		req.File = uploaded.FileInfo
	}
	resp, err := p.ContentService.UploadContent(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

func isMultipart(c *app.RequestContext) bool {
	return strings.HasPrefix(string(c.ContentType()), consts.ContentTypeMultipart)
}
