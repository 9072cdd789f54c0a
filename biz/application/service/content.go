package service

import (
	"context"
	"errors"
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/infrastructure/cache"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/repository/class"
	"lms-show/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IContentService interface {
	NewChapter(ctx context.Context, req *lms.NewChapterReq) (*lms.NewChapterResp, error)
	NewSection(ctx context.Context, req *lms.NewSectionReq) (*lms.NewSectionResp, error)
	UploadLinks(ctx context.Context, req *lms.UploadLinksReq) (*lms.Response, error)
	UploadContent(ctx context.Context, req *lms.UploadContentReq) (*lms.Response, error)
	GetContent(ctx context.Context, req *lms.SectionPathReq) (*lms.GetContentResp, error)
	GetClassContent(ctx context.Context, req *lms.ClassIdReq) (*lms.GetClassContentResp, error)
}

type ContentService struct {
	ClassMapper  class.IMongoMapper
	ContentCache cache.IContentCacheMapper
}

var ContentServiceSet = wire.NewSet(
	wire.Struct(new(ContentService), "*"),
	wire.Bind(new(IContentService), new(*ContentService)),
)

// NewChapter 在开班内容末尾新增章节
func (s *ContentService) NewChapter(ctx context.Context, req *lms.NewChapterReq) (*lms.NewChapterResp, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	ch := c.AddChapter(req.ChapterTitle)
	if err = s.ClassMapper.PushChapter(ctx, c.ID, ch); err != nil {
		log.CtxError(ctx, "新增章节失败: class=%s, err=%v", req.ClassId, err)
		return nil, err
	}
	s.invalidate(ctx, c.ID)
	return &lms.NewChapterResp{
		Message:   "chapter created",
		ChapterId: ch.ID.Hex(),
	}, nil
}

// NewSection 在章节末尾新增小节
func (s *ContentService) NewSection(ctx context.Context, req *lms.NewSectionReq) (*lms.NewSectionResp, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	ch, err := c.FindChapter(req.ChapterId)
	if err != nil {
		return nil, err
	}
	sec := ch.AddSection(req.SectionTitle)
	if err = s.ClassMapper.PushSection(ctx, c.ID, ch.ID, sec); err != nil {
		log.CtxError(ctx, "新增小节失败: class=%s, chapter=%s, err=%v", req.ClassId, req.ChapterId, err)
		return nil, err
	}
	s.invalidate(ctx, c.ID)
	return &lms.NewSectionResp{
		Message:   "section created",
		SectionId: sec.ID.Hex(),
	}, nil
}

// UploadLinks 按提交顺序为每个链接追加一条内容
func (s *ContentService) UploadLinks(ctx context.Context, req *lms.UploadLinksReq) (*lms.Response, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	items := lo.Map(req.Links, func(link string, _ int) *class.ContentItem {
		return class.NewLink(link)
	})
	if err := s.appendContent(ctx, &req.SectionPathReq, items...); err != nil {
		return nil, err
	}
	return &lms.Response{Message: "links uploaded"}, nil
}

// UploadContent 追加一条文件内容, 文件描述来自存储服务或表单字段
func (s *ContentService) UploadContent(ctx context.Context, req *lms.UploadContentReq) (*lms.Response, error) {
	file := req.File
	if file == nil {
		if req.FileInfo == nil {
			return nil, invalid("fileInfo is required")
		}
		file = new(lms.FileInfo)
		// 表单提交时 size 可能是字符串
		if err := mapstructure.WeakDecode(req.FileInfo, file); err != nil {
			return nil, invalid("fileInfo is malformed: %v", err)
		}
	}
	if err := validateStruct(file); err != nil {
		return nil, err
	}
	item := class.NewFile(&class.FileInfo{
		Location: file.Location,
		Name:     file.Name,
		Size:     file.Size,
		Type:     file.Type,
	})
	if err := s.appendContent(ctx, &req.SectionPathReq, item); err != nil {
		return nil, err
	}
	return &lms.Response{Message: "file uploaded"}, nil
}

func (s *ContentService) GetContent(ctx context.Context, req *lms.SectionPathReq) (*lms.GetContentResp, error) {
	c, err := s.ClassMapper.FindOne(ctx, req.ClassId)
	if err != nil {
		return nil, err
	}
	sec, err := c.FindSection(req.ChapterId, req.SectionId)
	if err != nil {
		return nil, err
	}
	return &lms.GetContentResp{Contents: toContentInfos(sec.ContentList())}, nil
}

// GetClassContent 获取整棵内容树, 优先读缓存
func (s *ContentService) GetClassContent(ctx context.Context, req *lms.ClassIdReq) (*lms.GetClassContentResp, error) {
	oid, err := primitive.ObjectIDFromHex(req.ClassId)
	if err != nil {
		return nil, consts.ErrClassNotFound
	}
	// 缓存 key 统一用规范化的 hex, 与写入时删除的 key 一致
	key := oid.Hex()
	chapters, err := s.ContentCache.Get(ctx, key)
	if err == nil {
		return &lms.GetClassContentResp{Contents: toChapterInfos(chapters)}, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.CtxError(ctx, "读取内容缓存失败: class=%s, err=%v", key, err)
	}

	c, err := s.ClassMapper.FindOne(ctx, key)
	if err != nil {
		return nil, err
	}
	chapters = c.ChapterList()
	if err = s.ContentCache.Set(ctx, key, chapters); err != nil {
		log.CtxError(ctx, "写入内容缓存失败: class=%s, err=%v", key, err)
	}
	return &lms.GetClassContentResp{Contents: toChapterInfos(chapters)}, nil
}

func (s *ContentService) appendContent(ctx context.Context, path *lms.SectionPathReq, items ...*class.ContentItem) error {
	c, err := s.ClassMapper.FindOne(ctx, path.ClassId)
	if err != nil {
		return err
	}
	ch, err := c.FindChapter(path.ChapterId)
	if err != nil {
		return err
	}
	sec, err := ch.FindSection(path.SectionId)
	if err != nil {
		return err
	}
	if err = s.ClassMapper.PushContent(ctx, c.ID, ch.ID, sec.ID, items); err != nil {
		log.CtxError(ctx, "追加内容失败: class=%s, section=%s, err=%v", path.ClassId, path.SectionId, err)
		return err
	}
	s.invalidate(ctx, c.ID)
	return nil
}

// invalidate 删除失败只记录日志, 残留缓存最多存活 ContentCacheExpire 秒
func (s *ContentService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := s.ContentCache.Delete(ctx, id.Hex()); err != nil {
		log.CtxError(ctx, "删除内容缓存失败: class=%s, err=%v", id.Hex(), err)
	}
}
