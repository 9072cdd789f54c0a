package service

import (
	"context"
	"fmt"
	"io"
	"lms-show/biz/adaptor"
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/storage"
	"lms-show/biz/infrastructure/util/log"
	"mime/multipart"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/google/wire"
)

type IFileService interface {
	Upload(ctx context.Context, fh *multipart.FileHeader) (*lms.UploadFileResp, error)
}

// FileService Storage 为 nil 时表示未启用文件存储
type FileService struct {
	Config  *config.Config
	Storage storage.IStorage
}

var FileServiceSet = wire.NewSet(
	wire.Struct(new(FileService), "*"),
	wire.Bind(new(IFileService), new(*FileService)),
)

// Upload 保存文件并返回文件描述, 对象键为 <state>/<uuid><扩展名>
func (s *FileService) Upload(ctx context.Context, fh *multipart.FileHeader) (*lms.UploadFileResp, error) {
	if s.Storage == nil {
		return nil, consts.ErrStorageDisabled
	}
	if fh == nil {
		return nil, invalid("file is required")
	}
	maxSize := s.Config.Upload.MaxSize
	if maxSize <= 0 {
		maxSize = consts.DefaultMaxUploadSize
	}
	if fh.Size > maxSize {
		return nil, invalid("file must not be larger than %d bytes", maxSize)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, invalid("file is unreadable: %v", err)
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		if mt, err := mimetype.DetectReader(f); err == nil {
			contentType = mt.String()
		}
		if _, err = f.Seek(0, io.SeekStart); err != nil {
			return nil, consts.ErrUploadFile
		}
	}

	key := fmt.Sprintf("%s/%s%s", s.Config.State, uuid.NewString(), filepath.Ext(fh.Filename))
	log.CtxInfo(ctx, "上传文件: user=%s, name=%s, key=%s", adaptor.ExtractUsername(ctx), fh.Filename, key)
	location, err := s.Storage.Upload(ctx, key, contentType, f)
	if err != nil {
		log.CtxError(ctx, "上传文件失败: key=%s, err=%v", key, err)
		return nil, consts.ErrUploadFile
	}
	return &lms.UploadFileResp{
		FileInfo: &lms.FileInfo{
			Location: location,
			Name:     fh.Filename,
			Size:     fh.Size,
			Type:     contentType,
		},
	}, nil
}
