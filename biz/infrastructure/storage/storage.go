package storage

import (
	"context"
	"fmt"
	"io"
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/util/log"
)

const (
	ProviderS3 = "s3"
	ProviderB2 = "b2"
)

// IStorage 对象存储, 只负责字节写入并返回可访问地址
type IStorage interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// NewStorage 按配置选择存储后端, Provider 为空时返回 nil 表示未启用上传
func NewStorage(config *config.Config) (IStorage, error) {
	c := config.Storage
	log.Info("NewStorage provider: %s, bucket: %s", c.Provider, c.Bucket)
	switch c.Provider {
	case "":
		return nil, nil
	case ProviderS3:
		return NewS3Storage(&c)
	case ProviderB2:
		return NewB2Storage(context.Background(), &c)
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", c.Provider)
	}
}
