package cache

import (
	"context"
	"errors"
	"fmt"
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/redis"
	"lms-show/biz/infrastructure/repository/class"

	"github.com/bytedance/sonic"
	"github.com/google/wire"
	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	classContentCachePrefix = "class_content"
)

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("cache miss")

type IContentCacheMapper interface {
	Get(ctx context.Context, classId string) ([]*class.Chapter, error)
	Set(ctx context.Context, classId string, content []*class.Chapter) error
	Delete(ctx context.Context, classId string) error
}

// ContentCacheMapper 未配置 Redis 时每次都视为未命中
type ContentCacheMapper struct {
	rds *gozero_redis.Redis
}

var ContentCacheMapperSet = wire.NewSet(
	NewContentCacheMapper,
	wire.Bind(new(IContentCacheMapper), new(*ContentCacheMapper)),
)

func NewContentCacheMapper(config *config.Config) *ContentCacheMapper {
	return &ContentCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取开班的内容树
func (m *ContentCacheMapper) Get(ctx context.Context, classId string) ([]*class.Chapter, error) {
	if m.rds == nil {
		return nil, ErrCacheMiss
	}
	cachedData, err := m.rds.GetCtx(ctx, m.buildCacheKey(classId))
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, ErrCacheMiss
	}

	var content []*class.Chapter
	if err := sonic.UnmarshalString(cachedData, &content); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return content, nil
}

// Set 将内容树存入缓存
func (m *ContentCacheMapper) Set(ctx context.Context, classId string, content []*class.Chapter) error {
	if m.rds == nil {
		return nil
	}
	data, err := sonic.MarshalString(content)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, m.buildCacheKey(classId), data, consts.ContentCacheExpire)
}

// Delete 内容树变更后删除缓存
func (m *ContentCacheMapper) Delete(ctx context.Context, classId string) error {
	if m.rds == nil {
		return nil
	}
	_, err := m.rds.DelCtx(ctx, m.buildCacheKey(classId))
	return err
}

// buildCacheKey 构造缓存key
func (m *ContentCacheMapper) buildCacheKey(classId string) string {
	return fmt.Sprintf("%s:%s", classContentCachePrefix, classId)
}
