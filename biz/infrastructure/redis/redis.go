package redis

import (
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/util/log"
	"sync"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

// 进程内共享一个 Redis 客户端, 内容树缓存与 monc 的查询缓存各自独立配置

var instance *redis.Redis
var once sync.Once

// GetRedis 构造一个Redis客户端, 未配置时返回 nil
func GetRedis(config *config.Config) *redis.Redis {
	if config.Redis == nil {
		return nil
	}
	once.Do(func() {
		instance = redis.MustNewRedis(*config.Redis)
		if !instance.Ping() {
			log.Error("redis %s ping failed", config.Redis.Host)
		}
	})
	return instance
}
