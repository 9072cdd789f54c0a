package config

import (
	_ "embed"
	"lms-show/biz/infrastructure/util/log"
	"os"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string
	Mongo    struct {
		URL string
		DB  string
	}
	MySQL struct {
		DSN string
	}
	Cache   cache.CacheConf
	Redis   *redis.RedisConf `json:",optional"`
	Storage StorageConfig
	Upload  UploadConfig  `json:",optional"`
	Metrics MetricsConfig `json:",optional"`
}

// StorageConfig 文件存储, Provider 取值 s3 / b2, 为空时不启用上传
type StorageConfig struct {
	Provider string `json:",optional,options=s3|b2|"`
	Bucket   string `json:",optional"`
	Region   string `json:",optional"`
	Endpoint string `json:",optional"`
	KeyID    string `json:",optional"`
	AppKey   string `json:",optional"`
}

type UploadConfig struct {
	MaxSize int64 `json:",default=52428800"`
}

type MetricsConfig struct {
	Addr string `json:",default=:9091"`
	Path string `json:",default=/metrics"`
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
