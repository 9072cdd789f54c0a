package provider

import (
	"lms-show/biz/application/service"
	"lms-show/biz/infrastructure/cache"
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/repository/class"
	"lms-show/biz/infrastructure/repository/course"
	"lms-show/biz/infrastructure/repository/quiz"
	"lms-show/biz/infrastructure/repository/user"
	"lms-show/biz/infrastructure/storage"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config         *config.Config
	ClassService   service.IClassService
	ContentService service.IContentService
	CourseService  service.ICourseService
	QuizService    service.IQuizService
	UserService    service.IUserService
	FileService    service.IFileService
}

func Get() *Provider {
	return provider
}

// Set 测试中替换依赖
func Set(p *Provider) {
	provider = p
}

var ApplicationSet = wire.NewSet(
	service.ClassServiceSet,
	service.ContentServiceSet,
	service.CourseServiceSet,
	service.QuizServiceSet,
	service.UserServiceSet,
	service.FileServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	class.MongoMapperSet,
	course.MongoMapperSet,
	user.MongoMapperSet,
	quiz.MySQLMapperSet,
	cache.ContentCacheMapperSet,
	storage.NewStorage,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
