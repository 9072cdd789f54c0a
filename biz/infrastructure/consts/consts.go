package consts

// 数据库相关
const (
	ID              = "_id"
	Username        = "username"
	Role            = "role"
	CourseCode      = "course_code"
	Course          = "course"
	Learners        = "learners"
	Trainers        = "trainers"
	Content         = "content"
	CreateTime      = "create_time"
	UpdateTime      = "update_time"
	StartDate       = "start_date"
	Set             = "$set"
	Push            = "$push"
	Each            = "$each"
	NotEqual        = "$ne"
	ElemMatch       = "$elemMatch"
	LearnerName     = "learners.username"
	LearnerEnrolled = "learners.$.enrolled"
	ChapterID       = "content._id"
	SectionIDs      = "sections._id"
)

// 角色
const (
	RoleAdmin   = "Admin"
	RoleTrainer = "Trainer"
	RoleLearner = "Learner"
)

// 内容类型
const (
	ContentLink = "link"
	ContentFile = "file"
)

// http
const (
	HeaderUsername       = "username"
	HeaderTraceId        = "X-Trace-Id"
	ContentTypeMultipart = "multipart/form-data"
	FormFile             = "file"
	FormFileInfo         = "fileInfo"
)

// 默认值
const (
	DateLayout           = "2006-01-02"
	ContentCacheExpire   = 300 // 5分钟
	DefaultMaxUploadSize = 50 << 20
)
