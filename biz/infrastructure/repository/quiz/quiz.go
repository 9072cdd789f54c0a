package quiz

// Quiz 测验由测验服务维护, 对应其数据库中的 Quizzes 表
type Quiz struct {
	Id          string `json:"id"`
	ClassId     string `json:"classId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"` // 分钟
}
