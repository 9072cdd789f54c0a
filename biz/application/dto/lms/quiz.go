package lms

type QuizInfo struct {
	Id          string `json:"id"`
	ClassId     string `json:"classId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
}

type GetQuizzesResp struct {
	Quizzes []*QuizInfo `json:"quizzes"`
}
