package lms

type CreateCourseReq struct {
	CourseCode  string   `json:"courseCode" validate:"required,notblank"`
	CourseTitle string   `json:"courseTitle" validate:"required,notblank"`
	PreReq      []string `json:"preReq" validate:"omitempty,dive,required,notblank"`
}

type CreateCourseResp struct {
	IsSuccess  bool   `json:"isSuccess"`
	DocumentId string `json:"documentId"`
	Message    string `json:"message"`
}

type CourseCodeReq struct {
	CourseCode string `path:"courseCode" json:"-"`
}

type GetCourseInfoResp struct {
	Courses *CourseInfo `json:"courses"`
}
