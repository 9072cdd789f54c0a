package lms

type CreateClassReq struct {
	CourseCode string `json:"courseCode" validate:"required,notblank"`
	StartDate  string `json:"startDate" validate:"required"`
	EndDate    string `json:"endDate" validate:"required"`
	Capacity   int64  `json:"capacity" validate:"gt=0"`
}

type CreateClassResp struct {
	Message string `json:"message"`
	ClassId string `json:"classId"`
}

type LearnerReq struct {
	Username string `json:"username" validate:"required,notblank"`
	Enrolled *bool  `json:"enrolled" validate:"required"`
}

// UpdateLearnersReq 整体替换学员名单, 调用方需提交完整名单
type UpdateLearnersReq struct {
	ClassId  string       `path:"classId" json:"-"`
	Learners []LearnerReq `json:"learners" validate:"required,min=1,unique=Username,dive"`
}

// UpdateTrainersReq 整体替换讲师名单
type UpdateTrainersReq struct {
	ClassId  string   `path:"classId" json:"-"`
	Trainers []string `json:"trainers" validate:"required,min=1,unique,dive,required,notblank"`
}

type ApproveReq struct {
	ClassId  string `json:"classId" validate:"required"`
	Username string `json:"username" validate:"required,notblank"`
}

type ApplyReq struct {
	ClassId  string `path:"classId" json:"-"`
	Username string `header:"username" json:"-" validate:"required,notblank"`
}

type LearnerInfo struct {
	Username string `json:"username"`
	Enrolled bool   `json:"enrolled"`
}

type CourseInfo struct {
	ID          string   `json:"id"`
	CourseCode  string   `json:"courseCode"`
	CourseTitle string   `json:"courseTitle"`
	PreReq      []string `json:"preReq,omitempty"`
}

type ClassInfo struct {
	ID            string     `json:"id"`
	Course        CourseInfo `json:"course"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
	Capacity      int64      `json:"capacity"`
	Trainers      []string   `json:"trainers"`
	LearnerCount  int64      `json:"learnerCount"`
	EnrolledCount int64      `json:"enrolledCount"`
}

type GetClassInfoResp struct {
	ClassInfo *ClassInfo `json:"classInfo"`
}

type ListClassesResp struct {
	Classes []*ClassInfo `json:"classes"`
}

type GetLearnersResp struct {
	Learners []*LearnerInfo `json:"learners"`
}

type GetApplicantsResp struct {
	Applicants []*LearnerInfo `json:"applicants"`
}

type GetTrainersResp struct {
	Trainers []string `json:"trainers"`
}
