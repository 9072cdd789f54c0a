package lms

// Response 只携带提示信息的通用响应
type Response struct {
	Message string `json:"message"`
}

// ClassIdReq 仅以路径中的开班 id 为参数的请求
type ClassIdReq struct {
	ClassId string `path:"classId" json:"-"`
}

// UsernameReq 以请求头中的用户名为参数的请求
type UsernameReq struct {
	Username string `header:"username" json:"-" validate:"required,notblank"`
}
