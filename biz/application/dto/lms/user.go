package lms

type GetUserReq struct {
	Username string `path:"username" json:"-"`
}

type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type GetUserResp struct {
	User *UserInfo `json:"user"`
}
