package consts

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err     error
	code    codes.Code
	details []string
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

func (en *Errno) Unwrap() error {
	return en.err
}

func (en *Errno) Code() codes.Code {
	return en.code
}

// Details 校验失败时的逐项错误描述
func (en *Errno) Details() []string {
	if len(en.details) == 0 {
		return []string{en.err.Error()}
	}
	return en.details
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// NewValidationErrno 创建带逐项描述的参数错误
func NewValidationErrno(details ...string) *Errno {
	return &Errno{
		err:     ErrInvalidParams.err,
		code:    codes.InvalidArgument,
		details: details,
	}
}

// NewStorageErrno 包装存储层错误
func NewStorageErrno(err error) *Errno {
	return &Errno{
		err:  err,
		code: codes.Internal,
	}
}

// 定义常量错误
var (
	ErrInvalidParams    = NewErrno(codes.InvalidArgument, errors.New("invalid parameters"))
	ErrNotAuthenticated = NewErrno(codes.Unauthenticated, errors.New("not authenticated"))
)

// 业务错误
var (
	ErrClassNotFound   = NewErrno(codes.NotFound, errors.New("class not found"))
	ErrCourseNotFound  = NewErrno(codes.NotFound, errors.New("course not found"))
	ErrUserNotFound    = NewErrno(codes.NotFound, errors.New("user not found"))
	ErrLearnerNotFound = NewErrno(codes.NotFound, errors.New("learner not found in class"))
	ErrChapterNotFound = NewErrno(codes.NotFound, errors.New("chapter not found in class"))
	ErrSectionNotFound = NewErrno(codes.NotFound, errors.New("section not found in chapter"))
	ErrDuplicateCourse = NewErrno(codes.AlreadyExists, errors.New("course code already exists"))
	ErrUploadFile      = NewErrno(codes.Internal, errors.New("upload file failed"))
	ErrStorageDisabled = NewErrno(codes.Internal, errors.New("file storage is not configured"))
)

// Render 将服务返回值转换为 (状态码, 响应体)
//
//	成功       200 resp
//	参数错误   400 {errors: [...]}
//	不存在     404 {message}
//	未认证     401 无响应体
//	其他       500 {error}
func Render(resp any, err error) (int, any) {
	if err == nil {
		return http.StatusOK, resp
	}
	var en *Errno
	if !errors.As(err, &en) {
		return http.StatusInternalServerError, map[string]any{"error": err.Error()}
	}
	switch en.code {
	case codes.InvalidArgument, codes.AlreadyExists:
		return http.StatusBadRequest, map[string]any{"errors": en.Details()}
	case codes.NotFound:
		return http.StatusNotFound, map[string]any{"message": en.Error()}
	case codes.Unauthenticated, codes.PermissionDenied:
		return http.StatusUnauthorized, nil
	default:
		return http.StatusInternalServerError, map[string]any{"error": en.Error()}
	}
}
