package service

import (
	"context"
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/infrastructure/repository/user"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type IUserService interface {
	GetRole(ctx context.Context, username string) (string, error)
	GetUser(ctx context.Context, req *lms.GetUserReq) (*lms.GetUserResp, error)
}

type UserService struct {
	UserMapper user.IMongoMapper
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// GetRole 查询用户角色, 供权限中间件使用
func (s *UserService) GetRole(ctx context.Context, username string) (string, error) {
	u, err := s.UserMapper.FindOneByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *UserService) GetUser(ctx context.Context, req *lms.GetUserReq) (*lms.GetUserResp, error) {
	u, err := s.UserMapper.FindOneByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	info := new(lms.UserInfo)
	if err = copier.CopyWithOption(info, u, copierOption); err != nil {
		return nil, err
	}
	return &lms.GetUserResp{User: info}, nil
}
