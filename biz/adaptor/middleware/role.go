package middleware

import (
	"context"
	"errors"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/samber/lo"
)

// RoleResolver 按用户名查询角色
type RoleResolver interface {
	GetRole(ctx context.Context, username string) (string, error)
}

// Allow 只放行指定角色的用户
// 缺少 username 请求头、用户不存在或角色不符时返回 401, 查询失败时返回 500
func Allow(resolver RoleResolver, roles ...string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		deny := func() {
			status, _ := consts.Render(nil, consts.ErrNotAuthenticated)
			c.AbortWithStatus(status)
		}
		username := string(c.GetHeader(consts.HeaderUsername))
		if username == "" {
			deny()
			return
		}
		role, err := resolver.GetRole(ctx, username)
		switch {
		case errors.Is(err, consts.ErrUserNotFound):
			deny()
			return
		case err != nil:
			log.CtxError(ctx, "查询用户角色失败: user=%s, err=%v", username, err)
			status, body := consts.Render(nil, err)
			c.AbortWithStatusJSON(status, body)
			return
		}
		if !lo.Contains(roles, role) {
			log.CtxInfo(ctx, "[%s] role denied: user=%s, role=%s", c.FullPath(), username, role)
			deny()
			return
		}
		c.Next(ctx)
	}
}
