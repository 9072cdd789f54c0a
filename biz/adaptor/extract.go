package adaptor

import (
	"context"
	"errors"
	"lms-show/biz/infrastructure/consts"
	"lms-show/biz/infrastructure/util"
	"lms-show/biz/infrastructure/util/log"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	hconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"
	"github.com/samber/lo"
)

const hertzContext = "hertz_context"

func InjectContext(ctx context.Context, c *app.RequestContext) context.Context {
	return context.WithValue(ctx, hertzContext, c)
}

func ExtractContext(ctx context.Context) (*app.RequestContext, error) {
	c, ok := ctx.Value(hertzContext).(*app.RequestContext)
	if !ok {
		return nil, errors.New("hertz context not found")
	}
	return c, nil
}

// ExtractUsername 当前用户由网关写入 username 请求头
func ExtractUsername(ctx context.Context) string {
	c, err := ExtractContext(ctx)
	if err != nil {
		log.CtxInfo(ctx, "extract username fail, err=%v", err)
		return ""
	}
	return string(c.GetHeader(consts.HeaderUsername))
}

// PostProcess 按错误类型写回状态码与响应体
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	status, body := consts.Render(resp, err)
	if err != nil {
		log.CtxError(ctx, "[%s] %s, req=%s, status=%d, err=%v", c.FullPath(), requestInfo(c), util.JSONF(req), status, err)
	} else {
		log.CtxInfo(ctx, "[%s] %s, req=%s, resp=%s", c.FullPath(), requestInfo(c), util.JSONF(req), util.JSONF(resp))
	}
	if body == nil {
		c.Status(status)
		return
	}
	c.JSON(status, body)
}

// BadRequest 请求体无法解析
func BadRequest(ctx context.Context, c *app.RequestContext, err error) {
	log.CtxInfo(ctx, "[%s] %s, bind fail, err=%v", c.FullPath(), requestInfo(c), err)
	c.JSON(hconsts.StatusBadRequest, map[string]any{"message": "Bad Request"})
}

// requestInfo 路径参数与 username 请求头不会出现在 req 的 json 中, 单独记录
func requestInfo(c *app.RequestContext) string {
	parts := lo.Map(c.Params, func(p param.Param, _ int) string {
		return p.Key + "=" + p.Value
	})
	parts = append(parts, consts.HeaderUsername+"="+string(c.GetHeader(consts.HeaderUsername)))
	return strings.Join(parts, " ")
}
