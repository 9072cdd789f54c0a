package middleware

import (
	"context"
	"lms-show/biz/infrastructure/consts"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
	"github.com/hertz-contrib/secure"
	"go.opentelemetry.io/otel/trace"
)

func Cors() app.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", consts.HeaderUsername},
		ExposeHeaders:   []string{consts.HeaderTraceId},
		MaxAge:          12 * time.Hour,
	})
}

// Secure 常用的安全响应头, https 由网关终结, 这里不做跳转
func Secure() app.HandlerFunc {
	return secure.New(
		secure.WithSSLRedirect(false),
		secure.WithSSLProxyHeaders(map[string]string{"X-Forwarded-Proto": "https"}),
		secure.WithSTSSecond(15552000),
		secure.WithSTSIncludeSubdomains(true),
		secure.WithFrameDeny(true),
		secure.WithContentTypeNosniff(true),
		secure.WithBrowserXssFilter(true),
		secure.WithIENoOpen(true),
		secure.WithReferrerPolicy("no-referrer"),
	)
}

// TraceHeader 把 trace id 写入响应头, 需放在 tracing 中间件之后
func TraceHeader() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			c.Header(consts.HeaderTraceId, sc.TraceID().String())
		}
		c.Next(ctx)
	}
}
