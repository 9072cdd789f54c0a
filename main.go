package main

import (
	"lms-show/biz/adaptor/middleware"
	"lms-show/biz/infrastructure/config"
	"lms-show/biz/infrastructure/util/log"
	"lms-show/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func main() {
	provider.Init()
	c := config.GetConfig()

	otel.SetTextMapPropagator(b3.New())
	tracer, cfg := tracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(c.ListenOn),
		// 表单中除文件外还有少量字段
		server.WithMaxRequestBodySize(int(c.Upload.MaxSize)+1<<20),
		server.WithTracer(prometheus.NewServerTracer(c.Metrics.Addr, c.Metrics.Path)),
		tracer,
	)
	h.Use(
		tracing.ServerMiddleware(cfg),
		middleware.TraceHeader(),
		middleware.Cors(),
		middleware.Secure(),
	)

	customizedRegister(h)
	log.Info("server start, listen on %s", c.ListenOn)
	h.Spin()
}
