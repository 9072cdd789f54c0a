package log

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// 日志统一出口, 底层为 go-zero logx, 由 config.SetUp 完成初始化

func Info(format string, v ...any) {
	logx.WithCallerSkip(1).Infof(format, v...)
}

func Error(format string, v ...any) {
	logx.WithCallerSkip(1).Errorf(format, v...)
}

func CtxInfo(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).WithCallerSkip(1).Infof(format, v...)
}

func CtxError(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).WithCallerSkip(1).Errorf(format, v...)
}
