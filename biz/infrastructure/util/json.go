package util

import (
	"github.com/bytedance/sonic"
)

// JSONF 将对象序列化为字符串, 仅用于日志输出
func JSONF(v any) string {
	data, err := sonic.MarshalString(v)
	if err != nil {
		return ""
	}
	return data
}
