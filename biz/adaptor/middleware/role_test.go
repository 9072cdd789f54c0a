package middleware

import (
	"context"
	"errors"
	"lms-show/biz/infrastructure/consts"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
)

type roleMap map[string]string

func (m roleMap) GetRole(_ context.Context, username string) (string, error) {
	if username == "broken" {
		return "", consts.NewStorageErrno(errors.New("connection refused"))
	}
	role, ok := m[username]
	if !ok {
		return "", consts.ErrUserNotFound
	}
	return role, nil
}

func newEngine() *route.Engine {
	roles := roleMap{
		"claire.niu": consts.RoleLearner,
		"hong.wei":   consts.RoleTrainer,
		"admin":      consts.RoleAdmin,
	}
	e := route.NewEngine(config.NewOptions(nil))
	ok := func(ctx context.Context, c *app.RequestContext) {
		c.JSON(http.StatusOK, map[string]string{"message": "ok"})
	}
	e.GET("/learner", Allow(roles, consts.RoleLearner), ok)
	e.GET("/staff", Allow(roles, consts.RoleAdmin, consts.RoleTrainer), ok)
	return e
}

func TestAllow(t *testing.T) {
	e := newEngine()
	cases := []struct {
		name     string
		path     string
		username string
		status   int
	}{
		{"learner on learner route", "/learner", "claire.niu", http.StatusOK},
		{"trainer on learner route", "/learner", "hong.wei", http.StatusUnauthorized},
		{"missing header", "/learner", "", http.StatusUnauthorized},
		{"unknown user", "/learner", "nobody", http.StatusUnauthorized},
		{"resolver failure", "/learner", "broken", http.StatusInternalServerError},
		{"trainer on staff route", "/staff", "hong.wei", http.StatusOK},
		{"admin on staff route", "/staff", "admin", http.StatusOK},
		{"learner on staff route", "/staff", "claire.niu", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var headers []ut.Header
			if tc.username != "" {
				headers = append(headers, ut.Header{Key: consts.HeaderUsername, Value: tc.username})
			}
			w := ut.PerformRequest(e, http.MethodGet, tc.path, nil, headers...)
			resp := w.Result()
			assert.Equal(t, tc.status, resp.StatusCode())
			switch tc.status {
			case http.StatusUnauthorized:
				assert.Empty(t, resp.Body())
			case http.StatusInternalServerError:
				assert.JSONEq(t, `{"error":"connection refused"}`, string(resp.Body()))
			}
		})
	}
}

func TestSecureHeaders(t *testing.T) {
	e := route.NewEngine(config.NewOptions(nil))
	e.Use(Secure(), TraceHeader())
	e.GET("/ping", func(ctx context.Context, c *app.RequestContext) {
		c.String(http.StatusOK, "pong")
	})

	resp := ut.PerformRequest(e, http.MethodGet, "/ping", nil).Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "noopen", resp.Header.Get("X-Download-Options"))
	assert.Equal(t, "no-referrer", resp.Header.Get("Referrer-Policy"))
	// 明文请求不下发 HSTS
	assert.Empty(t, resp.Header.Get("Strict-Transport-Security"))
	// 没有 tracing 中间件时不写 trace id
	assert.Empty(t, resp.Header.Get(consts.HeaderTraceId))

	resp = ut.PerformRequest(e, http.MethodGet, "/ping", nil,
		ut.Header{Key: "X-Forwarded-Proto", Value: "https"}).Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.Header.Get("Strict-Transport-Security"), "max-age=15552000")
}
