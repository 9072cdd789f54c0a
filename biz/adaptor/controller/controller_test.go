package controller

import (
	"bytes"
	"context"
	"lms-show/biz/application/dto/lms"
	"lms-show/biz/application/service"
	"lms-show/biz/infrastructure/consts"
	"lms-show/provider"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassService struct {
	service.IClassService
	learners *lms.UpdateLearnersReq
}

func (s *stubClassService) GetClassInfo(_ context.Context, req *lms.ClassIdReq) (*lms.GetClassInfoResp, error) {
	if req.ClassId == "missing" {
		return nil, consts.ErrClassNotFound
	}
	return &lms.GetClassInfoResp{ClassInfo: &lms.ClassInfo{ID: req.ClassId}}, nil
}

func (s *stubClassService) UpdateClassLearners(_ context.Context, req *lms.UpdateLearnersReq) (*lms.Response, error) {
	s.learners = req
	if len(req.Learners) == 0 {
		return nil, consts.NewValidationErrno("learners must not be empty")
	}
	return &lms.Response{Message: "learners updated"}, nil
}

type stubContentService struct {
	service.IContentService
	upload *lms.UploadContentReq
}

func (s *stubContentService) UploadContent(_ context.Context, req *lms.UploadContentReq) (*lms.Response, error) {
	s.upload = req
	return &lms.Response{Message: "file uploaded"}, nil
}

type stubFileService struct{}

func (stubFileService) Upload(_ context.Context, fh *multipart.FileHeader) (*lms.UploadFileResp, error) {
	return &lms.UploadFileResp{FileInfo: &lms.FileInfo{
		Location: "https://files.example.com/test/" + fh.Filename,
		Name:     fh.Filename,
		Size:     fh.Size,
		Type:     "text/plain",
	}}, nil
}

func newTestEngine(t *testing.T) (*route.Engine, *stubClassService, *stubContentService) {
	t.Helper()
	cs := &stubClassService{}
	ct := &stubContentService{}
	old := provider.Get()
	provider.Set(&provider.Provider{ClassService: cs, ContentService: ct, FileService: stubFileService{}})
	t.Cleanup(func() { provider.Set(old) })

	e := route.NewEngine(config.NewOptions(nil))
	e.GET("/api/class/:classId/info", GetClassInfo)
	e.PUT("/api/class/:classId/learners", UpdateClassLearners)
	e.POST("/api/class/:classId/:chapterId/:sectionId/upload/file", UploadContent)
	e.GET("/ping", Ping)
	return e, cs, ct
}

func jsonHeader() ut.Header {
	return ut.Header{Key: "Content-Type", Value: "application/json"}
}

func TestGetClassInfo(t *testing.T) {
	e, _, _ := newTestEngine(t)

	resp := ut.PerformRequest(e, http.MethodGet, "/api/class/c1/info", nil).Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), `"classInfo"`)
	assert.Contains(t, string(resp.Body()), `"id":"c1"`)

	resp = ut.PerformRequest(e, http.MethodGet, "/api/class/missing/info", nil).Result()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.JSONEq(t, `{"message":"class not found"}`, string(resp.Body()))
}

func TestUpdateClassLearners(t *testing.T) {
	e, cs, _ := newTestEngine(t)

	body := `{"learners":[{"username":"joen.chua","enrolled":true}]}`
	resp := ut.PerformRequest(e, http.MethodPut, "/api/class/c1/learners",
		&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}, jsonHeader()).Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotNil(t, cs.learners)
	assert.Equal(t, "c1", cs.learners.ClassId)
	require.Len(t, cs.learners.Learners, 1)
	assert.Equal(t, "joen.chua", cs.learners.Learners[0].Username)
	require.NotNil(t, cs.learners.Learners[0].Enrolled)
	assert.True(t, *cs.learners.Learners[0].Enrolled)

	body = `{"learners":[]}`
	resp = ut.PerformRequest(e, http.MethodPut, "/api/class/c1/learners",
		&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}, jsonHeader()).Result()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.JSONEq(t, `{"errors":["learners must not be empty"]}`, string(resp.Body()))

	body = `{"learners":`
	resp = ut.PerformRequest(e, http.MethodPut, "/api/class/c1/learners",
		&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}, jsonHeader()).Result()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	assert.JSONEq(t, `{"message":"Bad Request"}`, string(resp.Body()))
}

func TestUploadContentMultipart(t *testing.T) {
	e, _, ct := newTestEngine(t)

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	resp := ut.PerformRequest(e, http.MethodPost, "/api/class/c1/ch1/s1/upload/file",
		&ut.Body{Body: buf, Len: buf.Len()},
		ut.Header{Key: "Content-Type", Value: w.FormDataContentType()}).Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotNil(t, ct.upload)
	assert.Equal(t, lms.SectionPathReq{ClassId: "c1", ChapterId: "ch1", SectionId: "s1"}, ct.upload.SectionPathReq)
	require.NotNil(t, ct.upload.File)
	assert.Equal(t, "notes.txt", ct.upload.File.Name)
	assert.Equal(t, int64(5), ct.upload.File.Size)
}

func TestUploadContentFileInfoField(t *testing.T) {
	e, _, ct := newTestEngine(t)

	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	require.NoError(t, w.WriteField("fileInfo", `{"location":"https://files.example.com/a.pdf","name":"a.pdf","size":"12"}`))
	require.NoError(t, w.Close())

	resp := ut.PerformRequest(e, http.MethodPost, "/api/class/c1/ch1/s1/upload/file",
		&ut.Body{Body: buf, Len: buf.Len()},
		ut.Header{Key: "Content-Type", Value: w.FormDataContentType()}).Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	require.NotNil(t, ct.upload)
	assert.Nil(t, ct.upload.File)
	assert.Equal(t, "a.pdf", ct.upload.FileInfo["name"])
	assert.Equal(t, "12", ct.upload.FileInfo["size"])
}

func TestPing(t *testing.T) {
	e, _, _ := newTestEngine(t)
	resp := ut.PerformRequest(e, http.MethodGet, "/ping", nil).Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"message":"pong"}`, string(resp.Body()))
}
