package lms

type NewChapterReq struct {
	ClassId      string `path:"classId" json:"-"`
	ChapterTitle string `json:"chapterTitle" validate:"required,notblank"`
}

type NewChapterResp struct {
	Message   string `json:"message"`
	ChapterId string `json:"chapterId"`
}

type NewSectionReq struct {
	ClassId      string `path:"classId" json:"-"`
	ChapterId    string `path:"chapterId" json:"-"`
	SectionTitle string `json:"sectionTitle" validate:"required,notblank"`
}

type NewSectionResp struct {
	Message   string `json:"message"`
	SectionId string `json:"sectionId"`
}

type SectionPathReq struct {
	ClassId   string `path:"classId" json:"-"`
	ChapterId string `path:"chapterId" json:"-"`
	SectionId string `path:"sectionId" json:"-"`
}

type UploadLinksReq struct {
	SectionPathReq
	Links []string `json:"links" validate:"required,min=1,dive,required,url"`
}

// UploadContentReq File 由文件上传后填入, 否则从 FileInfo 原始字段解析
type UploadContentReq struct {
	SectionPathReq
	File     *FileInfo      `json:"-"`
	FileInfo map[string]any `json:"fileInfo"`
}

type FileInfo struct {
	Location string `json:"location" mapstructure:"location" validate:"required"`
	Name     string `json:"name" mapstructure:"name" validate:"required"`
	Size     int64  `json:"size" mapstructure:"size" validate:"gte=0"`
	Type     string `json:"type" mapstructure:"type"`
}

type UploadFileResp struct {
	FileInfo *FileInfo `json:"fileInfo"`
}

type ContentInfo struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Link       string    `json:"link,omitempty"`
	File       *FileInfo `json:"file,omitempty"`
	UploadTime string    `json:"uploadTime"`
}

type SectionInfo struct {
	ID      string         `json:"id"`
	Title   string         `json:"title"`
	Content []*ContentInfo `json:"content"`
}

type ChapterInfo struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Sections []*SectionInfo `json:"sections"`
}

type GetContentResp struct {
	Contents []*ContentInfo `json:"contents"`
}

type GetClassContentResp struct {
	Contents []*ChapterInfo `json:"contents"`
}
