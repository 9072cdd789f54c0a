package course

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Course struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseCode  string             `bson:"course_code" json:"courseCode"`
	CourseTitle string             `bson:"course_title" json:"courseTitle"`
	PreReq      []string           `bson:"pre_req" json:"preReq"` // 先修课程代码
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}
