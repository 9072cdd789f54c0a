package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 由身份系统维护, 本服务只读
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Role     string             `bson:"role" json:"role"` // Admin / Trainer / Learner
}
