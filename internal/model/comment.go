package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"comment_id"`
	LectureID uuid.UUID `gorm:"type:uuid;not null;index" json:"lecture_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	Author *User `gorm:"foreignKey:UserID;references:UserID" json:"author,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

type PostCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}
