package model

import (
	"time"

	"github.com/google/uuid"
)

// Lecture はコース内の1講義。受講者からは変更できない
type Lecture struct {
	LectureID uuid.UUID `gorm:"type:uuid;primaryKey" json:"lecture_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index:idx_course_position" json:"course_id"`
	Position  int       `gorm:"not null;index:idx_course_position" json:"position"`
	Title     string    `gorm:"not null" json:"title"`
	MediaURL  string    `gorm:"not null" json:"media_url"`
	Notes     *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Lecture) TableName() string {
	return "lectures"
}

type AddLectureRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	MediaURL string  `json:"media_url" validate:"required,url"`
	Notes    *string `json:"notes" validate:"omitempty,max=10000"`
}

// LectureSummary は未受講者にも見せてよい項目だけを持つ
type LectureSummary struct {
	LectureID uuid.UUID `json:"lecture_id"`
	Position  int       `json:"position"`
	Title     string    `json:"title"`
}

func NewLectureSummaries(lectures []Lecture) []LectureSummary {
	out := make([]LectureSummary, 0, len(lectures))
	for _, l := range lectures {
		out = append(out, LectureSummary{LectureID: l.LectureID, Position: l.Position, Title: l.Title})
	}
	return out
}
