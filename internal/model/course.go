package model

import (
	"time"

	"github.com/google/uuid"
)

// Course は講師が所有するコース
type Course struct {
	CourseID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"course_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text;not null;default:''" json:"description"`
	Thumbnail    *string   `json:"thumbnail,omitempty"`
	InstructorID uuid.UUID `gorm:"type:uuid;not null;index" json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 講義は Position 順
	Lectures   []Lecture `gorm:"foreignKey:CourseID;references:CourseID" json:"lectures,omitempty"`
	Instructor *User     `gorm:"foreignKey:InstructorID;references:UserID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// LectureIDs はコースの講義IDを並び順のまま返す
func (c *Course) LectureIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Lectures))
	for _, l := range c.Lectures {
		ids = append(ids, l.LectureID)
	}
	return ids
}

// HasLecture は lectureID がこのコースの講義か判定する
func (c *Course) HasLecture(lectureID uuid.UUID) bool {
	for _, l := range c.Lectures {
		if l.LectureID == lectureID {
			return true
		}
	}
	return false
}

type CreateCourseRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Thumbnail   *string `json:"thumbnail" validate:"omitempty,url"`
}

// UpdateCourseRequest は部分更新 (nil のフィールドは変更しない)
type UpdateCourseRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Thumbnail   *string `json:"thumbnail" validate:"omitempty,url"`
}

// CourseSummary は管理者向け一覧の1行
type CourseSummary struct {
	Course
	EnrolledCount int64 `json:"enrolled_count"`
}

// CourseDetail は公開用のコース詳細。講義はタイトルのみ
type CourseDetail struct {
	CourseID     uuid.UUID        `json:"course_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Thumbnail    *string          `json:"thumbnail,omitempty"`
	InstructorID uuid.UUID        `json:"instructor_id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Lectures     []LectureSummary `json:"lectures"`
}

func NewCourseDetail(c *Course) *CourseDetail {
	return &CourseDetail{
		CourseID:     c.CourseID,
		Title:        c.Title,
		Description:  c.Description,
		Thumbnail:    c.Thumbnail,
		InstructorID: c.InstructorID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Lectures:     NewLectureSummaries(c.Lectures),
	}
}
