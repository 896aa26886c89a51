// internal/model/progress.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressEntry は (受講者, コース) ごとの完了済み講義の記録
// Version は CAS 更新用で、更新ごとに1ずつ増える
type ProgressEntry struct {
	ProgressID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_progress_user_course"` // 複合ユニークインデックスの一部
	CourseID            uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_progress_user_course;index"`
	CompletedLectureIDs []uuid.UUID `gorm:"type:text;serializer:json"`
	Version             int64       `gorm:"not null;default:1"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}

// IsCompleted は lectureID が完了済みか判定する
func (p *ProgressEntry) IsCompleted(lectureID uuid.UUID) bool {
	if p == nil {
		return false
	}
	for _, id := range p.CompletedLectureIDs {
		if id == lectureID {
			return true
		}
	}
	return false
}

// ProgressSummary は complete / uncomplete のレスポンス
type ProgressSummary struct {
	CompletedCount int `json:"completedCount"`
	TotalCount     int `json:"totalCount"`
	Progress       int `json:"progress"`
}

type LectureProgress struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"isCompleted"`
}

// CourseProgress は GET /progress のレスポンス
type CourseProgress struct {
	Progress       int               `json:"progress"`
	CompletedCount int               `json:"completedCount"`
	TotalCount     int               `json:"totalCount"`
	Lectures       []LectureProgress `json:"lectures"`
}
