package model

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment は受講者とコースの登録関係。(course, user) につき1件まで
type Enrollment struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_course_user"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollment_course_user;index"`
	CreatedAt    time.Time

	User *User `gorm:"foreignKey:UserID;references:UserID"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type EnrollResponse struct {
	Message string `json:"message"`
}
