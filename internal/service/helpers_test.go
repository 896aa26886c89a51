package service

import (
	"context"
	"fmt"
	"testing"

	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリDBを返す
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		TranslateError: true,
	})
	require.NoError(t, err)

	// 共有キャッシュでのロック競合を避ける
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role model.Role) *model.User {
	t.Helper()
	id := uuid.New()
	user := &model.User{
		UserID:       id,
		Name:         string(role) + "-" + id.String()[:8],
		Email:        id.String() + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedCourse は lectureCount 件の講義を持つコースを作る
func seedCourse(t *testing.T, db *gorm.DB, instructorID uuid.UUID, lectureCount int) *model.Course {
	t.Helper()
	course := &model.Course{
		CourseID:     uuid.New(),
		Title:        "Go入門",
		InstructorID: instructorID,
	}
	require.NoError(t, db.Omit("Lectures", "Instructor").Create(course).Error)

	for i := 1; i <= lectureCount; i++ {
		lecture := model.Lecture{
			LectureID: uuid.New(),
			CourseID:  course.CourseID,
			Position:  i,
			Title:     fmt.Sprintf("第%d回", i),
			MediaURL:  fmt.Sprintf("https://media.example.com/%d.mp4", i),
		}
		require.NoError(t, db.Create(&lecture).Error)
		course.Lectures = append(course.Lectures, lecture)
	}
	return course
}

func seedEnrollment(t *testing.T, db *gorm.DB, courseID, userID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Omit("User").Create(&model.Enrollment{
		EnrollmentID: uuid.New(),
		CourseID:     courseID,
		UserID:       userID,
	}).Error)
}

func actorOf(u *model.User) *model.Actor {
	return &model.Actor{UserID: u.UserID, Role: u.Role}
}

func countRows(t *testing.T, db *gorm.DB, m interface{}, where string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.WithContext(context.Background()).Model(m).Where(where, args...).Count(&n).Error)
	return n
}
