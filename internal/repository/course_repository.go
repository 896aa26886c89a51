//go:generate mockery --name CourseRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, db *gorm.DB, course *model.Course) error
	// FindByID は講義を Position 順で Preload して返す
	FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.Course, error)
	ListByInstructor(ctx context.Context, db *gorm.DB, instructorID uuid.UUID) ([]*model.Course, error)
	ListByStudent(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Course, error)
	ListWithEnrollmentCounts(ctx context.Context, db *gorm.DB) ([]*model.CourseSummary, error)
	Update(ctx context.Context, db *gorm.DB, courseID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error
}

type gormCourseRepository struct{}

func NewGormCourseRepository() CourseRepository {
	return &gormCourseRepository{}
}

func orderedLectures(db *gorm.DB) *gorm.DB {
	return db.Order("lectures.position ASC")
}

func (r *gormCourseRepository) Create(ctx context.Context, db *gorm.DB, course *model.Course) error {
	result := db.WithContext(ctx).Omit("Lectures", "Instructor").Create(course)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error creating course in DB", "error", result.Error, "title", course.Title)
		return fmt.Errorf("gormCourseRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCourseRepository) FindByID(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)
	var course model.Course

	result := db.WithContext(ctx).
		Preload("Lectures", orderedLectures).
		Where("course_id = ?", courseID).
		First(&course)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding course by ID in DB", "error", result.Error, "course_id", courseID.String())
		return nil, fmt.Errorf("gormCourseRepository.FindByID: %w", result.Error)
	}
	return &course, nil
}

func (r *gormCourseRepository) List(ctx context.Context, db *gorm.DB) ([]*model.Course, error) {
	var courses []*model.Course
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&courses).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing courses in DB", "error", err)
		return nil, fmt.Errorf("gormCourseRepository.List: %w", err)
	}
	return courses, nil
}

func (r *gormCourseRepository) ListByInstructor(ctx context.Context, db *gorm.DB, instructorID uuid.UUID) ([]*model.Course, error) {
	var courses []*model.Course
	err := db.WithContext(ctx).
		Where("instructor_id = ?", instructorID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing instructor courses in DB", "error", err, "instructor_id", instructorID.String())
		return nil, fmt.Errorf("gormCourseRepository.ListByInstructor: %w", err)
	}
	return courses, nil
}

func (r *gormCourseRepository) ListByStudent(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Course, error) {
	var courses []*model.Course
	err := db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.course_id = courses.course_id").
		Where("enrollments.user_id = ?", userID).
		Order("enrollments.created_at DESC").
		Find(&courses).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing enrolled courses in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormCourseRepository.ListByStudent: %w", err)
	}
	return courses, nil
}

// ListWithEnrollmentCounts は管理者向けに全コースと登録者数を返す
func (r *gormCourseRepository) ListWithEnrollmentCounts(ctx context.Context, db *gorm.DB) ([]*model.CourseSummary, error) {
	logger := middleware.GetLogger(ctx)

	courses, err := r.List(ctx, db)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		CourseID uuid.UUID
		Count    int64
	}
	err = db.WithContext(ctx).Model(&model.Enrollment{}).
		Select("course_id, COUNT(*) AS count").
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		logger.Error("Error counting enrollments in DB", "error", err)
		return nil, fmt.Errorf("gormCourseRepository.ListWithEnrollmentCounts: %w", err)
	}
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.CourseID] = row.Count
	}

	summaries := make([]*model.CourseSummary, 0, len(courses))
	for _, c := range courses {
		summaries = append(summaries, &model.CourseSummary{Course: *c, EnrolledCount: counts[c.CourseID]})
	}
	return summaries, nil
}

func (r *gormCourseRepository) Update(ctx context.Context, db *gorm.DB, courseID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Course{}).Where("course_id = ?", courseID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating course in DB", "error", result.Error, "course_id", courseID.String())
		return fmt.Errorf("gormCourseRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCourseRepository) Delete(ctx context.Context, db *gorm.DB, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Course{})
	if result.Error != nil {
		logger.Error("Error deleting course in DB", "error", result.Error, "course_id", courseID.String())
		return fmt.Errorf("gormCourseRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
