//go:generate mockery --name EnrollmentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	// Create は (course, user) が既に存在する場合 model.ErrAlreadyEnrolled を返す
	Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error
	Exists(ctx context.Context, db *gorm.DB, courseID, userID uuid.UUID) (bool, error)
	ListStudents(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.User, error)
	DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) error
}

type gormEnrollmentRepository struct{}

func NewGormEnrollmentRepository() EnrollmentRepository {
	return &gormEnrollmentRepository{}
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, db *gorm.DB, enrollment *model.Enrollment) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Omit("User").Create(enrollment)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate enrollment",
				"course_id", enrollment.CourseID.String(),
				"user_id", enrollment.UserID.String(),
			)
			return model.ErrAlreadyEnrolled
		}
		logger.Error("Error creating enrollment in DB", "error", result.Error, "course_id", enrollment.CourseID.String())
		return fmt.Errorf("gormEnrollmentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormEnrollmentRepository) Exists(ctx context.Context, db *gorm.DB, courseID, userID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error checking enrollment in DB", "error", err, "course_id", courseID.String())
		return false, fmt.Errorf("gormEnrollmentRepository.Exists: %w", err)
	}
	return count > 0, nil
}

func (r *gormEnrollmentRepository) ListStudents(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]*model.User, error) {
	var users []*model.User
	err := db.WithContext(ctx).
		Joins("JOIN enrollments ON enrollments.user_id = users.user_id").
		Where("enrollments.course_id = ?", courseID).
		Order("enrollments.created_at ASC").
		Find(&users).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing enrolled students in DB", "error", err, "course_id", courseID.String())
		return nil, fmt.Errorf("gormEnrollmentRepository.ListStudents: %w", err)
	}
	return users, nil
}

func (r *gormEnrollmentRepository) DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) error {
	if err := tx.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Enrollment{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting enrollments of course in DB", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormEnrollmentRepository.DeleteByCourse: %w", err)
	}
	return nil
}
