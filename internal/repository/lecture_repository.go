//go:generate mockery --name LectureRepository --output ./mocks --outpkg mocks --case=underscore
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

type LectureRepository interface {
	Create(ctx context.Context, tx *gorm.DB, lecture *model.Lecture) error
	FindByID(ctx context.Context, db *gorm.DB, lectureID uuid.UUID) (*model.Lecture, error)
	ListByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]model.Lecture, error)
	// NextPosition はコース末尾に追加する講義の Position を返す
	NextPosition(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (int, error)
	Delete(ctx context.Context, tx *gorm.DB, courseID, lectureID uuid.UUID) error
	DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) error
}

type gormLectureRepository struct{}

func NewGormLectureRepository() LectureRepository {
	return &gormLectureRepository{}
}

func (r *gormLectureRepository) Create(ctx context.Context, tx *gorm.DB, lecture *model.Lecture) error {
	if err := tx.WithContext(ctx).Create(lecture).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating lecture in DB", "error", err, "course_id", lecture.CourseID.String())
		return fmt.Errorf("gormLectureRepository.Create: %w", err)
	}
	return nil
}

func (r *gormLectureRepository) FindByID(ctx context.Context, db *gorm.DB, lectureID uuid.UUID) (*model.Lecture, error) {
	var lecture model.Lecture
	result := db.WithContext(ctx).Where("lecture_id = ?", lectureID).First(&lecture)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding lecture by ID in DB", "error", result.Error, "lecture_id", lectureID.String())
		return nil, fmt.Errorf("gormLectureRepository.FindByID: %w", result.Error)
	}
	return &lecture, nil
}

func (r *gormLectureRepository) ListByCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) ([]model.Lecture, error) {
	var lectures []model.Lecture
	err := db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("position ASC").
		Find(&lectures).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing lectures in DB", "error", err, "course_id", courseID.String())
		return nil, fmt.Errorf("gormLectureRepository.ListByCourse: %w", err)
	}
	return lectures, nil
}

func (r *gormLectureRepository) NextPosition(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) (int, error) {
	var maxPos *int
	err := tx.WithContext(ctx).Model(&model.Lecture{}).
		Where("course_id = ?", courseID).
		Select("MAX(position)").
		Scan(&maxPos).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error reading max lecture position", "error", err, "course_id", courseID.String())
		return 0, fmt.Errorf("gormLectureRepository.NextPosition: %w", err)
	}
	if maxPos == nil {
		return 1, nil
	}
	return *maxPos + 1, nil
}

func (r *gormLectureRepository) Delete(ctx context.Context, tx *gorm.DB, courseID, lectureID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("course_id = ? AND lecture_id = ?", courseID, lectureID).
		Delete(&model.Lecture{})
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error deleting lecture in DB", "error", result.Error, "lecture_id", lectureID.String())
		return fmt.Errorf("gormLectureRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormLectureRepository) DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) error {
	if err := tx.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.Lecture{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting lectures of course in DB", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormLectureRepository.DeleteByCourse: %w", err)
	}
	return nil
}
