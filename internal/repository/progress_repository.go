//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	FindByUserAndCourse(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (*model.ProgressEntry, error)
	// Create は同じ (user, course) の記録が既にある場合 model.ErrConflict を返す
	Create(ctx context.Context, db *gorm.DB, entry *model.ProgressEntry) error
	// CompareAndSwap は Version が expectedVersion のときだけ完了リストを書き換える。
	// 書き換えられなかった場合は false を返す
	CompareAndSwap(ctx context.Context, db *gorm.DB, entry *model.ProgressEntry, expectedVersion int64) (bool, error)
	DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) FindByUserAndCourse(ctx context.Context, db *gorm.DB, userID, courseID uuid.UUID) (*model.ProgressEntry, error) {
	var entry model.ProgressEntry
	result := db.WithContext(ctx).Where("user_id = ? AND course_id = ?", userID, courseID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding progress entry in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"course_id", courseID.String(),
		)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndCourse: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormProgressRepository) Create(ctx context.Context, db *gorm.DB, entry *model.ProgressEntry) error {
	logger := middleware.GetLogger(ctx)

	if entry.CompletedLectureIDs == nil {
		entry.CompletedLectureIDs = []uuid.UUID{}
	}
	result := db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Debug("Progress entry created concurrently", "user_id", entry.UserID.String(), "course_id", entry.CourseID.String())
			return model.ErrConflict
		}
		logger.Error("Error creating progress entry in DB", "error", result.Error, "course_id", entry.CourseID.String())
		return fmt.Errorf("gormProgressRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProgressRepository) CompareAndSwap(ctx context.Context, db *gorm.DB, entry *model.ProgressEntry, expectedVersion int64) (bool, error) {
	logger := middleware.GetLogger(ctx)

	ids := entry.CompletedLectureIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	now := time.Now()
	// Updates(map) だとシリアライザが効かないため、構造体 + Select で更新列を限定する
	result := db.WithContext(ctx).Model(&model.ProgressEntry{}).
		Where("progress_id = ? AND version = ?", entry.ProgressID, expectedVersion).
		Select("CompletedLectureIDs", "Version", "UpdatedAt").
		Updates(&model.ProgressEntry{
			CompletedLectureIDs: ids,
			Version:             expectedVersion + 1,
			UpdatedAt:           now,
		})
	if result.Error != nil {
		logger.Error("Error updating progress entry in DB", "error", result.Error, "progress_id", entry.ProgressID.String())
		return false, fmt.Errorf("gormProgressRepository.CompareAndSwap: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	entry.CompletedLectureIDs = ids
	entry.Version = expectedVersion + 1
	entry.UpdatedAt = now
	return true, nil
}

func (r *gormProgressRepository) DeleteByCourse(ctx context.Context, tx *gorm.DB, courseID uuid.UUID) error {
	if err := tx.WithContext(ctx).Where("course_id = ?", courseID).Delete(&model.ProgressEntry{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting progress entries of course in DB", "error", err, "course_id", courseID.String())
		return fmt.Errorf("gormProgressRepository.DeleteByCourse: %w", err)
	}
	return nil
}
