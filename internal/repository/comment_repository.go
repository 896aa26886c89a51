//go:generate mockery --name CommentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, db *gorm.DB, comment *model.Comment) error
	// ListByLecture は新しい順に投稿者付きで返す
	ListByLecture(ctx context.Context, db *gorm.DB, lectureID uuid.UUID) ([]*model.Comment, error)
	DeleteByLectures(ctx context.Context, tx *gorm.DB, lectureIDs []uuid.UUID) error
}

type gormCommentRepository struct{}

func NewGormCommentRepository() CommentRepository {
	return &gormCommentRepository{}
}

func (r *gormCommentRepository) Create(ctx context.Context, db *gorm.DB, comment *model.Comment) error {
	if err := db.WithContext(ctx).Omit("Author").Create(comment).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error creating comment in DB", "error", err, "lecture_id", comment.LectureID.String())
		return fmt.Errorf("gormCommentRepository.Create: %w", err)
	}
	return nil
}

func (r *gormCommentRepository) ListByLecture(ctx context.Context, db *gorm.DB, lectureID uuid.UUID) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := db.WithContext(ctx).
		Preload("Author").
		Where("lecture_id = ?", lectureID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		middleware.GetLogger(ctx).Error("Error listing comments in DB", "error", err, "lecture_id", lectureID.String())
		return nil, fmt.Errorf("gormCommentRepository.ListByLecture: %w", err)
	}
	return comments, nil
}

func (r *gormCommentRepository) DeleteByLectures(ctx context.Context, tx *gorm.DB, lectureIDs []uuid.UUID) error {
	if len(lectureIDs) == 0 {
		return nil
	}
	if err := tx.WithContext(ctx).Where("lecture_id IN ?", lectureIDs).Delete(&model.Comment{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting comments in DB", "error", err, "lectures", len(lectureIDs))
		return fmt.Errorf("gormCommentRepository.DeleteByLectures: %w", err)
	}
	return nil
}
