//go:generate mockery --name CommentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentService interface {
	PostComment(ctx context.Context, actor *model.Actor, lectureID uuid.UUID, req *model.PostCommentRequest) (*model.Comment, error)
	ListComments(ctx context.Context, lectureID uuid.UUID) ([]*model.Comment, error)
}

type commentService struct {
	db             *gorm.DB
	lectureRepo    repository.LectureRepository
	enrollmentRepo repository.EnrollmentRepository
	commentRepo    repository.CommentRepository
	guard          AccessGuard
}

func NewCommentService(
	db *gorm.DB,
	lectureRepo repository.LectureRepository,
	enrollmentRepo repository.EnrollmentRepository,
	commentRepo repository.CommentRepository,
	guard AccessGuard,
) CommentService {
	return &commentService{
		db:             db,
		lectureRepo:    lectureRepo,
		enrollmentRepo: enrollmentRepo,
		commentRepo:    commentRepo,
		guard:          guard,
	}
}

// PostComment は講義のコースに登録済みの受講者だけが投稿できる
func (s *commentService) PostComment(ctx context.Context, actor *model.Actor, lectureID uuid.UUID, req *model.PostCommentRequest) (*model.Comment, error) {
	logger := middleware.GetLogger(ctx).With("lecture_id", lectureID.String())

	if err := s.guard.Authorize(actor, model.ActionPostComment, nil); err != nil {
		logger.Warn("PostComment not authorized", "error", err)
		return nil, err
	}

	lecture, err := s.findLecture(ctx, lectureID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, s.db, lecture.CourseID, actor.UserID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if !enrolled {
		logger.Warn("Comment from learner not enrolled", "course_id", lecture.CourseID.String())
		return nil, model.NewAppError("NOT_ENROLLED", "このコースに登録されていません。", "", model.ErrNotEnrolled)
	}

	comment := &model.Comment{
		CommentID: uuid.New(),
		LectureID: lectureID,
		UserID:    actor.UserID,
		Text:      req.Text,
	}
	if err := s.commentRepo.Create(ctx, s.db, comment); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コメントの投稿に失敗しました。", "", err)
	}

	logger.Info("Comment posted", "comment_id", comment.CommentID.String())
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, lectureID uuid.UUID) ([]*model.Comment, error) {
	if _, err := s.findLecture(ctx, lectureID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByLecture(ctx, s.db, lectureID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return comments, nil
}

func (s *commentService) findLecture(ctx context.Context, lectureID uuid.UUID) (*model.Lecture, error) {
	lecture, err := s.lectureRepo.FindByID(ctx, s.db, lectureID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("LECTURE_NOT_FOUND", "講義が見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return lecture, nil
}
