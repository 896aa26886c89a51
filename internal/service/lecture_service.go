//go:generate mockery --name LectureService --output ./mocks --outpkg mocks --case=underscore
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

type LectureService interface {
	AddLecture(ctx context.Context, actor *model.Actor, courseID uuid.UUID, req *model.AddLectureRequest) (*model.Lecture, error)
	ListLectures(ctx context.Context, courseID uuid.UUID) ([]model.LectureSummary, error)
	GetLecture(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) (*model.Lecture, error)
	DeleteLecture(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) error
}

type lectureService struct {
	db             *gorm.DB
	courseRepo     repository.CourseRepository
	lectureRepo    repository.LectureRepository
	enrollmentRepo repository.EnrollmentRepository
	commentRepo    repository.CommentRepository
	guard          AccessGuard
}

func NewLectureService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	lectureRepo repository.LectureRepository,
	enrollmentRepo repository.EnrollmentRepository,
	commentRepo repository.CommentRepository,
	guard AccessGuard,
) LectureService {
	return &lectureService{
		db:             db,
		courseRepo:     courseRepo,
		lectureRepo:    lectureRepo,
		enrollmentRepo: enrollmentRepo,
		commentRepo:    commentRepo,
		guard:          guard,
	}
}

// AddLecture は講義をコースの末尾に追加する
func (s *lectureService) AddLecture(ctx context.Context, actor *model.Actor, courseID uuid.UUID, req *model.AddLectureRequest) (*model.Lecture, error) {
	logger := middleware.GetLogger(ctx).With("course_id", courseID.String())

	var lecture *model.Lecture
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.findCourse(ctx, tx, courseID)
		if err != nil {
			return err
		}
		if err := s.guard.Authorize(actor, model.ActionAddLecture, course); err != nil {
			logger.Warn("AddLecture not authorized", "error", err)
			return err
		}

		pos, err := s.lectureRepo.NextPosition(ctx, tx, courseID)
		if err != nil {
			return err
		}

		lecture = &model.Lecture{
			LectureID: uuid.New(),
			CourseID:  courseID,
			Position:  pos,
			Title:     req.Title,
			MediaURL:  req.MediaURL,
			Notes:     req.Notes,
		}
		return s.lectureRepo.Create(ctx, tx, lecture)
	})
	if err != nil {
		return nil, asAppError(err, "講義の追加に失敗しました。")
	}

	logger.Info("Lecture added", "lecture_id", lecture.LectureID.String(), "position", lecture.Position)
	return lecture, nil
}

func (s *lectureService) ListLectures(ctx context.Context, courseID uuid.UUID) ([]model.LectureSummary, error) {
	course, err := s.findCourse(ctx, s.db, courseID)
	if err != nil {
		return nil, err
	}
	return model.NewLectureSummaries(course.Lectures), nil
}

// GetLecture は受講者、コース所有者、管理者にだけ講義の中身を返す
func (s *lectureService) GetLecture(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) (*model.Lecture, error) {
	if actor == nil {
		return nil, model.NewAppError("UNAUTHENTICATED", "ログインが必要です。", "", model.ErrUnauthenticated)
	}

	course, err := s.findCourse(ctx, s.db, courseID)
	if err != nil {
		return nil, err
	}

	var lecture *model.Lecture
	for i := range course.Lectures {
		if course.Lectures[i].LectureID == lectureID {
			lecture = &course.Lectures[i]
			break
		}
	}
	if lecture == nil {
		return nil, model.NewAppError("LECTURE_NOT_FOUND", "講義が見つかりません。", "", model.ErrNotFound)
	}

	if authorizeOwnerOrAdmin(s.guard, actor, course) == nil {
		return lecture, nil
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, s.db, courseID, actor.UserID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if !enrolled {
		middleware.GetLogger(ctx).Warn("Lecture content requested without enrollment", "course_id", courseID.String(), "lecture_id", lectureID.String())
		return nil, model.NewAppError("NOT_ENROLLED", "このコースに登録されていません。", "", model.ErrNotEnrolled)
	}
	return lecture, nil
}

// DeleteLecture は講義に付いたコメントも削除する
func (s *lectureService) DeleteLecture(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("course_id", courseID.String(), "lecture_id", lectureID.String())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.findCourse(ctx, tx, courseID)
		if err != nil {
			return err
		}
		if err := s.guard.Authorize(actor, model.ActionDeleteLecture, course); err != nil {
			logger.Warn("DeleteLecture not authorized", "error", err)
			return err
		}
		if !course.HasLecture(lectureID) {
			return model.NewAppError("LECTURE_NOT_FOUND", "講義が見つかりません。", "", model.ErrNotFound)
		}

		if err := s.commentRepo.DeleteByLectures(ctx, tx, []uuid.UUID{lectureID}); err != nil {
			return err
		}
		return s.lectureRepo.Delete(ctx, tx, courseID, lectureID)
	})
	if err != nil {
		return asAppError(err, "講義の削除に失敗しました。")
	}

	logger.Info("Lecture deleted")
	return nil
}

func (s *lectureService) findCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, db, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return course, nil
}

// asAppError は AppError 以外のエラーを 500 の AppError に包む
func asAppError(err error, message string) error {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, model.ErrNotFound) {
		return model.NewAppError("NOT_FOUND", "リソースが見つかりません。", "", model.ErrNotFound)
	}
	return model.NewAppError("INTERNAL_SERVER_ERROR", message, "", err)
}
