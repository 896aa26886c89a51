//go:generate mockery --name CourseService --output ./mocks --outpkg mocks --case=underscore
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

type CourseService interface {
	CreateCourse(ctx context.Context, actor *model.Actor, req *model.CreateCourseRequest) (*model.Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*model.Course, error)
	ListCourses(ctx context.Context) ([]*model.Course, error)
	UpdateCourse(ctx context.Context, actor *model.Actor, courseID uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(ctx context.Context, actor *model.Actor, courseID uuid.UUID) error
	ListInstructorCourses(ctx context.Context, actor *model.Actor) ([]*model.Course, error)
	ListStudentCourses(ctx context.Context, actor *model.Actor) ([]*model.Course, error)
	ListStudents(ctx context.Context, actor *model.Actor, courseID uuid.UUID) ([]*model.User, error)
	ListCoursesForAdmin(ctx context.Context, actor *model.Actor) ([]*model.CourseSummary, error)
}

type courseService struct {
	db             *gorm.DB // トランザクション用
	courseRepo     repository.CourseRepository
	lectureRepo    repository.LectureRepository
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
	commentRepo    repository.CommentRepository
	guard          AccessGuard
}

func NewCourseService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	lectureRepo repository.LectureRepository,
	enrollmentRepo repository.EnrollmentRepository,
	progressRepo repository.ProgressRepository,
	commentRepo repository.CommentRepository,
	guard AccessGuard,
) CourseService {
	return &courseService{
		db:             db,
		courseRepo:     courseRepo,
		lectureRepo:    lectureRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		commentRepo:    commentRepo,
		guard:          guard,
	}
}

func (s *courseService) CreateCourse(ctx context.Context, actor *model.Actor, req *model.CreateCourseRequest) (*model.Course, error) {
	logger := middleware.GetLogger(ctx)

	if err := s.guard.Authorize(actor, model.ActionCreateCourse, nil); err != nil {
		logger.Warn("CreateCourse not authorized", "error", err)
		return nil, err
	}

	course := &model.Course{
		CourseID:     uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Thumbnail:    req.Thumbnail,
		InstructorID: actor.UserID,
	}
	if err := s.courseRepo.Create(ctx, s.db, course); err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コースの作成に失敗しました。", "", err)
	}

	logger.Info("Course created", "course_id", course.CourseID.String())
	return course, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*model.Course, error) {
	return s.findCourse(ctx, s.db, courseID)
}

func (s *courseService) ListCourses(ctx context.Context) ([]*model.Course, error) {
	courses, err := s.courseRepo.List(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return courses, nil
}

// UpdateCourse は nil でない項目だけを更新する
func (s *courseService) UpdateCourse(ctx context.Context, actor *model.Actor, courseID uuid.UUID, req *model.UpdateCourseRequest) (*model.Course, error) {
	logger := middleware.GetLogger(ctx).With("course_id", courseID.String())

	var updated *model.Course
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.findCourse(ctx, tx, courseID)
		if err != nil {
			return err
		}
		if err := s.guard.Authorize(actor, model.ActionUpdateCourse, course); err != nil {
			logger.Warn("UpdateCourse not authorized", "error", err)
			return err
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Thumbnail != nil {
			updates["thumbnail"] = *req.Thumbnail
		}
		if len(updates) > 0 {
			if err := s.courseRepo.Update(ctx, tx, courseID, updates); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "コースの更新に失敗しました。", "", err)
			}
		}

		updated, err = s.findCourse(ctx, tx, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Course updated")
	return updated, nil
}

// DeleteCourse はコースに紐づく講義・受講登録・進捗・コメントもまとめて削除する
func (s *courseService) DeleteCourse(ctx context.Context, actor *model.Actor, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("course_id", courseID.String())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.findCourse(ctx, tx, courseID)
		if err != nil {
			return err
		}
		if err := s.guard.Authorize(actor, model.ActionDeleteCourse, course); err != nil {
			logger.Warn("DeleteCourse not authorized", "error", err)
			return err
		}

		if err := s.commentRepo.DeleteByLectures(ctx, tx, course.LectureIDs()); err != nil {
			return err
		}
		if err := s.progressRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if err := s.enrollmentRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
			return err
		}
		if err := s.lectureRepo.DeleteByCourse(ctx, tx, courseID); err != nil {
			return err
		}
		return s.courseRepo.Delete(ctx, tx, courseID)
	})
	if err != nil {
		logger.Warn("Transaction failed for DeleteCourse", "error", err)
		return asAppError(err, "コースの削除に失敗しました。")
	}

	logger.Info("Course deleted")
	return nil
}

func (s *courseService) ListInstructorCourses(ctx context.Context, actor *model.Actor) ([]*model.Course, error) {
	if err := s.guard.Authorize(actor, model.ActionCreateCourse, nil); err != nil {
		return nil, err
	}
	courses, err := s.courseRepo.ListByInstructor(ctx, s.db, actor.UserID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return courses, nil
}

func (s *courseService) ListStudentCourses(ctx context.Context, actor *model.Actor) ([]*model.Course, error) {
	if actor == nil {
		return nil, model.NewAppError("UNAUTHENTICATED", "ログインが必要です。", "", model.ErrUnauthenticated)
	}
	courses, err := s.courseRepo.ListByStudent(ctx, s.db, actor.UserID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return courses, nil
}

// ListStudents はコース所有者か管理者だけが参照できる
func (s *courseService) ListStudents(ctx context.Context, actor *model.Actor, courseID uuid.UUID) ([]*model.User, error) {
	course, err := s.findCourse(ctx, s.db, courseID)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwnerOrAdmin(s.guard, actor, course); err != nil {
		middleware.GetLogger(ctx).Warn("ListStudents not authorized", "error", err, "course_id", courseID.String())
		return nil, err
	}

	students, err := s.enrollmentRepo.ListStudents(ctx, s.db, courseID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return students, nil
}

func (s *courseService) ListCoursesForAdmin(ctx context.Context, actor *model.Actor) ([]*model.CourseSummary, error) {
	if err := s.guard.Authorize(actor, model.ActionAdminOverride, nil); err != nil {
		return nil, err
	}
	summaries, err := s.courseRepo.ListWithEnrollmentCounts(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return summaries, nil
}

func (s *courseService) findCourse(ctx context.Context, db *gorm.DB, courseID uuid.UUID) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, db, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return course, nil
}
