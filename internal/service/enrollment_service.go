//go:generate mockery --name EnrollmentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"

	"go_5_course_track/internal/config"
	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, actor *model.Actor, courseID uuid.UUID) error
	IsEnrolled(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error)
}

type enrollmentService struct {
	db             *gorm.DB
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	userRepo       repository.UserRepository
	mailer         Mailer
	guard          AccessGuard
	cfg            *config.Config
}

func NewEnrollmentService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
	mailer Mailer,
	guard AccessGuard,
	cfg *config.Config,
) EnrollmentService {
	return &enrollmentService{
		db:             db,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
		mailer:         mailer,
		guard:          guard,
		cfg:            cfg,
	}
}

// Enroll は受講者をコースに登録し、登録完了の通知を送る
func (s *enrollmentService) Enroll(ctx context.Context, actor *model.Actor, courseID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("course_id", courseID.String())

	if err := s.guard.Authorize(actor, model.ActionEnroll, nil); err != nil {
		logger.Warn("Enroll not authorized", "error", err)
		return err
	}

	course, err := s.courseRepo.FindByID(ctx, s.db, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	exists, err := s.enrollmentRepo.Exists(ctx, s.db, courseID, actor.UserID)
	if err != nil {
		return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if exists {
		logger.Info("Learner already enrolled")
		return model.NewAppError("ALREADY_ENROLLED", "既にこのコースに登録済みです。", "", model.ErrAlreadyEnrolled)
	}

	enrollment := &model.Enrollment{
		EnrollmentID: uuid.New(),
		CourseID:     courseID,
		UserID:       actor.UserID,
	}
	if err := s.enrollmentRepo.Create(ctx, s.db, enrollment); err != nil {
		// Exists と Create の間に同じ登録が入った場合
		if errors.Is(err, model.ErrAlreadyEnrolled) {
			return model.NewAppError("ALREADY_ENROLLED", "既にこのコースに登録済みです。", "", model.ErrAlreadyEnrolled)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "コースへの登録に失敗しました。", "", err)
	}

	logger.Info("Learner enrolled", "user_id", actor.UserID.String())
	s.sendEnrollmentNotice(ctx, actor.UserID, course)
	return nil
}

func (s *enrollmentService) IsEnrolled(ctx context.Context, learnerID, courseID uuid.UUID) (bool, error) {
	enrolled, err := s.enrollmentRepo.Exists(ctx, s.db, courseID, learnerID)
	if err != nil {
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return enrolled, nil
}

// sendEnrollmentNotice の失敗は登録結果に影響させない
func (s *enrollmentService) sendEnrollmentNotice(ctx context.Context, userID uuid.UUID, course *model.Course) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		logger.Warn("Skipping enrollment notice: user lookup failed", "error", err, "user_id", userID.String())
		return
	}

	courseURL := fmt.Sprintf("%s/courses/%s", s.cfg.App.FrontendURL, course.CourseID)
	subject := fmt.Sprintf("【%s】コース「%s」への登録が完了しました", s.cfg.App.Name, course.Title)
	body := fmt.Sprintf("%s さん\n\nコース「%s」への登録が完了しました。\n以下のリンクから受講を開始できます:\n%s", user.Name, course.Title, courseURL)

	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		logger.Error("Failed to send enrollment notice", "error", err, "user_id", userID.String())
	}
}
