//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_course_track/internal/config"
	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	MarkComplete(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) (*model.ProgressSummary, error)
	MarkIncomplete(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) (*model.ProgressSummary, error)
	GetProgress(ctx context.Context, actor *model.Actor, courseID uuid.UUID) (*model.CourseProgress, error)
}

type progressService struct {
	db             *gorm.DB
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	progressRepo   repository.ProgressRepository
	guard          AccessGuard
	maxAttempts    int
}

func NewProgressService(
	db *gorm.DB,
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	progressRepo repository.ProgressRepository,
	guard AccessGuard,
	cfg *config.Config,
) ProgressService {
	maxAttempts := cfg.App.ProgressMaxRetries
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultProgressMaxRetries
	}
	return &progressService{
		db:             db,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
		guard:          guard,
		maxAttempts:    maxAttempts,
	}
}

// Percentage は completed/total を 0-100 の整数に四捨五入する (0.5 は切り上げ)。
// total が 0 のときは 0
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*completed + total) / (2 * total)
}

// errStaleProgress は読み取り後に他のリクエストが記録を更新したことを表す
var errStaleProgress = errors.New("progress entry changed concurrently")

// completionChange は完了リストを書き換えた結果と、変化があったかを返す
type completionChange func(ids []uuid.UUID, lectureID uuid.UUID) ([]uuid.UUID, bool)

func addCompleted(ids []uuid.UUID, lectureID uuid.UUID) ([]uuid.UUID, bool) {
	for _, id := range ids {
		if id == lectureID {
			return ids, false
		}
	}
	out := make([]uuid.UUID, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, lectureID), true
}

func removeCompleted(ids []uuid.UUID, lectureID uuid.UUID) ([]uuid.UUID, bool) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != lectureID {
			out = append(out, id)
		}
	}
	if len(out) == len(ids) {
		return ids, false
	}
	return out, true
}

func (s *progressService) MarkComplete(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) (*model.ProgressSummary, error) {
	return s.updateCompletion(ctx, actor, courseID, lectureID, addCompleted, true)
}

// MarkIncomplete は記録が無い場合も含め、未完了の講義に対しては何もしない
func (s *progressService) MarkIncomplete(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) (*model.ProgressSummary, error) {
	return s.updateCompletion(ctx, actor, courseID, lectureID, removeCompleted, false)
}

func (s *progressService) GetProgress(ctx context.Context, actor *model.Actor, courseID uuid.UUID) (*model.CourseProgress, error) {
	if actor == nil {
		return nil, model.NewAppError("UNAUTHENTICATED", "ログインが必要です。", "", model.ErrUnauthenticated)
	}

	course, err := s.loadEnrolledCourse(ctx, actor.UserID, courseID)
	if err != nil {
		return nil, err
	}

	entry, err := s.findEntry(ctx, actor.UserID, courseID)
	if err != nil {
		return nil, err
	}

	summary := summarize(course, entry)
	lectures := make([]model.LectureProgress, 0, len(course.Lectures))
	for _, l := range course.Lectures {
		lectures = append(lectures, model.LectureProgress{
			ID:          l.LectureID,
			Title:       l.Title,
			IsCompleted: entry.IsCompleted(l.LectureID),
		})
	}

	return &model.CourseProgress{
		Progress:       summary.Progress,
		CompletedCount: summary.CompletedCount,
		TotalCount:     summary.TotalCount,
		Lectures:       lectures,
	}, nil
}

func (s *progressService) updateCompletion(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID, change completionChange, createIfAbsent bool) (*model.ProgressSummary, error) {
	logger := middleware.GetLogger(ctx).With("course_id", courseID.String(), "lecture_id", lectureID.String())

	if err := s.guard.Authorize(actor, model.ActionMarkProgress, nil); err != nil {
		logger.Warn("Progress update not authorized", "error", err)
		return nil, err
	}

	course, err := s.loadEnrolledCourse(ctx, actor.UserID, courseID)
	if err != nil {
		return nil, err
	}
	if !course.HasLecture(lectureID) {
		logger.Warn("Lecture does not belong to course")
		return nil, model.NewAppError("INVALID_REFERENCE", "指定された講義はこのコースに含まれていません。", "lecture_id", model.ErrInvalidReference)
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		summary, err := s.tryUpdate(ctx, actor.UserID, course, lectureID, change, createIfAbsent)
		if errors.Is(err, errStaleProgress) {
			logger.Debug("Progress entry changed concurrently, retrying", "attempt", attempt)
			continue
		}
		return summary, err
	}

	logger.Warn("Progress update retries exhausted", "attempts", s.maxAttempts)
	return nil, model.NewAppError("PROGRESS_CONFLICT", "進捗の更新が競合しました。時間をおいて再度お試しください。", "", model.ErrConflict)
}

// tryUpdate は1回分の読み取りと CAS 書き込みを行う
func (s *progressService) tryUpdate(ctx context.Context, userID uuid.UUID, course *model.Course, lectureID uuid.UUID, change completionChange, createIfAbsent bool) (*model.ProgressSummary, error) {
	entry, err := s.findEntry(ctx, userID, course.CourseID)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		if !createIfAbsent {
			return summarize(course, nil), nil
		}
		ids, _ := change(nil, lectureID)
		created := &model.ProgressEntry{
			ProgressID:          uuid.New(),
			UserID:              userID,
			CourseID:            course.CourseID,
			CompletedLectureIDs: ids,
			Version:             1,
		}
		if err := s.progressRepo.Create(ctx, s.db, created); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return nil, errStaleProgress
			}
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の保存に失敗しました。", "", err)
		}
		return summarize(course, created), nil
	}

	ids, changed := change(entry.CompletedLectureIDs, lectureID)
	if !changed {
		return summarize(course, entry), nil
	}

	updated := *entry
	updated.CompletedLectureIDs = ids
	swapped, err := s.progressRepo.CompareAndSwap(ctx, s.db, &updated, entry.Version)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "進捗の保存に失敗しました。", "", err)
	}
	if !swapped {
		return nil, errStaleProgress
	}
	return summarize(course, &updated), nil
}

// loadEnrolledCourse はコースの存在と受講登録を確認する
func (s *progressService) loadEnrolledCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.Course, error) {
	course, err := s.courseRepo.FindByID(ctx, s.db, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("COURSE_NOT_FOUND", "コースが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	enrolled, err := s.enrollmentRepo.Exists(ctx, s.db, courseID, userID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	if !enrolled {
		middleware.GetLogger(ctx).Warn("Learner not enrolled", "user_id", userID.String(), "course_id", courseID.String())
		return nil, model.NewAppError("NOT_ENROLLED", "このコースに登録されていません。", "", model.ErrNotEnrolled)
	}
	return course, nil
}

// findEntry は記録が無い場合 (nil, nil) を返す
func (s *progressService) findEntry(ctx context.Context, userID, courseID uuid.UUID) (*model.ProgressEntry, error) {
	entry, err := s.progressRepo.FindByUserAndCourse(ctx, s.db, userID, courseID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return entry, nil
}

// summarize はコースに現存する講義だけを数える
func summarize(course *model.Course, entry *model.ProgressEntry) *model.ProgressSummary {
	total := len(course.Lectures)
	completed := 0
	for _, l := range course.Lectures {
		if entry.IsCompleted(l.LectureID) {
			completed++
		}
	}
	return &model.ProgressSummary{
		CompletedCount: completed,
		TotalCount:     total,
		Progress:       Percentage(completed, total),
	}
}
