package handlers

import (
	"context"
	"net/http"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/service"
	"go_5_course_track/internal/webutil"

	"github.com/google/uuid"
)

// ProgressHandler は受講登録と講義の完了状態を扱う
type ProgressHandler struct {
	enrollments service.EnrollmentService
	progress    service.ProgressService
}

func NewProgressHandler(enrollments service.EnrollmentService, progress service.ProgressService) *ProgressHandler {
	return &ProgressHandler{enrollments: enrollments, progress: progress}
}

// Enroll は POST /courses/{courseId}/enroll
func (h *ProgressHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ProgressHandler.Enroll")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}

	if err := h.enrollments.Enroll(r.Context(), middleware.GetActorFromContext(r.Context()), courseID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.EnrollResponse{Message: "コースに登録しました。"}, logger)
}

// MarkComplete は POST /courses/{courseId}/lectures/{lectureId}/complete
func (h *ProgressHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "ProgressHandler.MarkComplete", h.progress.MarkComplete)
}

// MarkIncomplete は POST /courses/{courseId}/lectures/{lectureId}/uncomplete
func (h *ProgressHandler) MarkIncomplete(w http.ResponseWriter, r *http.Request) {
	h.mark(w, r, "ProgressHandler.MarkIncomplete", h.progress.MarkIncomplete)
}

type markFunc func(ctx context.Context, actor *model.Actor, courseID, lectureID uuid.UUID) (*model.ProgressSummary, error)

func (h *ProgressHandler) mark(w http.ResponseWriter, r *http.Request, name string, op markFunc) {
	logger := middleware.GetLogger(r.Context()).With("handler", name)

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}
	lectureID, ok := uuidParam(w, r, logger, "lectureId")
	if !ok {
		return
	}

	summary, err := op(r.Context(), middleware.GetActorFromContext(r.Context()), courseID, lectureID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

// GetProgress は GET /courses/{courseId}/progress
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "ProgressHandler.GetProgress")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}

	progress, err := h.progress.GetProgress(r.Context(), middleware.GetActorFromContext(r.Context()), courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, progress, logger)
}
