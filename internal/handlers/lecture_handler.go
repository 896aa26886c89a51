package handlers

import (
	"net/http"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/service"
	"go_5_course_track/internal/webutil"
)

type LectureHandler struct {
	service service.LectureService
}

func NewLectureHandler(s service.LectureService) *LectureHandler {
	return &LectureHandler{service: s}
}

// ListLectures は講義タイトルのみを返す (ログイン不要)
func (h *LectureHandler) ListLectures(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "LectureHandler.ListLectures")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}

	lectures, err := h.service.ListLectures(r.Context(), courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lectures, logger)
}

func (h *LectureHandler) GetLecture(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "LectureHandler.GetLecture")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}
	lectureID, ok := uuidParam(w, r, logger, "lectureId")
	if !ok {
		return
	}

	lecture, err := h.service.GetLecture(r.Context(), middleware.GetActorFromContext(r.Context()), courseID, lectureID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, lecture, logger)
}

func (h *LectureHandler) AddLecture(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "LectureHandler.AddLecture")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}
	var req model.AddLectureRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	lecture, err := h.service.AddLecture(r.Context(), middleware.GetActorFromContext(r.Context()), courseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, lecture, logger)
}

func (h *LectureHandler) DeleteLecture(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "LectureHandler.DeleteLecture")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}
	lectureID, ok := uuidParam(w, r, logger, "lectureId")
	if !ok {
		return
	}

	if err := h.service.DeleteLecture(r.Context(), middleware.GetActorFromContext(r.Context()), courseID, lectureID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
