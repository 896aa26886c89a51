package handlers

import (
	"net/http"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/service"
	"go_5_course_track/internal/webutil"
)

// CourseHandler はコースの作成・閲覧・更新・削除と各種一覧を扱う
type CourseHandler struct {
	service service.CourseService
}

func NewCourseHandler(s service.CourseService) *CourseHandler {
	return &CourseHandler{service: s}
}

func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CourseHandler.CreateCourse")

	var req model.CreateCourseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	course, err := h.service.CreateCourse(r.Context(), middleware.GetActorFromContext(r.Context()), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, course, logger)
}

func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CourseHandler.ListCourses")

	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}

// GetCourse はコースと講義タイトルの一覧を返す
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CourseHandler.GetCourse")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}

	course, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewCourseDetail(course), logger)
}

func (h *CourseHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CourseHandler.UpdateCourse")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}
	var req model.UpdateCourseRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	course, err := h.service.UpdateCourse(r.Context(), middleware.GetActorFromContext(r.Context()), courseID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewCourseDetail(course), logger)
}

func (h *CourseHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CourseHandler.DeleteCourse")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}

	if err := h.service.DeleteCourse(r.Context(), middleware.GetActorFromContext(r.Context()), courseID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CourseHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CourseHandler.ListStudents")

	courseID, ok := uuidParam(w, r, logger, "courseId")
	if !ok {
		return
	}

	students, err := h.service.ListStudents(r.Context(), middleware.GetActorFromContext(r.Context()), courseID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, toUserResponses(students), logger)
}

func (h *CourseHandler) ListInstructorCourses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CourseHandler.ListInstructorCourses")

	courses, err := h.service.ListInstructorCourses(r.Context(), middleware.GetActorFromContext(r.Context()))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}

func (h *CourseHandler) ListStudentCourses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CourseHandler.ListStudentCourses")

	courses, err := h.service.ListStudentCourses(r.Context(), middleware.GetActorFromContext(r.Context()))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, courses, logger)
}

func toUserResponses(users []*model.User) []*model.UserResponse {
	out := make([]*model.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, model.NewUserResponse(u))
	}
	return out
}
