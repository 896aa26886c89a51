package handlers

import (
	"net/http"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/service"
	"go_5_course_track/internal/webutil"
)

// AdminHandler は /admin 配下。認可はサービス側で adminOverride を判定する
type AdminHandler struct {
	users   service.UserService
	courses service.CourseService
}

func NewAdminHandler(users service.UserService, courses service.CourseService) *AdminHandler {
	return &AdminHandler{users: users, courses: courses}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "AdminHandler.ListUsers")

	users, err := h.users.ListUsers(r.Context(), middleware.GetActorFromContext(r.Context()))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, toUserResponses(users), logger)
}

func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "AdminHandler.UpdateUserRole")

	userID, ok := uuidParam(w, r, logger, "userId")
	if !ok {
		return
	}
	var req model.UpdateRoleRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	user, err := h.users.UpdateRole(r.Context(), middleware.GetActorFromContext(r.Context()), userID, req.Role)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.NewUserResponse(user), logger)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "AdminHandler.DeleteUser")

	userID, ok := uuidParam(w, r, logger, "userId")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(r.Context(), middleware.GetActorFromContext(r.Context()), userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "AdminHandler.ListCourses")

	summaries, err := h.courses.ListCoursesForAdmin(r.Context(), middleware.GetActorFromContext(r.Context()))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summaries, logger)
}
