package handlers

import (
	"net/http"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/service"
	"go_5_course_track/internal/webutil"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(s service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CommentHandler.PostComment")

	lectureID, ok := uuidParam(w, r, logger, "lectureId")
	if !ok {
		return
	}
	var req model.PostCommentRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	comment, err := h.service.PostComment(r.Context(), middleware.GetActorFromContext(r.Context()), lectureID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, comment, logger)
}

// ListComments は新しい順
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With("handler", "CommentHandler.ListComments")

	lectureID, ok := uuidParam(w, r, logger, "lectureId")
	if !ok {
		return
	}

	comments, err := h.service.ListComments(r.Context(), lectureID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, comments, logger)
}
