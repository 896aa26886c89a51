package handlers

import (
	"log/slog"
	"net/http"

	"go_5_course_track/internal/model"
	"go_5_course_track/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// decodeAndValidate はボディのデコードとバリデーションを行い、失敗時はレスポンスを書いて false を返す
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dst interface{}) bool {
	if err := webutil.DecodeJSONBody(r, dst); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return false
	}
	if err := webutil.ValidateStruct(dst); err != nil {
		logger.Warn("Validation failed", "error", err)
		webutil.HandleError(w, logger, err)
		return false
	}
	return true
}

// uuidParam は URL パラメータを UUID として読む
func uuidParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid UUID in path", "param", name, "value", raw)
		appErr := model.NewAppError("INVALID_PATH_PARAM", "パスパラメータの形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
