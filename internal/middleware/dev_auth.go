// internal/middleware/dev_auth.go
package middleware

import (
	"net/http"

	"go_5_course_track/internal/model"
	"go_5_course_track/internal/webutil"

	"github.com/google/uuid"
)

// DevActorContextMiddleware は開発時用ミドルウェアです。
// X-User-ID / X-User-Role ヘッダーから Actor を組み立ててコンテキストに設定します。
// ユーザーの存在チェックは行いません。
func DevActorContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			logger.Warn("[DEV AUTH] Failed: X-User-ID header missing")
			appErr := model.NewAppError("UNAUTHENTICATED", "[DEV] X-User-IDヘッダーが必要です。", "", model.ErrUnauthenticated)
			webutil.HandleError(w, logger, appErr)
			return
		}

		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-ID format", "user_id", userIDStr)
			appErr := model.NewAppError("UNAUTHENTICATED", "[DEV] X-User-IDの形式が正しくありません。", "", model.ErrUnauthenticated)
			webutil.HandleError(w, logger, appErr)
			return
		}

		role := model.Role(r.Header.Get("X-User-Role"))
		if role == "" {
			role = model.RoleStudent
		}
		if !role.Valid() {
			logger.Warn("[DEV AUTH] Failed: Invalid X-User-Role", "role", role)
			appErr := model.NewAppError("UNAUTHENTICATED", "[DEV] X-User-Roleが正しくありません。", "", model.ErrUnauthenticated)
			webutil.HandleError(w, logger, appErr)
			return
		}

		logger.Debug("[DEV AUTH] Actor set to context (no validation)", "user_id", userID, "role", role)
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), &model.Actor{UserID: userID, Role: role})))
	})
}
