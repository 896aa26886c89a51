package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go_5_course_track/internal/config"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTAuthMiddleware は Authorization ヘッダーの Bearer トークンを検証し、
// sub / role クレームから Actor を組み立ててコンテキストにセットする
func JWTAuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				appErr := model.NewAppError("UNAUTHENTICATED", "Authorizationヘッダーが必要です。", "", model.ErrUnauthenticated)
				webutil.HandleError(w, logger, appErr)
				return
			}

			// "Bearer {token}" の形式を検証
			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				appErr := model.NewAppError("UNAUTHENTICATED", "Authorizationヘッダーの形式が正しくありません。", "", model.ErrUnauthenticated)
				webutil.HandleError(w, logger, appErr)
				return
			}

			claims := &model.JWTCustomClaims{}
			token, err := jwt.ParseWithClaims(headerParts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWT.SecretKey), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンが無効です。", "", model.ErrUnauthenticated)
				webutil.HandleError(w, logger, appErr)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", claims.Subject, "error", err)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンのユーザー情報が不正です。", "", model.ErrUnauthenticated)
				webutil.HandleError(w, logger, appErr)
				return
			}
			if !claims.Role.Valid() {
				logger.Warn("JWT auth failed: Invalid role claim", "role", claims.Role)
				appErr := model.NewAppError("INVALID_TOKEN", "トークンのロール情報が不正です。", "", model.ErrUnauthenticated)
				webutil.HandleError(w, logger, appErr)
				return
			}

			actor := &model.Actor{UserID: userID, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// WithActor はコンテキストに Actor をセットする
func WithActor(ctx context.Context, actor *model.Actor) context.Context {
	ctx = context.WithValue(ctx, model.ActorKey, actor)
	// 以降のログにユーザー情報を含める
	logger := GetLogger(ctx).With("user_id", actor.UserID.String(), "role", string(actor.Role))
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetActorFromContext は認証済みの Actor を返す。未認証なら nil
func GetActorFromContext(ctx context.Context) *model.Actor {
	actor, ok := ctx.Value(model.ActorKey).(*model.Actor)
	if !ok {
		return nil
	}
	return actor
}
