package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ContextKey string

const (
	ActorKey ContextKey = "actor"
)

// Actor はリクエストを行った認証済みユーザー
type Actor struct {
	UserID uuid.UUID
	Role   Role
}

// LoginRequest はログインAPIのリクエストボディ
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse はログイン成功時のレスポンス
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// JWTCustomClaims はJWTに含めるカスタムクレーム
type JWTCustomClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
