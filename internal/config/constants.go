// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "CourseTrack"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultAppFrontendURL     = "http://localhost:5173"
	DefaultProgressMaxRetries = 5
	DefaultAuthEnabled        = true
	DefaultAccessTokenTTL     = time.Hour
	DefaultMailerType         = "log"
)

// CORS のデフォルト (フロントエンド開発サーバー)
var (
	DefaultCORSAllowedOrigins = []string{"http://localhost:5173"}
	DefaultCORSAllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	DefaultCORSAllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-User-ID", "X-User-Role"}
)
