// helpers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_course_track/internal/config"
	"go_5_course_track/internal/handlers"
	"go_5_course_track/internal/model"
	servicemocks "go_5_course_track/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// httpRequestDetails はHTTPリクエストの送信に必要な情報をまとめます。
type httpRequestDetails struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// httpResponseExpectations はHTTPレスポンスの検証に必要な期待値をまとめます。
type httpResponseExpectations struct {
	ExpectedCode      int
	ExpectedErrorCode string
}

// testEnv はサービスをモックに差し替えたルーターを持つ
type testEnv struct {
	server *httptest.Server

	auth       *servicemocks.AuthService
	course     *servicemocks.CourseService
	lecture    *servicemocks.LectureService
	enrollment *servicemocks.EnrollmentService
	progress   *servicemocks.ProgressService
	comment    *servicemocks.CommentService
	user       *servicemocks.UserService
}

// newTestEnv は開発用ヘッダー認証 (X-User-ID / X-User-Role) で動くサーバーを起動する
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		auth:       servicemocks.NewAuthService(t),
		course:     servicemocks.NewCourseService(t),
		lecture:    servicemocks.NewLectureService(t),
		enrollment: servicemocks.NewEnrollmentService(t),
		progress:   servicemocks.NewProgressService(t),
		comment:    servicemocks.NewCommentService(t),
		user:       servicemocks.NewUserService(t),
	}

	cfg := &config.Config{}
	cfg.Auth.Enabled = false
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := handlers.NewRouter(cfg, logger, &handlers.Handlers{
		Auth:     handlers.NewAuthHandler(env.auth),
		Course:   handlers.NewCourseHandler(env.course),
		Lecture:  handlers.NewLectureHandler(env.lecture),
		Progress: handlers.NewProgressHandler(env.enrollment, env.progress),
		Comment:  handlers.NewCommentHandler(env.comment),
		Admin:    handlers.NewAdminHandler(env.user, env.course),
	})
	env.server = httptest.NewServer(router)
	t.Cleanup(env.server.Close)
	return env
}

// asHeaders は開発用認証ヘッダーを返す
func asHeaders(actor *model.Actor) map[string]string {
	return map[string]string{
		"X-User-ID":   actor.UserID.String(),
		"X-User-Role": string(actor.Role),
	}
}

func newActor(role model.Role) *model.Actor {
	return &model.Actor{UserID: uuid.New(), Role: role}
}

// actorMatcher はリクエストのヘッダーから組み立てられた Actor と一致するか判定する
func actorMatcher(actor *model.Actor) interface{} {
	return mock.MatchedBy(func(a *model.Actor) bool {
		return a != nil && a.UserID == actor.UserID && a.Role == actor.Role
	})
}

// sendRequest はHTTPリクエストを送信し、ステータスコードとボディを返します。
// ステータスコードとエラーコードのアサーションもここで行います。
func sendRequest(t *testing.T, server *httptest.Server, details httpRequestDetails, expectations httpResponseExpectations) (int, []byte) {
	t.Helper()

	var reqBodyReader io.Reader
	if details.Body != nil {
		if strPayload, ok := details.Body.(string); ok {
			reqBodyReader = strings.NewReader(strPayload)
		} else {
			reqBodyBytes, err := json.Marshal(details.Body)
			require.NoError(t, err, "Failed to marshal request body")
			reqBodyReader = bytes.NewBuffer(reqBodyBytes)
		}
	}

	req, err := http.NewRequest(details.Method, server.URL+details.Path, reqBodyReader)
	require.NoError(t, err, "Failed to create request")

	if reqBodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range details.Headers {
		req.Header.Set(key, value)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	defer resp.Body.Close()

	respBodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	assert.Equal(t, expectations.ExpectedCode, resp.StatusCode, "Status code mismatch: %s", string(respBodyBytes))

	if expectations.ExpectedErrorCode != "" {
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(respBodyBytes, &errResp), "Failed to unmarshal error response: %s", string(respBodyBytes))
		assert.Equal(t, expectations.ExpectedErrorCode, errResp.Error.Code)
	}

	return resp.StatusCode, respBodyBytes
}
