package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"go_5_course_track/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCourseHandler_CreateCourse(t *testing.T) {
	instructor := newActor(model.RoleInstructor)

	testCases := []struct {
		name      string
		body      interface{}
		setupMock func(env *testEnv)
		wantCode  int
		wantErr   string
	}{
		{
			name: "正常系: 作成成功",
			body: map[string]interface{}{"title": "Go入門", "description": "基礎"},
			setupMock: func(env *testEnv) {
				env.course.On("CreateCourse", mock.Anything, actorMatcher(instructor), mock.MatchedBy(func(req *model.CreateCourseRequest) bool {
					return req.Title == "Go入門" && req.Description == "基礎"
				})).Return(&model.Course{CourseID: uuid.New(), Title: "Go入門", InstructorID: instructor.UserID}, nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "異常系: タイトル無し",
			body:      map[string]interface{}{"description": "基礎"},
			setupMock: func(env *testEnv) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   "VALIDATION_ERROR",
		},
		{
			name:      "異常系: 未知のフィールド",
			body:      map[string]interface{}{"title": "Go入門", "price": 100},
			setupMock: func(env *testEnv) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   "INVALID_REQUEST_BODY",
		},
		{
			name:      "異常系: 壊れたJSON",
			body:      `{"title":`,
			setupMock: func(env *testEnv) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   "INVALID_REQUEST_BODY",
		},
		{
			name: "異常系: 受講者は作成できない",
			body: map[string]interface{}{"title": "Go入門"},
			setupMock: func(env *testEnv) {
				env.course.On("CreateCourse", mock.Anything, mock.Anything, mock.Anything).
					Return(nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", model.ErrForbidden)).Once()
			},
			wantCode: http.StatusForbidden,
			wantErr:  "FORBIDDEN",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			tc.setupMock(env)

			sendRequest(t, env.server,
				httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/courses", Body: tc.body, Headers: asHeaders(instructor)},
				httpResponseExpectations{ExpectedCode: tc.wantCode, ExpectedErrorCode: tc.wantErr})
		})
	}
}

func TestCourseHandler_GetCourseIsPublicAndHidesMedia(t *testing.T) {
	courseID := uuid.New()
	env := newTestEnv(t)
	env.course.On("GetCourse", mock.Anything, courseID).Return(&model.Course{
		CourseID: courseID,
		Title:    "Go入門",
		Lectures: []model.Lecture{
			{LectureID: uuid.New(), Position: 1, Title: "導入", MediaURL: "https://media.example.com/secret.mp4"},
		},
	}, nil).Once()

	// 認証ヘッダー無しで取得できる
	_, body := sendRequest(t, env.server,
		httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/courses/" + courseID.String()},
		httpResponseExpectations{ExpectedCode: http.StatusOK})

	assert.NotContains(t, string(body), "secret.mp4")
	var res model.CourseDetail
	require.NoError(t, json.Unmarshal(body, &res))
	require.Len(t, res.Lectures, 1)
	assert.Equal(t, "導入", res.Lectures[0].Title)
}

func TestCourseHandler_UpdateAndDelete(t *testing.T) {
	instructor := newActor(model.RoleInstructor)
	courseID := uuid.New()

	t.Run("部分更新", func(t *testing.T) {
		env := newTestEnv(t)
		env.course.On("UpdateCourse", mock.Anything, actorMatcher(instructor), courseID, mock.MatchedBy(func(req *model.UpdateCourseRequest) bool {
			return req.Title != nil && *req.Title == "新タイトル" && req.Description == nil
		})).Return(&model.Course{CourseID: courseID, Title: "新タイトル"}, nil).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/courses/" + courseID.String(), Body: map[string]string{"title": "新タイトル"}, Headers: asHeaders(instructor)},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
	})

	t.Run("削除は204", func(t *testing.T) {
		env := newTestEnv(t)
		env.course.On("DeleteCourse", mock.Anything, actorMatcher(instructor), courseID).Return(nil).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/courses/" + courseID.String(), Headers: asHeaders(instructor)},
			httpResponseExpectations{ExpectedCode: http.StatusNoContent})
	})

	t.Run("削除は認証が必要", func(t *testing.T) {
		env := newTestEnv(t)
		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/courses/" + courseID.String()},
			httpResponseExpectations{ExpectedCode: http.StatusUnauthorized, ExpectedErrorCode: "UNAUTHENTICATED"})
	})
}

func TestCourseHandler_ListStudentsHidesPasswordHash(t *testing.T) {
	instructor := newActor(model.RoleInstructor)
	courseID := uuid.New()
	env := newTestEnv(t)
	env.course.On("ListStudents", mock.Anything, actorMatcher(instructor), courseID).Return([]*model.User{
		{UserID: uuid.New(), Name: "花子", Email: "hanako@example.com", PasswordHash: "$2a$10$hash", Role: model.RoleStudent},
	}, nil).Once()

	_, body := sendRequest(t, env.server,
		httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/courses/" + courseID.String() + "/students", Headers: asHeaders(instructor)},
		httpResponseExpectations{ExpectedCode: http.StatusOK})

	assert.NotContains(t, string(body), "$2a$10$hash")
	assert.Contains(t, string(body), "hanako@example.com")
}
