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

func TestLectureHandler(t *testing.T) {
	instructor := newActor(model.RoleInstructor)
	student := newActor(model.RoleStudent)
	courseID, lectureID := uuid.New(), uuid.New()

	t.Run("講義一覧はログイン不要", func(t *testing.T) {
		env := newTestEnv(t)
		env.lecture.On("ListLectures", mock.Anything, courseID).
			Return([]model.LectureSummary{{LectureID: lectureID, Position: 1, Title: "導入"}}, nil).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/courses/" + courseID.String() + "/lectures"},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
	})

	t.Run("講義追加", func(t *testing.T) {
		env := newTestEnv(t)
		env.lecture.On("AddLecture", mock.Anything, actorMatcher(instructor), courseID, mock.MatchedBy(func(req *model.AddLectureRequest) bool {
			return req.Title == "導入" && req.MediaURL == "https://media.example.com/1.mp4"
		})).Return(&model.Lecture{LectureID: lectureID, CourseID: courseID, Position: 1, Title: "導入"}, nil).Once()

		sendRequest(t, env.server,
			httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/v1/courses/" + courseID.String() + "/lectures",
				Body:    map[string]string{"title": "導入", "media_url": "https://media.example.com/1.mp4"},
				Headers: asHeaders(instructor),
			},
			httpResponseExpectations{ExpectedCode: http.StatusCreated})
	})

	t.Run("media_url は URL 必須", func(t *testing.T) {
		env := newTestEnv(t)
		sendRequest(t, env.server,
			httpRequestDetails{
				Method:  http.MethodPost,
				Path:    "/api/v1/courses/" + courseID.String() + "/lectures",
				Body:    map[string]string{"title": "導入", "media_url": "not a url"},
				Headers: asHeaders(instructor),
			},
			httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"})
	})

	t.Run("未登録の受講者は講義内容を見られない", func(t *testing.T) {
		env := newTestEnv(t)
		env.lecture.On("GetLecture", mock.Anything, actorMatcher(student), courseID, lectureID).
			Return(nil, model.NewAppError("NOT_ENROLLED", "このコースに登録されていません。", "", model.ErrNotEnrolled)).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/courses/" + courseID.String() + "/lectures/" + lectureID.String(), Headers: asHeaders(student)},
			httpResponseExpectations{ExpectedCode: http.StatusForbidden, ExpectedErrorCode: "NOT_ENROLLED"})
	})

	t.Run("講義削除は204", func(t *testing.T) {
		env := newTestEnv(t)
		env.lecture.On("DeleteLecture", mock.Anything, actorMatcher(instructor), courseID, lectureID).Return(nil).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/courses/" + courseID.String() + "/lectures/" + lectureID.String(), Headers: asHeaders(instructor)},
			httpResponseExpectations{ExpectedCode: http.StatusNoContent})
	})
}

func TestCommentHandler(t *testing.T) {
	student := newActor(model.RoleStudent)
	lectureID := uuid.New()
	path := "/api/v1/lectures/" + lectureID.String() + "/comments"

	t.Run("投稿", func(t *testing.T) {
		env := newTestEnv(t)
		env.comment.On("PostComment", mock.Anything, actorMatcher(student), lectureID, mock.MatchedBy(func(req *model.PostCommentRequest) bool {
			return req.Text == "質問です"
		})).Return(&model.Comment{CommentID: uuid.New(), LectureID: lectureID, UserID: student.UserID, Text: "質問です"}, nil).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodPost, Path: path, Body: map[string]string{"text": "質問です"}, Headers: asHeaders(student)},
			httpResponseExpectations{ExpectedCode: http.StatusCreated})
	})

	t.Run("空のコメントは400", func(t *testing.T) {
		env := newTestEnv(t)
		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodPost, Path: path, Body: map[string]string{"text": ""}, Headers: asHeaders(student)},
			httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"})
	})

	t.Run("一覧", func(t *testing.T) {
		env := newTestEnv(t)
		env.comment.On("ListComments", mock.Anything, lectureID).Return([]*model.Comment{
			{CommentID: uuid.New(), Text: "二番目"},
			{CommentID: uuid.New(), Text: "最初"},
		}, nil).Once()

		_, body := sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodGet, Path: path, Headers: asHeaders(student)},
			httpResponseExpectations{ExpectedCode: http.StatusOK})

		var res []model.Comment
		require.NoError(t, json.Unmarshal(body, &res))
		require.Len(t, res, 2)
		assert.Equal(t, "二番目", res[0].Text)
	})
}

func TestAdminHandler(t *testing.T) {
	admin := newActor(model.RoleAdmin)
	target := uuid.New()

	t.Run("ロール変更", func(t *testing.T) {
		env := newTestEnv(t)
		env.user.On("UpdateRole", mock.Anything, actorMatcher(admin), target, model.RoleInstructor).
			Return(&model.User{UserID: target, Role: model.RoleInstructor}, nil).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/admin/users/" + target.String(), Body: map[string]string{"role": "instructor"}, Headers: asHeaders(admin)},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
	})

	t.Run("存在しないロールは400", func(t *testing.T) {
		env := newTestEnv(t)
		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodPut, Path: "/api/v1/admin/users/" + target.String(), Body: map[string]string{"role": "owner"}, Headers: asHeaders(admin)},
			httpResponseExpectations{ExpectedCode: http.StatusBadRequest, ExpectedErrorCode: "VALIDATION_ERROR"})
	})

	t.Run("管理者以外は403", func(t *testing.T) {
		env := newTestEnv(t)
		env.user.On("ListUsers", mock.Anything, mock.Anything).
			Return(nil, model.NewAppError("FORBIDDEN", "この操作を行う権限がありません。", "", model.ErrForbidden)).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/admin/users", Headers: asHeaders(newActor(model.RoleInstructor))},
			httpResponseExpectations{ExpectedCode: http.StatusForbidden, ExpectedErrorCode: "FORBIDDEN"})
	})

	t.Run("コース一覧は登録者数付き", func(t *testing.T) {
		env := newTestEnv(t)
		env.course.On("ListCoursesForAdmin", mock.Anything, actorMatcher(admin)).Return([]*model.CourseSummary{
			{Course: model.Course{CourseID: uuid.New(), Title: "Go入門"}, EnrolledCount: 3},
		}, nil).Once()

		_, body := sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodGet, Path: "/api/v1/admin/courses", Headers: asHeaders(admin)},
			httpResponseExpectations{ExpectedCode: http.StatusOK})
		assert.Contains(t, string(body), `"enrolled_count":3`)
	})

	t.Run("ユーザー削除は204", func(t *testing.T) {
		env := newTestEnv(t)
		env.user.On("DeleteUser", mock.Anything, actorMatcher(admin), target).Return(nil).Once()

		sendRequest(t, env.server,
			httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/admin/users/" + target.String(), Headers: asHeaders(admin)},
			httpResponseExpectations{ExpectedCode: http.StatusNoContent})
	})
}
