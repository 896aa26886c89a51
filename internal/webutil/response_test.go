package webutil_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_course_track/internal/model"
	"go_5_course_track/internal/webutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMapErrorToStatusCode(t *testing.T) {
	testCases := []struct {
		err  error
		want int
	}{
		{model.ErrNotFound, http.StatusNotFound},
		{model.ErrInvalidInput, http.StatusBadRequest},
		{model.ErrInvalidReference, http.StatusUnprocessableEntity},
		{model.ErrAlreadyEnrolled, http.StatusConflict},
		{model.ErrConflict, http.StatusConflict},
		{model.ErrUnauthenticated, http.StatusUnauthorized},
		{model.ErrForbidden, http.StatusForbidden},
		{model.ErrNotEnrolled, http.StatusForbidden},
		{fmt.Errorf("wrapped: %w", model.ErrNotEnrolled), http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, webutil.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("AppError は詳細をそのまま返す", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webutil.HandleError(rec, discardLogger,
			model.NewAppError("INVALID_REFERENCE", "指定された講義はこのコースに含まれていません。", "lecture_id", model.ErrInvalidReference))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var res model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "INVALID_REFERENCE", res.Error.Code)
		assert.Equal(t, "lecture_id", res.Error.Field)
	})

	t.Run("想定外のエラーは500で中身を出さない", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webutil.HandleError(rec, nil, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")

		var res model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "INTERNAL_SERVER_ERROR", res.Error.Code)
	})
}

func TestValidateStruct(t *testing.T) {
	t.Run("日本語のメッセージとJSON名のフィールド", func(t *testing.T) {
		err := webutil.ValidateStruct(&model.AddLectureRequest{Title: "導入", MediaURL: "not a url"})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Detail.Code)
		assert.Equal(t, "media_url", appErr.Detail.Field)
		assert.Equal(t, "メディアURLは有効なURLではありません。", appErr.Detail.Message)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("正常", func(t *testing.T) {
		assert.NoError(t, webutil.ValidateStruct(&model.PostCommentRequest{Text: "質問です"}))
	})
}

func TestDecodeJSONBody(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"正常", `{"text":"質問です"}`, false},
		{"未知のフィールド", `{"text":"質問です","extra":1}`, true},
		{"壊れたJSON", `{"text":`, true},
		{"空ボディ", ``, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var body io.Reader = http.NoBody
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", body)

			var dst model.PostCommentRequest
			err := webutil.DecodeJSONBody(req, &dst)
			if tc.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "質問です", dst.Text)
		})
	}
}
