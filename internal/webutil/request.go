package webutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go_5_course_track/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします
// 未知のフィールドはエラーにする
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return nil
}
