package service

import (
	"testing"

	"go_5_course_track/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAccessGuard_Authorize(t *testing.T) {
	guard := NewAccessGuard()

	owner := &model.Actor{UserID: uuid.New(), Role: model.RoleInstructor}
	otherInstructor := &model.Actor{UserID: uuid.New(), Role: model.RoleInstructor}
	student := &model.Actor{UserID: uuid.New(), Role: model.RoleStudent}
	admin := &model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}
	course := &model.Course{CourseID: uuid.New(), InstructorID: owner.UserID}

	tests := []struct {
		name    string
		actor   *model.Actor
		action  model.Action
		course  *model.Course
		wantErr error
	}{
		{"講師はコースを作成できる", owner, model.ActionCreateCourse, nil, nil},
		{"受講者はコースを作成できない", student, model.ActionCreateCourse, nil, model.ErrForbidden},
		{"管理者もコース作成は不可", admin, model.ActionCreateCourse, nil, model.ErrForbidden},

		{"所有者は更新できる", owner, model.ActionUpdateCourse, course, nil},
		{"所有者は削除できる", owner, model.ActionDeleteCourse, course, nil},
		{"所有者は講義を追加できる", owner, model.ActionAddLecture, course, nil},
		{"所有者は講義を削除できる", owner, model.ActionDeleteLecture, course, nil},
		{"他の講師は更新できない", otherInstructor, model.ActionUpdateCourse, course, model.ErrForbidden},
		{"他の講師は講義を追加できない", otherInstructor, model.ActionAddLecture, course, model.ErrForbidden},
		{"受講者は削除できない", student, model.ActionDeleteCourse, course, model.ErrForbidden},
		{"管理者でも所有者チェックは迂回しない", admin, model.ActionDeleteLecture, course, model.ErrForbidden},
		{"コース無しでは所有者判定できない", owner, model.ActionUpdateCourse, nil, model.ErrForbidden},

		{"受講者は登録できる", student, model.ActionEnroll, nil, nil},
		{"受講者は進捗を付けられる", student, model.ActionMarkProgress, nil, nil},
		{"受講者はコメントできる", student, model.ActionPostComment, nil, nil},
		{"講師は登録できない", owner, model.ActionEnroll, nil, model.ErrForbidden},
		{"管理者は進捗を付けられない", admin, model.ActionMarkProgress, nil, model.ErrForbidden},

		{"管理者は adminOverride", admin, model.ActionAdminOverride, nil, nil},
		{"講師は adminOverride 不可", owner, model.ActionAdminOverride, course, model.ErrForbidden},

		{"未ログインは Unauthenticated", nil, model.ActionEnroll, nil, model.ErrUnauthenticated},
		{"未知の action は拒否", admin, model.Action("unknown"), nil, model.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.Authorize(tt.actor, tt.action, tt.course)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthorizeOwnerOrAdmin(t *testing.T) {
	guard := NewAccessGuard()
	owner := &model.Actor{UserID: uuid.New(), Role: model.RoleInstructor}
	course := &model.Course{CourseID: uuid.New(), InstructorID: owner.UserID}

	assert.NoError(t, authorizeOwnerOrAdmin(guard, owner, course))
	assert.NoError(t, authorizeOwnerOrAdmin(guard, &model.Actor{UserID: uuid.New(), Role: model.RoleAdmin}, course))
	assert.ErrorIs(t, authorizeOwnerOrAdmin(guard, &model.Actor{UserID: uuid.New(), Role: model.RoleInstructor}, course), model.ErrForbidden)
	assert.ErrorIs(t, authorizeOwnerOrAdmin(guard, &model.Actor{UserID: uuid.New(), Role: model.RoleStudent}, course), model.ErrForbidden)
	assert.ErrorIs(t, authorizeOwnerOrAdmin(guard, nil, course), model.ErrUnauthenticated)
}
