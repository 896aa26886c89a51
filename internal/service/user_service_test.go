package service

import (
	"context"
	"testing"

	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := NewUserService(db, repository.NewGormUserRepository(), NewAccessGuard())

	admin := seedUser(t, db, model.RoleAdmin)
	student := seedUser(t, db, model.RoleStudent)

	_, err := svc.ListUsers(ctx, actorOf(student))
	assert.ErrorIs(t, err, model.ErrForbidden)

	users, err := svc.ListUsers(ctx, actorOf(admin))
	require.NoError(t, err)
	assert.Len(t, users, 2)

	updated, err := svc.UpdateRole(ctx, actorOf(admin), student.UserID, model.RoleInstructor)
	require.NoError(t, err)
	assert.Equal(t, model.RoleInstructor, updated.Role)

	_, err = svc.UpdateRole(ctx, actorOf(admin), student.UserID, model.Role("owner"))
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = svc.UpdateRole(ctx, actorOf(admin), uuid.New(), model.RoleStudent)
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, actorOf(admin), admin.UserID), model.ErrInvalidInput)
	require.NoError(t, svc.DeleteUser(ctx, actorOf(admin), student.UserID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, actorOf(admin), student.UserID), model.ErrNotFound)

	users, err = svc.ListUsers(ctx, actorOf(admin))
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
