//go:generate mockery --name UserService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_course_track/internal/middleware"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService は管理者向けのユーザー管理
type UserService interface {
	ListUsers(ctx context.Context, actor *model.Actor) ([]*model.User, error)
	UpdateRole(ctx context.Context, actor *model.Actor, userID uuid.UUID, role model.Role) (*model.User, error)
	DeleteUser(ctx context.Context, actor *model.Actor, userID uuid.UUID) error
}

type userService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	guard    AccessGuard
}

func NewUserService(db *gorm.DB, userRepo repository.UserRepository, guard AccessGuard) UserService {
	return &userService{db: db, userRepo: userRepo, guard: guard}
}

func (s *userService) ListUsers(ctx context.Context, actor *model.Actor) ([]*model.User, error) {
	if err := s.guard.Authorize(actor, model.ActionAdminOverride, nil); err != nil {
		return nil, err
	}
	users, err := s.userRepo.List(ctx, s.db)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return users, nil
}

func (s *userService) UpdateRole(ctx context.Context, actor *model.Actor, userID uuid.UUID, role model.Role) (*model.User, error) {
	logger := middleware.GetLogger(ctx).With("target_user_id", userID.String())

	if err := s.guard.Authorize(actor, model.ActionAdminOverride, nil); err != nil {
		logger.Warn("UpdateRole not authorized", "error", err)
		return nil, err
	}
	if !role.Valid() {
		return nil, model.NewAppError("INVALID_ROLE", "ロールが不正です。", "role", model.ErrInvalidInput)
	}

	if err := s.userRepo.UpdateRole(ctx, s.db, userID, role); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ロールの更新に失敗しました。", "", err)
	}

	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	logger.Info("User role updated", "role", role)
	return user, nil
}

// DeleteUser は自分自身を削除できない
func (s *userService) DeleteUser(ctx context.Context, actor *model.Actor, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("target_user_id", userID.String())

	if err := s.guard.Authorize(actor, model.ActionAdminOverride, nil); err != nil {
		logger.Warn("DeleteUser not authorized", "error", err)
		return err
	}
	if actor.UserID == userID {
		return model.NewAppError("CANNOT_DELETE_SELF", "自分自身は削除できません。", "", model.ErrInvalidInput)
	}

	if err := s.userRepo.Delete(ctx, s.db, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの削除に失敗しました。", "", err)
	}

	logger.Info("User deleted")
	return nil
}
