// cmd/migrate/main.go
// テーブルを作成・更新して終了する。-admin-email を指定すると管理者アカウントも作る
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"go_5_course_track/internal/config"
	"go_5_course_track/internal/model"
	"go_5_course_track/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	adminEmail := flag.String("admin-email", "", "作成する管理者のメールアドレス")
	adminPassword := flag.String("admin-password", "", "作成する管理者のパスワード")
	adminName := flag.String("admin-name", "Administrator", "作成する管理者の名前")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Migration completed")

	if *adminEmail == "" {
		return
	}
	if err := seedAdmin(context.Background(), db, *adminName, *adminEmail, *adminPassword); err != nil {
		slog.Error("Admin seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// seedAdmin は同じメールアドレスのユーザーが無ければ管理者を作る
func seedAdmin(ctx context.Context, db *gorm.DB, name, email, password string) error {
	if len(password) < 8 {
		return errors.New("admin password must be at least 8 characters")
	}
	users := repository.NewGormUserRepository()

	if _, err := users.FindByEmail(ctx, db, email); err == nil {
		slog.Info("Admin already exists, skipping", slog.String("email", email))
		return nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		UserID:       uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, db, admin); err != nil {
		return err
	}
	slog.Info("Admin created", slog.String("email", email), slog.String("user_id", admin.UserID.String()))
	return nil
}
