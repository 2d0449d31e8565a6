package services

import (
	"testing"

	"mublog/internal/config"
	"mublog/internal/db"
	"mublog/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 用内存 SQLite 替换全局 DB
func setupTestDB(t *testing.T) {
	t.Helper()
	config.Load()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// 内存库限制单连接，避免连接池拿到空库
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.PostLike{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb
}

func signupTestUser(t *testing.T, email, nickname, phone string) *models.User {
	t.Helper()
	result, err := NewAuthService().Signup(SignupInput{
		Email:       email,
		Password:    "Passw0rd!",
		Name:        "tester",
		Nickname:    nickname,
		PhoneNumber: phone,
	})
	if err != nil {
		t.Fatalf("signup failed for %s: %v", email, err)
	}
	return result.User
}

func dbCount(model interface{}, query string, arg interface{}, out *int64) error {
	return db.DB.Model(model).Where(query, arg).Count(out).Error
}

func assertServiceError(t *testing.T, err error, status int, message string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error (%d %s), got nil", status, message)
	}
	svcErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if svcErr.Status != status {
		t.Errorf("expected status %d, got %d", status, svcErr.Status)
	}
	if svcErr.Message != message {
		t.Errorf("expected message %q, got %q", message, svcErr.Message)
	}
}
