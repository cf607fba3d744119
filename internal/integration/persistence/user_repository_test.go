package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dapur-ledger/backend/internal/domain/entity"
	"github.com/dapur-ledger/backend/internal/integration/persistence/model"
)

func openUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	// One connection keeps the in-memory store alive for the whole test.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("failed to migrate users table: %v", err)
	}
	return db
}

func TestInsertPersistsInactiveFlag(t *testing.T) {
	repo := NewUserRepository(openUserTestDB(t))
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "lina",
		PasswordHash: "hash",
		Role:         entity.RoleUser,
		Active:       false,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Active {
		t.Error("expected user to stay inactive after insert, got active")
	}
}

func TestLastLoginRoundTrips(t *testing.T) {
	repo := NewUserRepository(openUserTestDB(t))
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "aisha",
		PasswordHash: "hash",
		Role:         entity.RoleAdministrator,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := repo.Insert(ctx, user); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	lastLogin := time.Date(2026, time.August, 30, 9, 15, 0, 0, time.UTC)
	user.LastLogin = &lastLogin
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID after login failed: %v", err)
	}
	if got.LastLogin == nil {
		t.Fatal("expected last login to be set")
	}
	if got.LastLogin.Unix() != lastLogin.Unix() {
		t.Errorf("expected last login %v, got %v", lastLogin, got.LastLogin)
	}

	users, err := repo.SelectAll(ctx, "username ASC")
	if err != nil {
		t.Fatalf("SelectAll after login failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].LastLogin == nil {
		t.Error("expected last login to survive listing")
	}
}
