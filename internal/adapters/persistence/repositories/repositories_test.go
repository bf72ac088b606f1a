package repositories

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"systemgp/internal/adapters/persistence/models"
	"systemgp/internal/core/domain"
)

// openTestDB opens an isolated in-memory database with the full schema.
// Max open conns is pinned to 1 so every statement sees the same
// in-memory store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, repo UserRepository, login string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:     "User " + login,
		CPF:      "000.000.000-00",
		Email:    login + "@example.com",
		Role:     role,
		Login:    login,
		Password: "plaintext-" + login,
	}
	require.NoError(t, repo.Save(context.Background(), user))
	return user
}

func seedProject(t *testing.T, repo ProjectRepository, name string) *domain.Project {
	t.Helper()
	project := &domain.Project{
		Name:           name,
		Description:    "desc " + name,
		StartDate:      "2026-01-15",
		PlannedEndDate: "2026-06-30",
		Status:         domain.StatusInProgress,
	}
	require.NoError(t, repo.Create(context.Background(), project))
	return project
}
