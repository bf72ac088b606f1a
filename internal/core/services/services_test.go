package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"systemgp/internal/adapters/persistence/models"
	"systemgp/internal/adapters/persistence/repositories"
	"systemgp/internal/core/domain"
)

// testEnv wires the services against an in-memory database
type testEnv struct {
	db       *gorm.DB
	users    repositories.UserRepository
	projects repositories.ProjectRepository
	teams    repositories.TeamRepository
}

func newTestEnv(t *testing.T) *testEnv {
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

	log := zerolog.Nop()
	return &testEnv{
		db:       db,
		users:    repositories.NewUserRepository(db, log),
		projects: repositories.NewProjectRepository(db, log),
		teams:    repositories.NewTeamRepository(db, log),
	}
}

func (e *testEnv) saveUser(t *testing.T, login string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:     "User " + login,
		Email:    login + "@example.com",
		Role:     role,
		Login:    login,
		Password: "pw-" + login,
	}
	require.NoError(t, e.users.Save(context.Background(), user))
	return user
}
