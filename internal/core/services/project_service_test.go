package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"systemgp/internal/core/domain"
)

func TestProjectService_Create(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProjectService(env.projects)
	ctx := context.Background()

	manager := env.saveUser(t, "pm", domain.RoleManager)

	t.Run("Should create a managed project with PLANNED default", func(t *testing.T) {
		project, err := svc.Create(ctx, ProjectInput{
			Name:        "Intranet",
			Description: "internal portal",
		}, manager.ID)
		require.NoError(t, err)
		assert.Positive(t, project.ID)
		assert.Equal(t, domain.StatusPlanned, project.Status)

		got, err := svc.Get(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, manager.Name, got.Manager)
	})

	t.Run("Should create an unmanaged project", func(t *testing.T) {
		project, err := svc.CreateUnmanaged(ctx, ProjectInput{Name: "Skunkworks"})
		require.NoError(t, err)

		got, err := svc.Get(ctx, project.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Manager)
	})

	t.Run("Should reject a missing name", func(t *testing.T) {
		_, err := svc.Create(ctx, ProjectInput{Description: "no name"}, manager.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Should reject an end date before the start date", func(t *testing.T) {
		_, err := svc.Create(ctx, ProjectInput{
			Name:           "Backwards",
			StartDate:      "2026-06-01",
			PlannedEndDate: "2026-01-01",
		}, manager.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Should reject a malformed date", func(t *testing.T) {
		_, err := svc.Create(ctx, ProjectInput{Name: "Bad", StartDate: "01/06/2026"}, manager.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestProjectService_Update(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProjectService(env.projects)
	ctx := context.Background()

	manager := env.saveUser(t, "boss", domain.RoleManager)
	project, err := svc.CreateUnmanaged(ctx, ProjectInput{Name: "Rewrite"})
	require.NoError(t, err)

	t.Run("Should overwrite fields and set the manager explicitly", func(t *testing.T) {
		got, err := svc.Update(ctx, project.ID, ProjectInput{
			Name:   "Rewrite v2",
			Status: domain.StatusInProgress,
		}, &manager.ID)
		require.NoError(t, err)
		assert.Equal(t, "Rewrite v2", got.Name)
		assert.Equal(t, domain.StatusInProgress, got.Status)
		assert.Equal(t, manager.Name, got.Manager)
	})

	t.Run("Should clear the manager only when asked", func(t *testing.T) {
		got, err := svc.Update(ctx, project.ID, ProjectInput{Name: "Rewrite v2"}, nil)
		require.NoError(t, err)
		assert.Empty(t, got.Manager)
	})
}

func TestProjectService_Delete(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProjectService(env.projects)
	ctx := context.Background()

	project, err := svc.CreateUnmanaged(ctx, ProjectInput{Name: "Doomed"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, project.ID))
	assert.ErrorIs(t, svc.Delete(ctx, project.ID), domain.ErrNotFound)
}
