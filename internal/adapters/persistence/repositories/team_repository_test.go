package repositories

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"systemgp/internal/core/domain"
)

func TestTeamRepository_Create(t *testing.T) {
	db := openTestDB(t)
	repo := NewTeamRepository(db, zerolog.Nop())
	users := NewUserRepository(db, zerolog.Nop())
	projects := NewProjectRepository(db, zerolog.Nop())
	ctx := context.Background()

	t.Run("Should persist the team with member and project associations", func(t *testing.T) {
		u1 := seedUser(t, users, "m1", domain.RoleCollaborator)
		u2 := seedUser(t, users, "m2", domain.RoleCollaborator)
		p1 := seedProject(t, projects, "Assigned")

		team := &domain.Team{
			Name:        "Core",
			Description: "core team",
			Members:     []domain.User{*u2, *u1}, // input order must not matter
			Projects:    []domain.Project{*p1},
		}
		require.NoError(t, repo.Create(ctx, team))
		assert.Positive(t, team.ID)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)

		got := all[0]
		assert.Equal(t, "Core", got.Name)

		memberIDs := map[uint]bool{}
		for _, m := range got.Members {
			memberIDs[m.ID] = true
		}
		assert.Equal(t, map[uint]bool{u1.ID: true, u2.ID: true}, memberIDs)

		require.Len(t, got.Projects, 1)
		assert.Equal(t, p1.ID, got.Projects[0].ID)
		// the reverse association is not re-resolved
		assert.Empty(t, got.Projects[0].Teams)
	})

	t.Run("Should roll back the team row when an association insert fails", func(t *testing.T) {
		u := seedUser(t, users, "m3", domain.RoleCollaborator)

		before, err := repo.Count(ctx)
		require.NoError(t, err)

		// duplicate member rows violate the composite primary key
		team := &domain.Team{
			Name:    "Broken",
			Members: []domain.User{*u, *u},
		}
		err = repo.Create(ctx, team)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrConstraintViolation)
		assert.Zero(t, team.ID)

		after, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after, "failed create must not leave a team row behind")
	})
}

func TestTeamRepository_SelectionLists(t *testing.T) {
	db := openTestDB(t)
	repo := NewTeamRepository(db, zerolog.Nop())
	users := NewUserRepository(db, zerolog.Nop())
	projects := NewProjectRepository(db, zerolog.Nop())
	ctx := context.Background()

	seedUser(t, users, "pick1", domain.RoleManager)
	seedUser(t, users, "pick2", domain.RoleCollaborator)
	seedProject(t, projects, "Pickable")

	t.Run("Should list every user", func(t *testing.T) {
		got, err := repo.AllUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, domain.RoleManager, got[0].Role)
	})

	t.Run("Should list every project with an empty team list", func(t *testing.T) {
		got, err := repo.AllProjects(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NotNil(t, got[0].Teams)
		assert.Empty(t, got[0].Teams)
	})
}

func TestTeamRepository_Count(t *testing.T) {
	db := openTestDB(t)
	repo := NewTeamRepository(db, zerolog.Nop())
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, &domain.Team{Name: "Solo"}))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
