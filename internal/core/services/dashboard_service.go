package services

import (
	"context"

	"systemgp/internal/adapters/persistence/repositories"

	"github.com/rs/zerolog"
)

// Snapshot holds the entity totals shown on the dashboard
type Snapshot struct {
	Users    int64
	Projects int64
	Teams    int64
}

// DashboardService aggregates entity counts. Counts never fail at this
// boundary: an unreachable store logs an error and reports zero.
type DashboardService struct {
	users    repositories.UserRepository
	projects repositories.ProjectRepository
	teams    repositories.TeamRepository
	log      zerolog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	users repositories.UserRepository,
	projects repositories.ProjectRepository,
	teams repositories.TeamRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{users: users, projects: projects, teams: teams, log: log}
}

// Counts returns the current totals, degrading each to zero on store
// failure.
func (s *DashboardService) Counts(ctx context.Context) Snapshot {
	return Snapshot{
		Users:    s.count(ctx, "users", s.users.Count),
		Projects: s.count(ctx, "projects", s.projects.Count),
		Teams:    s.count(ctx, "teams", s.teams.Count),
	}
}

func (s *DashboardService) count(ctx context.Context, entity string, fn func(context.Context) (int64, error)) int64 {
	n, err := fn(ctx)
	if err != nil {
		s.log.Error().Err(err).Str("entity", entity).Msg("count unavailable")
		return 0
	}
	return n
}
