package services

import (
	"context"

	"systemgp/internal/adapters/persistence/repositories"
	"systemgp/internal/core/domain"
)

// TeamService handles team management on behalf of the presentation
// layer, including the selection lists the add screen needs.
type TeamService struct {
	teams repositories.TeamRepository
}

// NewTeamService creates a new team service
func NewTeamService(teams repositories.TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

// CreateTeamInput carries the validated form fields for a new team.
// Members and Projects are already-resolved entities picked from the
// selection lists.
type CreateTeamInput struct {
	Name        string `validate:"required"`
	Description string
	Members     []domain.User `validate:"min=1"`
	Projects    []domain.Project
}

// Create validates the input and persists the team with its
// associations. Duplicate selections collapse before the write.
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (*domain.Team, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	team := domain.Team{
		Name:        input.Name,
		Description: input.Description,
		Members:     []domain.User{},
		Projects:    []domain.Project{},
	}
	for _, member := range input.Members {
		team.AddMember(member)
	}
	for _, project := range input.Projects {
		team.Projects = append(team.Projects, project)
	}

	if err := s.teams.Create(ctx, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// List returns every team with full member and project lists
func (s *TeamService) List(ctx context.Context) ([]domain.Team, error) {
	return s.teams.FindAll(ctx)
}

// SelectableUsers returns every user, for member selection
func (s *TeamService) SelectableUsers(ctx context.Context) ([]domain.User, error) {
	return s.teams.AllUsers(ctx)
}

// SelectableProjects returns every project, for assignment selection
func (s *TeamService) SelectableProjects(ctx context.Context) ([]domain.Project, error) {
	return s.teams.AllProjects(ctx)
}

// Count returns the total number of teams
func (s *TeamService) Count(ctx context.Context) (int64, error) {
	return s.teams.Count(ctx)
}
