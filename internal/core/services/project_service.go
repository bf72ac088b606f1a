package services

import (
	"context"
	"fmt"

	"systemgp/internal/adapters/persistence/models"
	"systemgp/internal/adapters/persistence/repositories"
	"systemgp/internal/core/domain"
)

// ProjectService handles project management on behalf of the
// presentation layer.
type ProjectService struct {
	projects repositories.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(projects repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// ProjectInput carries the validated form fields for a project. Dates
// are ISO-8601 strings; empty means unset.
type ProjectInput struct {
	Name           string `validate:"required"`
	Description    string
	StartDate      string
	PlannedEndDate string
	Status         domain.ProjectStatus
}

func (in *ProjectInput) check() error {
	if err := checkInput(*in); err != nil {
		return err
	}
	// surface bad dates before touching the store
	start, err := models.ParseDate(in.StartDate)
	if err != nil {
		return err
	}
	end, err := models.ParseDate(in.PlannedEndDate)
	if err != nil {
		return err
	}
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("%w: planned end date precedes start date", domain.ErrInvalidInput)
	}
	return nil
}

func (in *ProjectInput) toDomain() domain.Project {
	return domain.Project{
		Name:           in.Name,
		Description:    in.Description,
		StartDate:      in.StartDate,
		PlannedEndDate: in.PlannedEndDate,
		Status:         in.Status,
		Teams:          []domain.Team{},
	}
}

// Create persists a new project managed by the given user. The add
// screen requires a manager.
func (s *ProjectService) Create(ctx context.Context, input ProjectInput, managerID uint) (*domain.Project, error) {
	if err := input.check(); err != nil {
		return nil, err
	}
	project := input.toDomain()
	if err := s.projects.CreateWithManager(ctx, &project, managerID); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateUnmanaged persists a new project with no manager
func (s *ProjectService) CreateUnmanaged(ctx context.Context, input ProjectInput) (*domain.Project, error) {
	if err := input.check(); err != nil {
		return nil, err
	}
	project := input.toDomain()
	if err := s.projects.Create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns every project with manager names and shallow team
// associations resolved.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.FindAll(ctx)
}

// Get returns the project with the given id
func (s *ProjectService) Get(ctx context.Context, id uint) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

// Update overwrites the project's fields. The manager id is explicit:
// nil clears the association, it is never dropped implicitly.
func (s *ProjectService) Update(ctx context.Context, id uint, input ProjectInput, managerID *uint) (*domain.Project, error) {
	if err := input.check(); err != nil {
		return nil, err
	}
	project := input.toDomain()
	project.ID = id
	if err := s.projects.Update(ctx, &project, managerID); err != nil {
		return nil, err
	}
	return s.projects.FindByID(ctx, id)
}

// Delete removes the project with the given id
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return s.projects.Delete(ctx, &domain.Project{ID: id})
}

// Count returns the total number of projects
func (s *ProjectService) Count(ctx context.Context) (int64, error) {
	return s.projects.Count(ctx)
}
