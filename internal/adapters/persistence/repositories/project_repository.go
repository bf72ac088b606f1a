package repositories

import (
	"context"
	"fmt"
	"time"

	"systemgp/internal/adapters/persistence/models"
	"systemgp/internal/core/domain"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// projectRepository implements ProjectRepository on top of gorm
type projectRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB, log zerolog.Logger) ProjectRepository {
	return &projectRepository{db: db, log: log}
}

// projectRow is the shape of a project read joined with its manager's
// display name.
type projectRow struct {
	ID              uint
	Name            string
	Description     string
	StartDate       *time.Time
	ExpectedEndDate *time.Time
	Status          string
	ManagerName     *string
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&total).Error; err != nil {
		return 0, repoErr(r.log, "count projects", err)
	}
	return total, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.insert(ctx, project, nil)
}

func (r *projectRepository) CreateWithManager(ctx context.Context, project *domain.Project, managerID uint) error {
	return r.insert(ctx, project, &managerID)
}

// insert writes a new project row. The status defaults to PLANNED when
// the project carries none; the generated id is written back.
func (r *projectRepository) insert(ctx context.Context, project *domain.Project, managerID *uint) error {
	start, err := models.ParseDate(project.StartDate)
	if err != nil {
		return wrap("create project", err)
	}
	end, err := models.ParseDate(project.PlannedEndDate)
	if err != nil {
		return wrap("create project", err)
	}

	status := project.Status
	if !status.IsValid() {
		status = domain.StatusPlanned
	}

	row := models.Project{
		Name:            project.Name,
		Description:     project.Description,
		StartDate:       start,
		ExpectedEndDate: end,
		Status:          string(status),
		ManagerID:       managerID,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return repoErr(r.log, "create project", err)
	}

	project.ID = row.ID
	project.Status = status
	if project.Teams == nil {
		project.Teams = []domain.Team{}
	}
	return nil
}

func (r *projectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	var rows []projectRow
	err := r.db.WithContext(ctx).
		Table("projects").
		Select("projects.id, projects.name, projects.description, projects.start_date, projects.expected_end_date, projects.status, users.full_name AS manager_name").
		Joins("LEFT JOIN users ON users.id = projects.manager_id").
		Scan(&rows).Error
	if err != nil {
		return nil, repoErr(r.log, "find all projects", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		project, err := r.toDomain(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		projects = append(projects, *project)
	}
	return projects, nil
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*domain.Project, error) {
	var rows []projectRow
	err := r.db.WithContext(ctx).
		Table("projects").
		Select("projects.id, projects.name, projects.description, projects.start_date, projects.expected_end_date, projects.status, users.full_name AS manager_name").
		Joins("LEFT JOIN users ON users.id = projects.manager_id").
		Where("projects.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, repoErr(r.log, "find project by id", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("find project by id: %w", domain.ErrNotFound)
	}
	return r.toDomain(ctx, &rows[0])
}

// Update overwrites the project's scalar fields on the row matching its
// id. The manager association is set from the explicit parameter; nil
// clears it.
func (r *projectRepository) Update(ctx context.Context, project *domain.Project, managerID *uint) error {
	start, err := models.ParseDate(project.StartDate)
	if err != nil {
		return wrap("update project", err)
	}
	end, err := models.ParseDate(project.PlannedEndDate)
	if err != nil {
		return wrap("update project", err)
	}

	status := project.Status
	if !status.IsValid() {
		status = domain.StatusPlanned
	}

	err = r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"name":              project.Name,
			"description":       project.Description,
			"start_date":        start,
			"expected_end_date": end,
			"status":            string(status),
			"manager_id":        managerID,
		}).Error
	if err != nil {
		return repoErr(r.log, "update project", err)
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, project *domain.Project) error {
	res := r.db.WithContext(ctx).Delete(&models.Project{}, project.ID)
	if res.Error != nil {
		return repoErr(r.log, "delete project", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete project: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *projectRepository) toDomain(ctx context.Context, row *projectRow) (*domain.Project, error) {
	status := domain.ParseStatus(row.Status)
	if status == domain.StatusUnknown && row.Status != "" {
		r.log.Warn().
			Uint("project_id", row.ID).
			Str("status", row.Status).
			Msg("unrecognized project status in store")
	}

	teams, err := r.teamsFor(ctx, row.ID)
	if err != nil {
		return nil, err
	}

	manager := ""
	if row.ManagerName != nil {
		manager = *row.ManagerName
	}

	return &domain.Project{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		StartDate:      models.DateString(row.StartDate),
		PlannedEndDate: models.DateString(row.ExpectedEndDate),
		Status:         status,
		Manager:        manager,
		Teams:          teams,
	}, nil
}

// teamsFor resolves the teams assigned to a project. Only id, name and
// description are loaded; member and project lists of those teams stay
// empty to bound the query fan-out.
func (r *projectRepository) teamsFor(ctx context.Context, projectID uint) ([]domain.Team, error) {
	var rows []models.Team
	err := r.db.WithContext(ctx).
		Table("teams").
		Select("teams.id, teams.name, teams.description").
		Joins("INNER JOIN project_teams pt ON pt.team_id = teams.id").
		Where("pt.project_id = ?", projectID).
		Scan(&rows).Error
	if err != nil {
		return nil, repoErr(r.log, "resolve project teams", err)
	}

	teams := make([]domain.Team, 0, len(rows))
	for i := range rows {
		teams = append(teams, domain.Team{
			ID:          rows[i].ID,
			Name:        rows[i].Name,
			Description: rows[i].Description,
			Members:     []domain.User{},
			Projects:    []domain.Project{},
		})
	}
	return teams, nil
}
