package repositories

import (
	"context"

	"systemgp/internal/adapters/persistence/models"
	"systemgp/internal/core/domain"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// teamRepository implements TeamRepository on top of gorm
type teamRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB, log zerolog.Logger) TeamRepository {
	return &teamRepository{db: db, log: log}
}

func (r *teamRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Team{}).Count(&total).Error; err != nil {
		return 0, repoErr(r.log, "count teams", err)
	}
	return total, nil
}

func (r *teamRepository) AllUsers(ctx context.Context) ([]domain.User, error) {
	var rows []models.User
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, repoErr(r.log, "list users for selection", err)
	}
	return r.usersToDomain(rows), nil
}

// AllProjects returns every project for assignment selection lists. The
// returned projects carry an empty team list; no associations are
// resolved here.
func (r *teamRepository) AllProjects(ctx context.Context) ([]domain.Project, error) {
	var rows []models.Project
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, repoErr(r.log, "list projects for selection", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].ToDomain())
	}
	return projects, nil
}

func (r *teamRepository) FindAll(ctx context.Context) ([]domain.Team, error) {
	var rows []models.Team
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, repoErr(r.log, "find all teams", err)
	}

	teams := make([]domain.Team, 0, len(rows))
	for i := range rows {
		members, err := r.membersOf(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		projects, err := r.projectsOf(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		teams = append(teams, domain.Team{
			ID:          rows[i].ID,
			Name:        rows[i].Name,
			Description: rows[i].Description,
			Members:     members,
			Projects:    projects,
		})
	}
	return teams, nil
}

// Create persists the team row plus one membership row per member and
// one assignment row per project, all-or-nothing. The generated id is
// written back only on commit.
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	var teamID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.Team{Name: team.Name, Description: team.Description}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for i := range team.Members {
			assoc := models.TeamMember{TeamID: row.ID, UserID: team.Members[i].ID}
			if err := tx.Create(&assoc).Error; err != nil {
				return err
			}
		}
		for i := range team.Projects {
			assoc := models.ProjectTeam{TeamID: row.ID, ProjectID: team.Projects[i].ID}
			if err := tx.Create(&assoc).Error; err != nil {
				return err
			}
		}
		teamID = row.ID
		return nil
	})
	if err != nil {
		return repoErr(r.log, "create team", err)
	}

	team.ID = teamID
	if team.Members == nil {
		team.Members = []domain.User{}
	}
	if team.Projects == nil {
		team.Projects = []domain.Project{}
	}
	return nil
}

// membersOf resolves the users belonging to a team through the
// membership association.
func (r *teamRepository) membersOf(ctx context.Context, teamID uint) ([]domain.User, error) {
	var rows []models.User
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.*").
		Joins("INNER JOIN team_members tm ON tm.user_id = users.id").
		Where("tm.team_id = ?", teamID).
		Scan(&rows).Error
	if err != nil {
		return nil, repoErr(r.log, "resolve team members", err)
	}
	return r.usersToDomain(rows), nil
}

// projectsOf resolves the projects assigned to a team. The projects
// carry an empty team list; the reverse association is not re-resolved.
func (r *teamRepository) projectsOf(ctx context.Context, teamID uint) ([]domain.Project, error) {
	var rows []models.Project
	err := r.db.WithContext(ctx).
		Table("projects").
		Select("projects.*").
		Joins("INNER JOIN project_teams pt ON pt.project_id = projects.id").
		Where("pt.team_id = ?", teamID).
		Scan(&rows).Error
	if err != nil {
		return nil, repoErr(r.log, "resolve team projects", err)
	}

	projects := make([]domain.Project, 0, len(rows))
	for i := range rows {
		projects = append(projects, rows[i].ToDomain())
	}
	return projects, nil
}

func (r *teamRepository) usersToDomain(rows []models.User) []domain.User {
	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		user := rows[i].ToDomain()
		if user.Role == domain.RoleUnknown && rows[i].Role != "" {
			r.log.Warn().
				Str("login", rows[i].Login).
				Str("role", rows[i].Role).
				Msg("unrecognized role in store")
		}
		users = append(users, user)
	}
	return users
}
