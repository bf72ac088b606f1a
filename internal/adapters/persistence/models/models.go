package models

import (
	"fmt"
	"time"

	"systemgp/internal/core/domain"

	"gorm.io/gorm"
)

// DateLayout is the wire format for calendar dates at the domain boundary
const DateLayout = "2006-01-02"

// User represents the users table
type User struct {
	ID        uint      `gorm:"primaryKey"`
	FullName  string    `gorm:"column:full_name;size:100;not null"`
	CPF       string    `gorm:"column:cpf;size:14"`
	Email     string    `gorm:"size:100;not null"`
	Login     string    `gorm:"size:50;uniqueIndex;not null"`
	Password  string    `gorm:"size:255;not null"`
	Role      string    `gorm:"size:20"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// ToDomain converts a stored row into a domain User. Role text that
// matches no known role becomes RoleUnknown; callers decide whether to
// log the anomaly.
func (u *User) ToDomain() domain.User {
	return domain.User{
		ID:       u.ID,
		Name:     u.FullName,
		CPF:      u.CPF,
		Email:    u.Email,
		Role:     domain.ParseRole(u.Role),
		Login:    u.Login,
		Password: u.Password,
	}
}

// Project represents the projects table. The actual end date is part of
// the domain record but is not persisted, matching the stored schema.
type Project struct {
	ID              uint       `gorm:"primaryKey"`
	Name            string     `gorm:"size:100;not null"`
	Description     string     `gorm:"type:text"`
	StartDate       *time.Time `gorm:"column:start_date;type:date"`
	ExpectedEndDate *time.Time `gorm:"column:expected_end_date;type:date"`
	Status          string     `gorm:"size:20"`
	ManagerID       *uint      `gorm:"column:manager_id"`
	Manager         *User      `gorm:"foreignKey:ManagerID"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}

// ToDomain converts a stored row into a domain Project; the manager
// display name and the team list are resolved separately by the
// repository.
func (p *Project) ToDomain() domain.Project {
	return domain.Project{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		StartDate:      DateString(p.StartDate),
		PlannedEndDate: DateString(p.ExpectedEndDate),
		Status:         domain.ParseStatus(p.Status),
		Teams:          []domain.Team{},
	}
}

// Team represents the teams table
type Team struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Team) TableName() string {
	return "teams"
}

// TeamMember represents the team_members association table
type TeamMember struct {
	TeamID uint `gorm:"primaryKey;autoIncrement:false"`
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

// ProjectTeam represents the project_teams association table
type ProjectTeam struct {
	TeamID    uint `gorm:"primaryKey;autoIncrement:false"`
	ProjectID uint `gorm:"primaryKey;autoIncrement:false"`
}

func (ProjectTeam) TableName() string {
	return "project_teams"
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Project{},
		&Team{},
		&TeamMember{},
		&ProjectTeam{},
	)
}

// DateString renders a nullable date in the ISO-8601 boundary format;
// nil becomes the empty string.
func DateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ParseDate parses an ISO-8601 date string into a nullable date; the
// empty string becomes nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", domain.ErrInvalidInput, s)
	}
	return &t, nil
}
