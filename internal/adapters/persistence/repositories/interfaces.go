package repositories

import (
	"context"

	"systemgp/internal/core/domain"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Count returns the total number of persisted users
	Count(ctx context.Context) (int64, error)
	// FindAll returns every user; unrecognized stored role text maps to
	// RoleUnknown instead of failing the read
	FindAll(ctx context.Context) ([]domain.User, error)
	// FindByID returns the user with the given id, or ErrNotFound
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	// FindByLogin returns the user with the given login, or ErrNotFound
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	// CheckPassword reports whether the plaintext matches the user's
	// stored hash; false when either argument is absent
	CheckPassword(user *domain.User, plain string) bool
	// Save persists a new user, hashing the plaintext password and
	// writing the generated id and hash back onto the passed-in user
	Save(ctx context.Context, user *domain.User) error
	// Delete removes the user with the given id; ErrNotFound when no
	// row was removed
	Delete(ctx context.Context, id uint) error
}

// ProjectRepository defines persistence operations for projects
type ProjectRepository interface {
	Count(ctx context.Context) (int64, error)
	// Create inserts a project with no manager
	Create(ctx context.Context, project *domain.Project) error
	// CreateWithManager inserts a project managed by the given user
	CreateWithManager(ctx context.Context, project *domain.Project, managerID uint) error
	// FindAll returns every project with its manager display name and
	// shallow team associations resolved
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindByID(ctx context.Context, id uint) (*domain.Project, error)
	// Update overwrites the project's scalar fields; the manager is an
	// explicit parameter, nil clears the association
	Update(ctx context.Context, project *domain.Project, managerID *uint) error
	Delete(ctx context.Context, project *domain.Project) error
}

// TeamRepository defines persistence operations for teams and the scans
// used to populate selection lists
type TeamRepository interface {
	Count(ctx context.Context) (int64, error)
	// AllUsers returns every user, for member selection lists
	AllUsers(ctx context.Context) ([]domain.User, error)
	// AllProjects returns every project with an empty team list, for
	// assignment selection lists
	AllProjects(ctx context.Context) ([]domain.Project, error)
	// FindAll returns every team with its full member and project lists
	FindAll(ctx context.Context) ([]domain.Team, error)
	// Create persists the team and one association row per member and
	// per assigned project, all in a single transaction
	Create(ctx context.Context, team *domain.Team) error
}
