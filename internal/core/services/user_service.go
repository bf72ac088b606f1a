package services

import (
	"context"
	"errors"

	"systemgp/internal/adapters/persistence/repositories"
	"systemgp/internal/core/domain"
	"systemgp/internal/core/session"
)

// User service errors
var (
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)

// UserService handles user management on behalf of the presentation
// layer. Input validation lives here; the repository trusts its input.
type UserService struct {
	users repositories.UserRepository
	sess  *session.Session
}

// NewUserService creates a new user service
func NewUserService(users repositories.UserRepository, sess *session.Session) *UserService {
	return &UserService{users: users, sess: sess}
}

// CreateUserInput carries the validated form fields for a new user
type CreateUserInput struct {
	Name     string `validate:"required"`
	CPF      string
	Email    string `validate:"required,email"`
	Login    string `validate:"required"`
	Password string `validate:"required,min=6"`
	Role     domain.Role
}

// Create validates the input and persists a new user. The stored
// password is a bcrypt hash; the returned user carries the generated id.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	user := domain.User{
		Name:     input.Name,
		CPF:      input.CPF,
		Email:    input.Email,
		Role:     input.Role,
		Login:    input.Login,
		Password: input.Password,
	}
	if err := s.users.Save(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// Get returns the user with the given id
func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Delete removes a user. The current actor cannot delete itself.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if current := s.sess.Current(); current != nil && current.ID == id {
		return ErrCannotDeleteSelf
	}
	return s.users.Delete(ctx, id)
}

// Count returns the total number of users
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

// Roles returns the assignable roles, for the add screen's selection list
func (s *UserService) Roles() []domain.Role {
	return domain.Roles()
}
