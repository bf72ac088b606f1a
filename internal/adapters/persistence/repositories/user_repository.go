package repositories

import (
	"context"
	"fmt"

	"systemgp/internal/adapters/persistence/models"
	"systemgp/internal/core/domain"
	"systemgp/internal/pkg/password"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// userRepository implements UserRepository on top of gorm
type userRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, log zerolog.Logger) UserRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, repoErr(r.log, "count users", err)
	}
	return total, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var rows []models.User
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, repoErr(r.log, "find all users", err)
	}

	users := make([]domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, r.toDomain(&rows[i]))
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var row models.User
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, repoErr(r.log, "find user by id", err)
	}
	user := r.toDomain(&row)
	return &user, nil
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	var row models.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&row).Error; err != nil {
		return nil, repoErr(r.log, "find user by login", err)
	}
	user := r.toDomain(&row)
	return &user, nil
}

// CheckPassword reports whether the plaintext matches the user's stored
// hash. Verification is constant-time, delegated to bcrypt.
func (r *userRepository) CheckPassword(user *domain.User, plain string) bool {
	if user == nil || plain == "" {
		return false
	}
	return password.Verify(plain, user.Password)
}

// Save persists a new user. The plaintext password is hashed before the
// write; the role defaults to COLLABORATOR when unset. The generated id
// and the hash are written back onto the passed-in user, so no plaintext
// outlives the call.
func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	hash, err := password.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("save user: %w: %v", domain.ErrInvalidInput, err)
	}

	role := user.Role
	if !role.IsValid() {
		role = domain.RoleCollaborator
	}

	row := models.User{
		FullName: user.Name,
		CPF:      user.CPF,
		Email:    user.Email,
		Login:    user.Login,
		Password: hash,
		Role:     string(role),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return repoErr(r.log, "save user", err)
	}

	user.ID = row.ID
	user.Role = role
	user.Password = hash
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return repoErr(r.log, "delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete user: %w", domain.ErrNotFound)
	}
	return nil
}

// toDomain converts a row, warning about role text that matches no
// known role. The row is kept with RoleUnknown rather than rejected.
func (r *userRepository) toDomain(row *models.User) domain.User {
	user := row.ToDomain()
	if user.Role == domain.RoleUnknown && row.Role != "" {
		r.log.Warn().
			Str("login", row.Login).
			Str("role", row.Role).
			Msg("unrecognized role in store")
	}
	return user
}
