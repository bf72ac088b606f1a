package config

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"systemgp/internal/adapters/persistence/models"
	"systemgp/internal/core/domain"
	"systemgp/internal/pkg/password"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
	log zerolog.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config, log zerolog.Logger) *Seeder {
	return &Seeder{db: db, cfg: cfg, log: log}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	if err := s.seedAdminUser(); err != nil {
		return err
	}
	s.log.Info().Msg("database seeding completed")
	return nil
}

// seedAdminUser creates the initial administrator when no
// administrator exists yet. Without a configured password a random one
// is generated and logged exactly once, to be changed at first login.
func (s *Seeder) seedAdminUser() error {
	var count int64
	err := s.db.Model(&models.User{}).
		Where("role = ?", string(domain.RoleAdministrator)).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	plain := s.cfg.Seed.AdminPassword
	generated := false
	if plain == "" {
		plain = uuid.NewString()
		generated = true
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return err
	}

	admin := &models.User{
		FullName: "Administrator",
		Email:    s.cfg.Seed.AdminEmail,
		Login:    s.cfg.Seed.AdminLogin,
		Password: hash,
		Role:     string(domain.RoleAdministrator),
	}
	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	event := s.log.Info().Str("login", admin.Login)
	if generated {
		event = event.Str("password", plain)
	}
	event.Msg("admin user created")
	return nil
}
