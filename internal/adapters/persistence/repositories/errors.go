package repositories

import (
	"errors"
	"fmt"

	"systemgp/internal/core/domain"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// wrap classifies a store error into the domain taxonomy. Relies on
// gorm's TranslateError so duplicate-key and foreign-key violations are
// driver-independent.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w: %v", op, domain.ErrConstraintViolation, err)
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConstraintViolation),
		errors.Is(err, domain.ErrStoreUnavailable):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
}

// repoErr wraps and logs a store error. Not-found is part of normal
// control flow and is not logged.
func repoErr(log zerolog.Logger, op string, err error) error {
	wrapped := wrap(op, err)
	if wrapped != nil && !errors.Is(wrapped, domain.ErrNotFound) {
		log.Error().Err(err).Msg(op)
	}
	return wrapped
}
