// Package services holds the contracts consumed by the presentation
// layer: input validation plus calls into the repositories. Views and
// navigation stay outside this module.
package services

import (
	"fmt"

	"systemgp/internal/core/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checkInput runs struct validation and folds failures into
// domain.ErrInvalidInput so callers branch on one error kind.
func checkInput(input interface{}) error {
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
