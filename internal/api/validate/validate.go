// Package validate holds input checks shared by the HTTP handlers.
package validate

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/hearthbook/hearthbook/internal/model"
)

// Email checks basic address syntax.
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", model.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", model.ErrValidation)
	}
	return nil
}

// Required checks that a field is non-blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", model.ErrValidation, field)
	}
	return nil
}

// Theme checks that a non-empty theme is one of the known values.
func Theme(t model.Theme) error {
	if t == "" {
		return nil
	}
	if !model.ValidTheme(t) {
		return fmt.Errorf("%w: unknown theme %q", model.ErrValidation, t)
	}
	return nil
}

// Role checks that the role is a known value.
func Role(r model.Role) error {
	if !model.ValidRole(r) {
		return fmt.Errorf("%w: unknown role %q", model.ErrValidation, r)
	}
	return nil
}

// Recipe checks the invariants of recipe input: a title and non-negative
// times.
func Recipe(r model.Recipe) error {
	if err := Required("title", r.Title); err != nil {
		return err
	}
	if r.PrepTime < 0 || r.CookTime < 0 {
		return fmt.Errorf("%w: prep and cook times must be non-negative", model.ErrValidation)
	}
	return nil
}

// RecipePatch checks the fields a patch actually sets.
func RecipePatch(p model.RecipePatch) error {
	if p.Title != nil {
		if err := Required("title", *p.Title); err != nil {
			return err
		}
	}
	if p.PrepTime != nil && *p.PrepTime < 0 {
		return fmt.Errorf("%w: prepTime must be non-negative", model.ErrValidation)
	}
	if p.CookTime != nil && *p.CookTime < 0 {
		return fmt.Errorf("%w: cookTime must be non-negative", model.ErrValidation)
	}
	return nil
}
