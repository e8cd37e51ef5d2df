package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	prefKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("pref_key", func(fl validator.FieldLevel) bool {
			return prefKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Preferences.Backend != "memory" && strings.TrimSpace(cfg.Preferences.Path) == "" {
		return apperrors.NewValidationError("preferences.path", fmt.Sprintf("path is required for the %s backend", cfg.Preferences.Backend), nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into tskpay validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName maps "Config.UI.DefaultSection" to "ui.default_section".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(name string) string {
	if name == "UI" {
		return "ui"
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
