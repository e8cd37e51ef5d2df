package preferences

import (
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

// Mode is the colour scheme preference.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// DefaultMode is used whenever no valid value has been persisted.
const DefaultMode = ModeLight

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// ParseMode accepts exactly "light" or "dark". Anything else, including
// differently cased or padded spellings, is a ValidationError.
func ParseMode(value string) (Mode, error) {
	if err := validatorInstance().Var(value, "required,oneof=light dark"); err != nil {
		return "", apperrors.NewValidationError("theme", "must be one of light, dark; got "+quote(value), err)
	}
	return Mode(value), nil
}

// Opposite returns the other mode. Invalid modes flip to dark, matching a
// toggle from the default.
func (m Mode) Opposite() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// IsDark reports whether m selects the dark scheme.
func (m Mode) IsDark() bool {
	return m == ModeDark
}

func (m Mode) String() string {
	return string(m)
}

func quote(s string) string {
	return "\"" + s + "\""
}
