package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	mutate := func(fn func(cfg *Config)) *Config {
		cfg := Default()
		fn(cfg)
		return cfg
	}

	cases := []struct {
		name  string
		cfg   *Config
		field string
	}{
		{name: "defaults pass", cfg: Default()},
		{name: "memory backend needs no path", cfg: mutate(func(c *Config) {
			c.Preferences.Backend = "memory"
			c.Preferences.Path = ""
		})},
		{name: "nil config", cfg: nil, field: "config"},
		{name: "unknown backend", cfg: mutate(func(c *Config) { c.Preferences.Backend = "redis" }), field: "preferences.backend"},
		{name: "file backend without path", cfg: mutate(func(c *Config) { c.Preferences.Path = "" }), field: "preferences.path"},
		{name: "blank path", cfg: mutate(func(c *Config) { c.Preferences.Path = "   " }), field: "preferences.path"},
		{name: "bad key", cfg: mutate(func(c *Config) { c.Preferences.Key = "Theme Key" }), field: "preferences.key"},
		{name: "bad log level", cfg: mutate(func(c *Config) { c.Log.Level = "loud" }), field: "log.level"},
		{name: "negative breakpoint", cfg: mutate(func(c *Config) { c.UI.SidebarBreakpoint = -1 }), field: "ui.sidebar_breakpoint"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tc.cfg)
			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}
