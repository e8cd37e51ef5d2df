package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `ui:
  user_name: "Bančnik"
  default_section: settings
  sidebar_breakpoint: 90
preferences:
  backend: sqlite
  path: /tmp/tskpay/preferences.db
log:
  level: debug
`

	invalidYAML := `ui:
  sidebar_breakpoint: [1, 0]
`

	unknownField := `ui:
  user_name: "Ana"
  colour: blue
`

	badSection := `ui:
  default_section: reports
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed over defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "Bančnik", cfg.UI.UserName)
				require.Equal(t, SectionSettings, cfg.UI.DefaultSection)
				require.Equal(t, 90, cfg.UI.SidebarBreakpoint)
				require.Equal(t, "sqlite", cfg.Preferences.Backend)
				require.Equal(t, "tskpay-theme", cfg.Preferences.Key)
				require.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown fields are rejected",
			contents: unknownField,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "default section must be known",
			contents: badSection,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "ui.default_section", validationErr.Field)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseConfigMissingFileIsParseError(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, ".config", "tskpay"), ExpandPath("~/.config/tskpay"))
	require.Equal(t, home, ExpandPath("~"))
	require.Equal(t, "/etc/tskpay", ExpandPath("/etc/tskpay"))
	require.Equal(t, "", ExpandPath(""))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
