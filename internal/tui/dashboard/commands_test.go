package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tskpay/internal/preferences"
)

func TestWaitForThemeCmdReturnsChange(t *testing.T) {
	events := make(chan preferences.Mode, 1)
	events <- preferences.ModeDark

	msg := waitForThemeCmd(events, make(chan struct{}))()
	require.IsType(t, ThemeChangedMsg{}, msg)
	assert.Equal(t, preferences.ModeDark, msg.(ThemeChangedMsg).Mode)
}

func TestWaitForThemeCmdReturnsWhenDone(t *testing.T) {
	done := make(chan struct{})
	close(done)

	assert.Nil(t, waitForThemeCmd(make(chan preferences.Mode), done)())
}

func TestForwardThemeDropsWhenFull(t *testing.T) {
	events := make(chan preferences.Mode, 1)
	listener := forwardTheme(events, make(chan struct{}))

	listener(preferences.ModeDark)
	listener(preferences.ModeLight)

	assert.Len(t, events, 1)
	assert.Equal(t, preferences.ModeDark, <-events)
}

func TestForwardThemeStopsAfterDone(t *testing.T) {
	events := make(chan preferences.Mode, 1)
	done := make(chan struct{})
	listener := forwardTheme(events, done)
	close(done)

	listener(preferences.ModeDark)

	assert.Empty(t, events)
}

func TestCloseReleasesPendingThemeWait(t *testing.T) {
	m, err := NewModel(Options{Preferences: preferences.NewProvider(nil, nil)})
	require.NoError(t, err)

	wait := m.Init()
	m.Close()
	m.Close()

	assert.Nil(t, wait())
}
