package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tskpay/internal/preferences"
	"github.com/alexisbeaulieu97/tskpay/internal/tui/dashboard"
)

var errNotTerminal = errors.New("the dashboard needs an interactive terminal")

func newDashboardCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		Long:  `Launch the interactive TUI dashboard with the overview of open obligations, the group members and the settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}

	return cmd
}

func runDashboard(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}
	applyColorProfile()

	app, err := newAppContext(flags, fileSink, preferences.NewTerminalPresenter(nil))
	if err != nil {
		return err
	}
	defer app.Close()

	log, _ := app.Logger.WithSession()
	log.Info("launching dashboard")

	data, err := app.dataset()
	if err != nil {
		log.Error(err, "failed to load dataset")
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	section, _ := dashboard.ParseSection(app.Config.UI.DefaultSection)
	m, err := dashboard.NewModel(dashboard.Options{
		Dataset:           data,
		Preferences:       app.Preferences,
		Logger:            log,
		UserName:          app.Config.UI.UserName,
		DefaultSection:    section,
		SidebarBreakpoint: app.Config.UI.SidebarBreakpoint,
	})
	if err != nil {
		log.Error(err, "failed to create dashboard")
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		log.Error(err, "dashboard execution failed")
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	log.WithFields(map[string]any{"mode": app.Preferences.Mode().String()}).Info("dashboard closed")
	return nil
}

func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// applyColorProfile honours NO_COLOR and otherwise keeps termenv's detection.
// CLICOLOR is ignored because it would disable colours inside the TUI.
func applyColorProfile() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
