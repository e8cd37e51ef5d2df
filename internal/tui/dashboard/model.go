package dashboard

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tskpay/internal/billing"
	"github.com/alexisbeaulieu97/tskpay/internal/logger"
	"github.com/alexisbeaulieu97/tskpay/internal/preferences"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/sections"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/shell"
)

// Options configures the dashboard.
type Options struct {
	Dataset           *billing.Dataset
	Preferences       *preferences.Provider
	Logger            *logger.Logger
	UserName          string
	DefaultSection    Section
	SidebarBreakpoint int
}

// Model is the main dashboard model. It owns every piece of state the
// components display and hands it to them as props.
type Model struct {
	log     *logger.Logger
	dataset *billing.Dataset
	prefs   *preferences.Provider
	keys    keyMap
	help    help.Model

	// Theme state
	mode        preferences.Mode
	themeEvents chan preferences.Mode
	themeDone   chan struct{}
	unsubscribe func()
	closeOnce   sync.Once

	// UI state
	section  Section
	viewMode ViewMode
	focus    int
	shell    *shell.AppShell
	errorMsg string
	quitting bool

	// Overview
	overviewTabs  *components.Tabs
	overviewList  *components.TabsList
	memberContent *components.TabsContent
	groupContent  *components.TabsContent
	memberTable   *sections.MemberObligationTable
	groupTable    *sections.GroupObligationTable

	// Members
	selectedGroup string
	groupList     *sections.GroupList
	groupMembers  *sections.MemberObligationTable
	renameOpen    bool
	renameDialog  *components.PromptDialog

	// Settings
	userName    string
	notes       string
	darkMode    *components.Checkbox
	themeSelect *components.Select
	displayName *components.Input
	notesInput  *components.Textarea

	// Logout
	logoutOpen   bool
	logoutDialog *components.ConfirmDialog

	// Help overlay cache
	helpCache helpCache

	// Dimensions
	width  int
	height int
}

// NewModel creates a new dashboard model. A missing preference provider is a
// ConfigurationError: the theme controls cannot exist without it.
func NewModel(opts Options) (*Model, error) {
	prefs, err := preferences.Use(opts.Preferences)
	if err != nil {
		return nil, err
	}

	dataset := opts.Dataset
	if dataset == nil {
		dataset = billing.Sample()
	}

	section := opts.DefaultSection
	if _, ok := ParseSection(string(section)); !ok {
		section = SectionOverview
	}

	m := &Model{
		log:         opts.Logger.WithComponent("dashboard"),
		dataset:     dataset,
		prefs:       prefs,
		keys:        newKeyMap(),
		help:        help.New(),
		themeEvents: make(chan preferences.Mode, themeEventBuffer),
		themeDone:   make(chan struct{}),
		section:     section,
		userName:    opts.UserName,
		width:       80,
		height:      24,
	}

	m.mode, m.unsubscribe = prefs.Subscribe(forwardTheme(m.themeEvents, m.themeDone))

	m.buildShell(opts.SidebarBreakpoint)
	if err := m.buildOverview(); err != nil {
		m.Close()
		return nil, err
	}
	m.buildMembers()
	m.buildSettings()
	m.buildDialogs()

	m.setSection(section)
	return m, nil
}

func (m *Model) buildShell(breakpoint int) {
	m.shell = shell.NewAppShell(shell.Options{
		NavigationItems: m.navItems(),
		User:            m.user(),
		OnNavigate:      m.navigate,
		OnLogout:        func() { m.setLogoutOpen(true) },
		Breakpoint:      breakpoint,
	})
	m.shell.SetContent(renderFunc(m.renderSection))
}

func (m *Model) buildOverview() error {
	m.overviewTabs = components.NewTabs(TabByMember, m.setOverviewTab)
	m.memberTable = sections.NewMemberObligationTable(m.dataset.Members())
	m.groupTable = sections.NewGroupObligationTable(m.dataset.GroupObligations(), m.viewGroup)

	byMember, err := components.NewTabsTrigger(m.overviewTabs, TabByMember, "Po tekmovalcih")
	if err != nil {
		return err
	}
	byGroup, err := components.NewTabsTrigger(m.overviewTabs, TabByGroup, "Po skupinah")
	if err != nil {
		return err
	}
	if m.overviewList, err = components.NewTabsList(m.overviewTabs, byMember, byGroup); err != nil {
		return err
	}
	if m.memberContent, err = components.NewTabsContent(m.overviewTabs, TabByMember, m.memberTable); err != nil {
		return err
	}
	m.groupContent, err = components.NewTabsContent(m.overviewTabs, TabByGroup, m.groupTable)
	return err
}

func (m *Model) buildMembers() {
	groups := m.dataset.Groups()
	if len(groups) > 0 {
		m.selectedGroup = groups[0].ID
	}
	m.groupList = sections.NewGroupList(groups, m.selectedGroup, m.selectGroup)
	m.groupMembers = sections.NewMemberObligationTable(m.dataset.MembersOf(m.selectedGroup))
	m.renameDialog = components.NewRenameGroupDialog(false, "", m.setRenameOpen, m.renameSelectedGroup)
}

func (m *Model) buildSettings() {
	m.darkMode = components.NewCheckbox("dark-mode", "Temni način", m.mode.IsDark(), components.CheckboxHandlers{
		OnCheckedChange: func(checked bool) {
			next := preferences.ModeLight
			if checked {
				next = preferences.ModeDark
			}
			m.setTheme(next)
		},
	})

	m.themeSelect = components.NewSelect("theme", []components.SelectOption{
		{Value: string(preferences.ModeLight), Label: "Svetla"},
		{Value: string(preferences.ModeDark), Label: "Temna"},
	}, string(m.mode), components.SelectHandlers{
		OnValueChange: func(value string) {
			if err := m.prefs.SetThemeString(value); err != nil {
				m.fail(err)
				return
			}
			m.applyMode(m.prefs.Mode())
		},
	})

	m.displayName = components.NewInput("display-name", m.userName, components.InputHandlers{
		OnValueChange: m.setUserName,
	}).WithPlaceholder("Uporabnik").WithWidth(32)

	m.notesInput = components.NewTextarea("notes", m.notes, components.InputHandlers{
		OnValueChange: m.setNotes,
	}).WithPlaceholder("Opombe za blagajnika").WithSize(48, 4)
}

func (m *Model) buildDialogs() {
	m.logoutDialog = components.NewConfirmDialog(components.ConfirmDialogOptions{
		Title:        "Odjava",
		Message:      "Ali se res želite odjaviti?",
		ConfirmLabel: "Odjava",
		Variant:      components.ConfirmVariantDestructive,
	}, false, m.setLogoutOpen, func() {
		m.log.Info("logout confirmed")
		m.quitting = true
	})
}

// Init subscribes to theme changes.
func (m *Model) Init() tea.Cmd {
	return waitForThemeCmd(m.themeEvents, m.themeDone)
}

// Close detaches the model from the preference provider and releases the
// pending theme wait. It is safe to call more than once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		close(m.themeDone)
	})
}

// Owner state transitions. Components request changes through the
// callbacks wired above; only these methods move state.

func (m *Model) navigate(href string) {
	section, ok := ParseSection(href)
	if !ok {
		m.log.Warn("ignoring navigation to " + href)
		return
	}
	m.setSection(section)
}

func (m *Model) setSection(section Section) {
	m.section = section
	m.shell.SetNavigationItems(m.navItems())
	m.setFocus(0)
	m.log.Debug("section " + string(section))
}

func (m *Model) setOverviewTab(value string) {
	m.overviewTabs.SetValue(value)
	if m.section == SectionOverview && m.focus > 1 {
		m.setFocus(m.focus)
	}
}

func (m *Model) viewGroup(groupID string) {
	m.selectGroup(groupID)
	m.setSection(SectionMembers)
	m.setFocus(1)
}

func (m *Model) selectGroup(groupID string) {
	if _, ok := m.dataset.Group(groupID); !ok {
		return
	}
	m.selectedGroup = groupID
	m.groupList.SetSelected(groupID)
	m.groupMembers.SetRows(m.dataset.MembersOf(groupID))
}

func (m *Model) openRename() {
	group, ok := m.dataset.Group(m.selectedGroup)
	if !ok {
		return
	}
	m.renameDialog.SetValue(group.Name)
	m.setRenameOpen(true)
}

func (m *Model) setRenameOpen(open bool) {
	m.renameOpen = open
	m.renameDialog.SetOpen(open)
}

func (m *Model) renameSelectedGroup(name string) {
	if err := m.dataset.RenameGroup(m.selectedGroup, name); err != nil {
		m.fail(err)
		return
	}
	m.log.Info("renamed group " + m.selectedGroup)
	m.refreshData()
}

// refreshData pushes the dataset into every view that shows it.
func (m *Model) refreshData() {
	m.memberTable.SetRows(m.dataset.Members())
	m.groupTable.SetRows(m.dataset.GroupObligations())
	m.groupList.SetGroups(m.dataset.Groups())
	m.groupMembers.SetRows(m.dataset.MembersOf(m.selectedGroup))
	if group, ok := m.dataset.Group(m.selectedGroup); ok {
		m.renameDialog.SetValue(group.Name)
	}
}

// setTheme and toggleTheme mirror the applied mode before returning, so the
// next frame never shows controls older than the presenter.
func (m *Model) setTheme(mode preferences.Mode) {
	if err := m.prefs.SetTheme(mode); err != nil {
		m.fail(err)
		return
	}
	m.applyMode(m.prefs.Mode())
}

func (m *Model) toggleTheme() {
	mode, err := m.prefs.Toggle()
	if err != nil {
		m.fail(err)
		return
	}
	m.applyMode(mode)
}

// applyMode mirrors the provider's mode into the theme controls. Changes
// made elsewhere arrive through ThemeChangedMsg.
func (m *Model) applyMode(mode preferences.Mode) {
	m.mode = mode
	m.darkMode.SetChecked(mode.IsDark())
	m.themeSelect.SetValue(string(mode))
}

func (m *Model) setUserName(name string) {
	m.userName = name
	m.displayName.SetValue(name)
	m.shell.UserMenu().SetUser(m.user())
}

func (m *Model) setNotes(notes string) {
	m.notes = notes
	m.notesInput.SetValue(notes)
}

func (m *Model) setLogoutOpen(open bool) {
	m.logoutOpen = open
	m.logoutDialog.SetOpen(open)
}

func (m *Model) fail(err error) {
	m.log.Error(err, "dashboard action failed")
	m.errorMsg = err.Error()
}

func (m *Model) clearError() {
	m.errorMsg = ""
}

func (m *Model) user() *shell.User {
	return &shell.User{Name: m.userName}
}

func (m *Model) navItems() []shell.NavItem {
	entries := []struct {
		section Section
		label   string
	}{
		{SectionOverview, "Pregled"},
		{SectionMembers, "Člani"},
		{SectionSettings, "Nastavitve"},
	}

	items := make([]shell.NavItem, len(entries))
	for i, entry := range entries {
		items[i] = shell.NavItem{Label: entry.label, Href: entry.section.Href(), Active: entry.section == m.section}
	}
	return items
}

// Focus handling. Slot 0 is always the navigation; the rest belong to the
// current section.

func (m *Model) focusables() []components.Focusable {
	slots := []components.Focusable{m.shell.Nav()}
	switch m.section {
	case SectionOverview:
		slots = append(slots, m.overviewList)
		if m.overviewTabs.IsActive(TabByGroup) {
			slots = append(slots, m.groupTable)
		} else {
			slots = append(slots, m.memberTable)
		}
	case SectionMembers:
		slots = append(slots, m.groupList, m.groupMembers)
	case SectionSettings:
		slots = append(slots, m.darkMode, m.themeSelect, m.displayName, m.notesInput)
	}
	return slots
}

func (m *Model) allFocusables() []components.Focusable {
	return []components.Focusable{
		m.shell.Nav(), m.overviewList, m.memberTable, m.groupTable,
		m.groupList, m.groupMembers,
		m.darkMode, m.themeSelect, m.displayName, m.notesInput,
	}
}

func (m *Model) setFocus(index int) {
	for _, f := range m.allFocusables() {
		f.Blur()
	}
	slots := m.focusables()
	n := len(slots)
	m.focus = ((index % n) + n) % n
	slots[m.focus].Focus()
}

func (m *Model) focused() components.Focusable {
	slots := m.focusables()
	if m.focus < 0 || m.focus >= len(slots) {
		return nil
	}
	return slots[m.focus]
}

// textEntry reports whether printable keys belong to a text field.
func (m *Model) textEntry() bool {
	switch m.focused().(type) {
	case *components.Input, *components.Textarea:
		return true
	default:
		return false
	}
}

// Accessors used by the CLI and tests.

// Section returns the current section.
func (m *Model) Section() Section { return m.section }

// Mode returns the theme mode the dashboard last applied.
func (m *Model) Mode() preferences.Mode { return m.mode }

// ErrorMessage returns the banner text, if any.
func (m *Model) ErrorMessage() string { return m.errorMsg }

// SelectedGroup returns the group shown in the members section.
func (m *Model) SelectedGroup() string { return m.selectedGroup }

// Quitting reports whether logout was confirmed.
func (m *Model) Quitting() bool { return m.quitting }
