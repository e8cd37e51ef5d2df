package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/ui"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

// Options configures an AppShell.
type Options struct {
	NavigationItems []NavItem
	User            *User
	OnNavigate      func(href string)
	OnLogout        func()
	// Breakpoint is the terminal width below which the sidebar collapses.
	Breakpoint   int
	SidebarWidth int
}

// AppShell lays out the sidebar next to the content. Below the breakpoint
// the sidebar is hidden until opened, and then covers the content.
type AppShell struct {
	nav          *MainNav
	userMenu     *UserMenu
	content      ui.Renderable
	onNavigate   func(href string)
	breakpoint   int
	sidebarWidth int
	width        int
	height       int
	sidebarOpen  bool
}

// NewAppShell builds the frame.
func NewAppShell(opts Options) *AppShell {
	s := &AppShell{
		onNavigate:   opts.OnNavigate,
		breakpoint:   opts.Breakpoint,
		sidebarWidth: opts.SidebarWidth,
	}
	if s.breakpoint <= 0 {
		s.breakpoint = defaultBreakpoint
	}
	if s.sidebarWidth <= 0 {
		s.sidebarWidth = defaultSidebarWidth
	}
	s.nav = NewMainNav(opts.NavigationItems, s.navigate)
	s.userMenu = NewUserMenu(opts.User, opts.OnLogout)
	return s
}

// navigate closes the collapsed sidebar and forwards the href.
func (s *AppShell) navigate(href string) {
	s.sidebarOpen = false
	if s.onNavigate != nil {
		s.onNavigate(href)
	}
}

// Nav returns the navigation list.
func (s *AppShell) Nav() *MainNav {
	return s.nav
}

// UserMenu returns the user menu.
func (s *AppShell) UserMenu() *UserMenu {
	return s.userMenu
}

// SetNavigationItems passes new entries to the navigation.
func (s *AppShell) SetNavigationItems(items []NavItem) {
	s.nav.SetItems(items)
}

// SetContent replaces the main area.
func (s *AppShell) SetContent(content ui.Renderable) {
	s.content = content
}

// SetSize records the terminal size.
func (s *AppShell) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Compact reports whether the terminal is narrower than the breakpoint.
func (s *AppShell) Compact() bool {
	return s.width > 0 && s.width < s.breakpoint
}

// SidebarVisible reports whether the sidebar is drawn.
func (s *AppShell) SidebarVisible() bool {
	return !s.Compact() || s.sidebarOpen
}

// OpenSidebar shows the collapsed sidebar.
func (s *AppShell) OpenSidebar() { s.sidebarOpen = true }

// CloseSidebar hides the collapsed sidebar.
func (s *AppShell) CloseSidebar() { s.sidebarOpen = false }

// ToggleSidebar flips the collapsed sidebar.
func (s *AppShell) ToggleSidebar() { s.sidebarOpen = !s.sidebarOpen }

// ContentWidth returns the columns left for the content area.
func (s *AppShell) ContentWidth() int {
	if s.Compact() || s.width <= 0 {
		return s.width
	}
	return s.width - s.sidebarWidth - 1
}

// View renders the frame.
func (s *AppShell) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders sidebar and content side by side, or in compact
// mode a header bar above the content, or the open sidebar alone.
func (s *AppShell) ViewWithContext(ctx components.RenderContext) string {
	if s.Compact() {
		if s.sidebarOpen {
			return s.sidebar(ctx, s.height)
		}
		header := components.TitleText("☰ " + appTitle).ViewWithContext(ctx)
		rule := components.NewDivider().ViewWithContext(ctx.WithWidth(s.width))
		content := components.Render(s.content, ctx.WithWidth(s.width))
		return lipgloss.JoinVertical(lipgloss.Left, header, rule, content)
	}

	contentCtx := ctx.WithWidth(s.ContentWidth() - 2)
	content := lipgloss.NewStyle().PaddingLeft(1).Render(components.Render(s.content, contentCtx))
	return lipgloss.JoinHorizontal(lipgloss.Top, s.sidebar(ctx, s.height), content)
}

func (s *AppShell) sidebar(ctx components.RenderContext, height int) string {
	inner := ctx.WithWidth(s.sidebarWidth)
	title := components.TitleText(appTitle).ViewWithContext(inner)
	rule := components.NewDivider().ViewWithContext(inner)
	nav := s.nav.ViewWithContext(inner)
	user := s.userMenu.ViewWithContext(inner)

	top := lipgloss.JoinVertical(lipgloss.Left, title, rule, "", nav)
	bottom := lipgloss.JoinVertical(lipgloss.Left, rule, user)

	gap := height - lipgloss.Height(top) - lipgloss.Height(bottom)
	if gap < 1 {
		gap = 1
	}
	body := lipgloss.JoinVertical(lipgloss.Left, top, lipgloss.NewStyle().Height(gap).Render(""), bottom)
	return sidebarStyle(ctx.Theme, s.sidebarWidth, height).Render(body)
}
