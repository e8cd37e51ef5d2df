package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/billing"
	"github.com/alexisbeaulieu97/tskpay/internal/ui"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

// renderFunc adapts a render method to a contextual renderable.
type renderFunc func(ctx components.RenderContext) string

func (f renderFunc) View() string {
	return f(components.DefaultContext())
}

func (f renderFunc) ViewWithContext(ctx components.RenderContext) string {
	return f(ctx)
}

// View renders the current model state
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Nalaganje..."
	}

	ctx := components.DefaultContext()
	base := lipgloss.JoinVertical(lipgloss.Left,
		m.shell.ViewWithContext(ctx),
		footerStyle(ctx.Theme).Render(m.help.View(m.keys)),
	)

	switch {
	case m.logoutOpen:
		return m.logoutDialog.Place(ctx, m.width, m.height, base)
	case m.renameOpen:
		return m.renameDialog.Place(ctx, m.width, m.height, base)
	case m.viewMode == ViewHelp:
		return m.renderHelpView(ctx)
	default:
		return base
	}
}

// renderSection draws the content area next to the sidebar.
func (m *Model) renderSection(ctx components.RenderContext) string {
	var body ui.Renderable
	switch m.section {
	case SectionMembers:
		body = m.membersView()
	case SectionSettings:
		body = m.settingsView()
	default:
		body = m.overviewView(ctx.Width)
	}

	stack := components.VStack().WithGap(1)
	if m.errorMsg != "" {
		stack.Add(components.ErrorAlert(m.errorMsg).WithTitle("Napaka"))
	}
	stack.Add(body)
	return stack.ViewWithContext(ctx)
}

func (m *Model) overviewView(width int) ui.Renderable {
	totals := m.dataset.Totals()
	cardWidth := 0
	if width > 0 {
		cardWidth = (width - 2) / 3
	}

	kpis := components.HStack(
		kpiCard("Skupni odprti dolg", billing.FormatAmount(totals.TotalOpenDebt), cardWidth),
		kpiCard("Odprte postavke", billing.FormatCount(totals.OpenItemsCount), cardWidth),
		kpiCard("Zapadle postavke", billing.FormatCount(totals.OverdueItemsCount), cardWidth),
	).WithGap(1)

	return components.VStack(
		components.NewHeader("Pregled").WithSubtitle("Odprte obveznosti članov in skupin"),
		kpis,
		m.overviewList,
		m.memberContent,
		m.groupContent,
	).WithGap(1)
}

func kpiCard(title, value string, width int) *components.Card {
	card := components.NewCard(components.TitleText(value)).WithTitle(title)
	if width > 0 {
		card.WithWidth(width)
	}
	return card
}

func (m *Model) membersView() ui.Renderable {
	title := "Člani"
	if group, ok := m.dataset.Group(m.selectedGroup); ok {
		title = "Člani · " + group.Name
	}

	groups := components.NewCard(m.groupList).WithTitle("Skupine").WithWidth(24)
	return components.VStack(
		components.NewHeader(title).WithSubtitle("r preimenuje izbrano skupino"),
		components.HStack(groups, m.groupMembers).WithGap(2),
	).WithGap(1)
}

func (m *Model) settingsView() ui.Renderable {
	appearance := components.NewCard(m.darkMode, m.themeSelect).
		WithTitle("Videz").
		WithDescription("Tema se shrani in velja ob naslednjem zagonu.")

	profile := components.NewCard(
		components.LabelText("Prikazno ime"),
		m.displayName,
		components.LabelText("Opombe"),
		m.notesInput,
	).WithTitle("Profil")

	return components.VStack(
		components.NewHeader("Nastavitve"),
		appearance,
		profile,
	).WithGap(1)
}

func (m *Model) renderHelpView(ctx components.RenderContext) string {
	content := m.helpCache.render(m.mode, m.width-8, helpMarkdown(m.keys))
	box := helpOverlayStyle(ctx.Theme).Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
