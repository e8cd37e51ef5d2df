package sections

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tskpay/internal/billing"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

var memberColumns = []table.Column{
	{Title: "Tekmovalec", Width: 16},
	{Title: "Starš", Width: 14},
	{Title: "Skupina", Width: 12},
	{Title: "Status", Width: 10},
	{Title: "Stanje", Width: 12},
	{Title: "Odprte", Width: 7},
	{Title: "Zapadle", Width: 16},
}

// MemberObligationRow renders one member as table cells.
func MemberObligationRow(m billing.MemberObligation) table.Row {
	parent := m.ParentName
	if parent == "" {
		parent = noOverdue
	}
	return table.Row{
		m.MemberName,
		parent,
		m.GroupName,
		m.Status.Label(),
		billing.FormatAmount(m.Balance),
		billing.FormatCount(m.OpenItemsCount),
		OverdueCell(m.OverdueItemsCount, m.OverdueAmount),
	}
}

// MemberObligationTable lists member balances.
type MemberObligationTable struct {
	components.BaseComponent
	rows  []billing.MemberObligation
	table table.Model
}

// NewMemberObligationTable creates a table over rows.
func NewMemberObligationTable(rows []billing.MemberObligation) *MemberObligationTable {
	t := &MemberObligationTable{
		BaseComponent: components.NewBaseComponent(),
		table:         newTable(memberColumns),
	}
	t.SetRows(rows)
	return t
}

// SetRows replaces the displayed members.
func (t *MemberObligationTable) SetRows(rows []billing.MemberObligation) {
	t.rows = rows
	cells := make([]table.Row, len(rows))
	for i, row := range rows {
		cells[i] = MemberObligationRow(row)
	}
	setRows(&t.table, cells)
}

// Rows returns the displayed members.
func (t *MemberObligationTable) Rows() []billing.MemberObligation {
	return t.rows
}

// Update scrolls the table while focused.
func (t *MemberObligationTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return cmd
}

// Focus implements components.Focusable.
func (t *MemberObligationTable) Focus() { t.table.Focus() }

// Blur implements components.Focusable.
func (t *MemberObligationTable) Blur() { t.table.Blur() }

// Focused implements components.Focusable.
func (t *MemberObligationTable) Focused() bool { return t.table.Focused() }

// View renders the table.
func (t *MemberObligationTable) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the table, or an empty-state line.
func (t *MemberObligationTable) ViewWithContext(ctx components.RenderContext) string {
	if len(t.rows) == 0 {
		return components.MutedText("Ni članov.").ViewWithContext(ctx)
	}
	t.table.SetStyles(tableStyles(ctx.Theme))
	return t.ComputeStyle(ctx.Theme).Render(t.table.View())
}
