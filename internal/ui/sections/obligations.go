// Package sections holds the dashboard's data views: obligation tables and
// the group list. They render billing records and report selections through
// callbacks; the dashboard owns the data.
package sections

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tskpay/internal/billing"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

const noOverdue = "-"

var groupColumns = []table.Column{
	{Title: "Skupina", Width: 18},
	{Title: "Št. članov", Width: 10},
	{Title: "Skupni dolg", Width: 14},
	{Title: "Odprte postavke", Width: 15},
	{Title: "Zapadle", Width: 18},
}

// OverdueCell shows the overdue count with its amount, or "-" when nothing
// is overdue.
func OverdueCell(count int, amount float64) string {
	if count <= 0 {
		return noOverdue
	}
	return fmt.Sprintf("%d (%s)", count, billing.FormatAmount(amount))
}

// GroupObligationRow renders one group as table cells.
func GroupObligationRow(o billing.GroupObligation) table.Row {
	return table.Row{
		o.GroupName,
		billing.FormatCount(o.MemberCount),
		billing.FormatAmount(o.TotalOpenDebt),
		billing.FormatCount(o.OpenItemsCount),
		OverdueCell(o.OverdueItemsCount, o.OverdueAmount),
	}
}

// GroupObligationTable lists group obligations. enter on a row calls
// OnViewGroup with its group id.
type GroupObligationTable struct {
	components.BaseComponent
	rows        []billing.GroupObligation
	table       table.Model
	onViewGroup func(groupID string)
}

// NewGroupObligationTable creates a table over rows.
func NewGroupObligationTable(rows []billing.GroupObligation, onViewGroup func(groupID string)) *GroupObligationTable {
	t := &GroupObligationTable{
		BaseComponent: components.NewBaseComponent(),
		table:         newTable(groupColumns),
		onViewGroup:   onViewGroup,
	}
	t.SetRows(rows)
	return t
}

// SetRows replaces the displayed obligations.
func (t *GroupObligationTable) SetRows(rows []billing.GroupObligation) {
	t.rows = rows
	cells := make([]table.Row, len(rows))
	for i, row := range rows {
		cells[i] = GroupObligationRow(row)
	}
	setRows(&t.table, cells)
}

// Rows returns the displayed obligations.
func (t *GroupObligationTable) Rows() []billing.GroupObligation {
	return t.rows
}

// SetOnViewGroup replaces the row callback.
func (t *GroupObligationTable) SetOnViewGroup(fn func(groupID string)) {
	t.onViewGroup = fn
}

// Cursor returns the highlighted row index.
func (t *GroupObligationTable) Cursor() int {
	return t.table.Cursor()
}

// ViewGroup reports the group at index.
func (t *GroupObligationTable) ViewGroup(index int) {
	if index < 0 || index >= len(t.rows) || t.onViewGroup == nil {
		return
	}
	t.onViewGroup(t.rows[index].GroupID)
}

// Update moves the cursor and handles enter while focused.
func (t *GroupObligationTable) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && t.table.Focused() && key.String() == "enter" {
		t.ViewGroup(t.table.Cursor())
		return nil
	}
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return cmd
}

// Focus implements components.Focusable.
func (t *GroupObligationTable) Focus() { t.table.Focus() }

// Blur implements components.Focusable.
func (t *GroupObligationTable) Blur() { t.table.Blur() }

// Focused implements components.Focusable.
func (t *GroupObligationTable) Focused() bool { return t.table.Focused() }

// View renders the table.
func (t *GroupObligationTable) View() string {
	return t.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the table, or an empty-state line.
func (t *GroupObligationTable) ViewWithContext(ctx components.RenderContext) string {
	if len(t.rows) == 0 {
		return components.MutedText("Ni skupin z obveznostmi.").ViewWithContext(ctx)
	}
	t.table.SetStyles(tableStyles(ctx.Theme))
	return t.ComputeStyle(ctx.Theme).Render(t.table.View())
}

func newTable(columns []table.Column) table.Model {
	return table.New(table.WithColumns(columns), table.WithHeight(3))
}

// setRows replaces the rows and sizes the table to show all of them, up to
// a screenful.
func setRows(t *table.Model, rows []table.Row) {
	t.SetRows(rows)
	height := len(rows) + 2
	if height > 14 {
		height = 14
	}
	if height < 3 {
		height = 3
	}
	t.SetHeight(height)
	if t.Cursor() >= len(rows) && len(rows) > 0 {
		t.SetCursor(len(rows) - 1)
	}
}

func tableStyles(theme components.Theme) table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		BorderStyle(theme.Borders.Card).
		BorderForeground(theme.Palette.Border).
		BorderBottom(true).
		Foreground(theme.Palette.Muted.OnBase)
	styles.Cell = styles.Cell.Foreground(theme.Palette.Surface.OnBase)
	styles.Selected = styles.Selected.
		Bold(true).
		Foreground(theme.Palette.Accent.OnBase).
		Background(theme.Palette.Accent.Base)
	return styles
}
