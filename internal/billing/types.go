// Package billing holds the read-only records the dashboard displays: groups,
// per-member obligations and the per-group totals derived from them.
package billing

// MemberStatus is the membership state of a competitor.
type MemberStatus string

const (
	StatusActive   MemberStatus = "active"
	StatusInactive MemberStatus = "inactive"
	StatusArchived MemberStatus = "archived"
)

// Label returns the Slovenian label shown in tables.
func (s MemberStatus) Label() string {
	switch s {
	case StatusInactive:
		return "Neaktiven"
	case StatusArchived:
		return "Arhiviran"
	default:
		return "Aktiven"
	}
}

// Group is a training group members belong to.
type Group struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"required"`
}

// MemberObligation is the outstanding balance of one member.
type MemberObligation struct {
	MemberID          string       `yaml:"member_id"`
	MemberName        string       `yaml:"member_name" validate:"required"`
	ParentName        string       `yaml:"parent_name,omitempty"`
	GroupID           string       `yaml:"group_id" validate:"required"`
	GroupName         string       `yaml:"-"`
	Status            MemberStatus `yaml:"status,omitempty" validate:"omitempty,oneof=active inactive archived"`
	Balance           float64      `yaml:"balance"`
	OpenItemsCount    int          `yaml:"open_items" validate:"gte=0"`
	OverdueItemsCount int          `yaml:"overdue_items" validate:"gte=0,ltefield=OpenItemsCount"`
	OverdueAmount     float64      `yaml:"overdue_amount" validate:"gte=0"`
}

// GroupObligation aggregates the obligations of a group's members.
type GroupObligation struct {
	GroupID           string
	GroupName         string
	TotalOpenDebt     float64
	OpenItemsCount    int
	OverdueItemsCount int
	OverdueAmount     float64
	MemberCount       int
}

// HasOverdue reports whether any item of the group is past due.
func (g GroupObligation) HasOverdue() bool {
	return g.OverdueItemsCount > 0
}

// Totals are the figures shown on the overview cards.
type Totals struct {
	TotalOpenDebt     float64
	OpenItemsCount    int
	OverdueItemsCount int
	OverdueAmount     float64
}
