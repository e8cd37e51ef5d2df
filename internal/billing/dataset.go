package billing

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

// Dataset is the in-memory set of groups and member obligations. It is owned
// by the dashboard model and only touched from its update loop.
type Dataset struct {
	groups  []Group
	index   map[string]int
	members []MemberObligation
}

// NewDataset validates groups and members and builds a dataset. Members
// without an id receive a generated one; a member referencing an unknown
// group is rejected.
func NewDataset(groups []Group, members []MemberObligation) (*Dataset, error) {
	d := &Dataset{
		groups:  make([]Group, 0, len(groups)),
		index:   make(map[string]int, len(groups)),
		members: make([]MemberObligation, 0, len(members)),
	}

	v := validatorInstance()
	for i, group := range groups {
		if err := v.Struct(group); err != nil {
			return nil, convertValidationError(fmt.Sprintf("groups[%d]", i), err)
		}
		if _, exists := d.index[group.ID]; exists {
			return nil, apperrors.NewValidationError(fmt.Sprintf("groups[%d].id", i), fmt.Sprintf("duplicate group id %q", group.ID), nil)
		}
		d.index[group.ID] = len(d.groups)
		d.groups = append(d.groups, group)
	}

	for i, member := range members {
		if err := v.Struct(member); err != nil {
			return nil, convertValidationError(fmt.Sprintf("members[%d]", i), err)
		}
		if _, ok := d.index[member.GroupID]; !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("members[%d].group_id", i), fmt.Sprintf("references unknown group %q", member.GroupID), nil)
		}
		if member.MemberID == "" {
			member.MemberID = uuid.NewString()
		}
		if member.Status == "" {
			member.Status = StatusActive
		}
		d.members = append(d.members, member)
	}

	return d, nil
}

// Groups returns a copy of the groups in declaration order.
func (d *Dataset) Groups() []Group {
	out := make([]Group, len(d.groups))
	copy(out, d.groups)
	return out
}

// Group looks up a group by id.
func (d *Dataset) Group(id string) (Group, bool) {
	i, ok := d.index[id]
	if !ok {
		return Group{}, false
	}
	return d.groups[i], true
}

// Members returns every member obligation with its group name resolved.
func (d *Dataset) Members() []MemberObligation {
	return d.MembersOf("")
}

// MembersOf returns the members of groupID, or all members when groupID is empty.
func (d *Dataset) MembersOf(groupID string) []MemberObligation {
	out := make([]MemberObligation, 0, len(d.members))
	for _, member := range d.members {
		if groupID != "" && member.GroupID != groupID {
			continue
		}
		member.GroupName = d.groups[d.index[member.GroupID]].Name
		out = append(out, member)
	}
	return out
}

// GroupObligations aggregates members per group, in group order. Groups
// without members are included with zero totals.
func (d *Dataset) GroupObligations() []GroupObligation {
	out := make([]GroupObligation, len(d.groups))
	for i, group := range d.groups {
		out[i] = GroupObligation{GroupID: group.ID, GroupName: group.Name}
	}
	for _, member := range d.members {
		row := &out[d.index[member.GroupID]]
		row.MemberCount++
		row.TotalOpenDebt += member.Balance
		row.OpenItemsCount += member.OpenItemsCount
		row.OverdueItemsCount += member.OverdueItemsCount
		row.OverdueAmount += member.OverdueAmount
	}
	return out
}

// Totals sums every member obligation.
func (d *Dataset) Totals() Totals {
	var totals Totals
	for _, member := range d.members {
		totals.TotalOpenDebt += member.Balance
		totals.OpenItemsCount += member.OpenItemsCount
		totals.OverdueItemsCount += member.OverdueItemsCount
		totals.OverdueAmount += member.OverdueAmount
	}
	return totals
}

// RenameGroup trims name and stores it on group id. Blank names and unknown
// ids are rejected without change.
func (d *Dataset) RenameGroup(id, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperrors.NewValidationError("name", "group name must not be blank", nil)
	}
	i, ok := d.index[id]
	if !ok {
		return apperrors.NewValidationError("group_id", fmt.Sprintf("unknown group %q", id), nil)
	}
	d.groups[i].Name = trimmed
	return nil
}
