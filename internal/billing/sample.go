package billing

import "github.com/google/uuid"

var sampleNamespace = uuid.MustParse("6f1c2a7e-3d4b-5e8f-9a01-b2c3d4e5f607")

func sampleID(kind, name string) string {
	return uuid.NewSHA1(sampleNamespace, []byte(kind+"/"+name)).String()
}

// Sample returns the built-in demo dataset used when no data file is
// configured. Ids are stable across runs.
func Sample() *Dataset {
	groups := []Group{
		{ID: sampleID("group", "mladinci"), Name: "Mladinci"},
		{ID: sampleID("group", "kadeti"), Name: "Kadeti"},
		{ID: sampleID("group", "cicibani"), Name: "Cicibani"},
		{ID: sampleID("group", "rekreacija"), Name: "Rekreacija"},
	}

	member := func(name, parent string, group int, status MemberStatus, balance float64, open, overdue int, overdueAmount float64) MemberObligation {
		return MemberObligation{
			MemberID:          sampleID("member", name),
			MemberName:        name,
			ParentName:        parent,
			GroupID:           groups[group].ID,
			Status:            status,
			Balance:           balance,
			OpenItemsCount:    open,
			OverdueItemsCount: overdue,
			OverdueAmount:     overdueAmount,
		}
	}

	members := []MemberObligation{
		member("Žiga Novak", "Mojca Novak", 0, StatusActive, 120, 2, 1, 60),
		member("Ana Kovač", "Peter Kovač", 0, StatusActive, 60, 1, 0, 0),
		member("Luka Horvat", "Maja Horvat", 0, StatusInactive, 180, 3, 2, 120),
		member("Nika Krajnc", "Tina Krajnc", 1, StatusActive, 45, 1, 1, 45),
		member("Jakob Zupan", "Rok Zupan", 1, StatusActive, 0, 0, 0, 0),
		member("Eva Potočnik", "Sara Potočnik", 2, StatusActive, 35.5, 1, 0, 0),
		member("Tim Vidmar", "", 2, StatusArchived, 71, 2, 2, 71),
	}

	d, err := NewDataset(groups, members)
	if err != nil {
		panic(err)
	}
	return d
}
