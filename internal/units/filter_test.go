package units

import (
	"reflect"
	"testing"

	"srbrowser/internal/models"
)

func unit(id int, name string, class, picnum int, regions string) models.Unit {
	return models.Unit{
		ID:       id,
		Name:     name,
		Class:    class,
		Picnum:   picnum,
		Category: models.CategoryForClass(class),
		Regions:  regions,
	}
}

func ids(list []models.Unit) []int {
	out := make([]int, len(list))
	for i, u := range list {
		out[i] = u.ID
	}
	return out
}

func TestRegionMatching(t *testing.T) {
	global := unit(1, "Export Tank", 1, 100, "*")
	atSign := unit(2, "At Tank", 1, 100, "@")
	german := unit(3, "Leopard", 1, 101, "G")
	multi := unit(4, "Joint Fighter", 9, 200, "GUM")

	tests := []struct {
		name   string
		u      models.Unit
		region string
		want   bool
	}{
		{"wildcard record matches explicit code", global, "U", true},
		{"wildcard record matches wildcard filter", global, "*", true},
		{"at-sign record matches wildcard filter", atSign, "*", true},
		{"at-sign record matches explicit code", atSign, "G", true},
		{"explicit record matches its code", german, "G", true},
		{"explicit record rejects other code", german, "U", false},
		{"explicit record rejects wildcard filter", german, "*", false},
		{"multi-code record matches each code", multi, "U", true},
		{"custom code is a substring test", multi, "GU", true},
		{"region codes are case-sensitive", german, "g", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{Region: tt.region}
			if got := f.Matches(tt.u); got != tt.want {
				t.Errorf("region %q vs %q: got %v, want %v", tt.region, tt.u.Regions, got, tt.want)
			}
		})
	}
}

func TestFilterConjunctive(t *testing.T) {
	all := []models.Unit{
		unit(1, "Leopard 2", 1, 100, "G"),
		unit(2, "Eurofighter", 9, 200, "G"),
		unit(3, "Abrams", 1, 101, "U"),
		unit(4, "Gepard", 2, 102, "*"),
	}

	f := Filter{Category: models.CategoryLand, Region: "G"}
	got := ids(f.Apply(all))
	// Gepard is land and global, so it passes the G filter too.
	if !reflect.DeepEqual(got, []int{1, 4}) {
		t.Errorf("land+G = %v, want [1 4]", got)
	}
}

func TestFilterQuery(t *testing.T) {
	all := []models.Unit{
		unit(12, "Leopard 2", 1, 100, "G"),
		unit(34, "F-16 Falcon", 9, 200, "U"),
		unit(120, "Abrams", 1, 101, "U"),
	}

	// Case-insensitive name substring.
	if got := ids(Filter{Query: "leopard"}.Apply(all)); !reflect.DeepEqual(got, []int{12}) {
		t.Errorf("query leopard = %v", got)
	}
	// Substring of the decimal id: "12" hits both 12 and 120.
	if got := ids(Filter{Query: "12"}.Apply(all)); !reflect.DeepEqual(got, []int{12, 120}) {
		t.Errorf("query 12 = %v", got)
	}
}

func TestFilterPicnum(t *testing.T) {
	all := []models.Unit{
		unit(1, "A", 1, 100, ""),
		unit(2, "B", 9, 200, ""),
		unit(3, "C", 14, 100, ""),
	}
	picnum := 100
	got := ids(Filter{Picnum: &picnum}.Apply(all))
	if !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("picnum 100 = %v, want [1 3]", got)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	all := []models.Unit{
		unit(2, "Bravo", 1, 100, ""),
		unit(1, "alpha", 1, 100, ""),
	}
	filtered := Filter{}.Apply(all)
	Sort(filtered, SortIDAsc)

	if all[0].ID != 2 {
		t.Error("Apply leaked the sort back into the source slice")
	}
}

func TestSortModes(t *testing.T) {
	all := []models.Unit{
		unit(2, "Bravo", 3, 50, ""),
		unit(1, "alpha", 3, 70, ""),
		unit(3, "Charlie", 1, 60, ""),
	}

	tests := []struct {
		mode SortMode
		want []int
	}{
		{SortIDAsc, []int{1, 2, 3}},
		{SortIDDesc, []int{3, 2, 1}},
		{SortNameAsc, []int{1, 2, 3}}, // alpha < Bravo < Charlie, case-insensitive
		{SortNameDesc, []int{3, 2, 1}},
		{SortClass, []int{3, 1, 2}}, // class 1 first, then class 3 by name
		{SortPicnum, []int{2, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			list := make([]models.Unit, len(all))
			copy(list, all)
			Sort(list, tt.mode)
			if got := ids(list); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortModeFromName(t *testing.T) {
	tests := []struct {
		name string
		want SortMode
		ok   bool
	}{
		{"id", SortIDAsc, true},
		{"-id", SortIDDesc, true},
		{"name", SortNameAsc, true},
		{"-name", SortNameDesc, true},
		{"class", SortClass, true},
		{"picnum", SortPicnum, true},
		{"", SortIDAsc, true},
		{"bogus", SortIDAsc, false},
	}
	for _, tt := range tests {
		got, ok := SortModeFromName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SortModeFromName(%q) = %v,%v want %v,%v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
