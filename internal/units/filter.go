package units

import (
	"sort"
	"strconv"
	"strings"

	"srbrowser/internal/models"
)

// Filter narrows the full unit set down to the visible list. All
// predicates are independent and must all pass. Zero values mean
// "no restriction".
type Filter struct {
	Category models.Category // empty = all categories
	Query    string          // substring of name (case-insensitive) or of the decimal id
	Region   string          // region code, "*" for global/export, or free custom text
	Picnum   *int            // reverse lookup: only units using this picnum
}

// Matches reports whether the unit passes every active predicate.
func (f Filter) Matches(u models.Unit) bool {
	if f.Category != "" && u.Category != f.Category {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(u.Name), q) &&
			!strings.Contains(strconv.Itoa(u.ID), q) {
			return false
		}
	}
	if f.Region != "" && !matchesRegion(u, f.Region) {
		return false
	}
	if f.Picnum != nil && u.Picnum != *f.Picnum {
		return false
	}
	return true
}

// Apply builds a fresh filtered slice from the complete record set.
// The input is never mutated.
func (f Filter) Apply(all []models.Unit) []models.Unit {
	out := make([]models.Unit, 0, len(all))
	for _, u := range all {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}

// matchesRegion implements the region availability rule: globally
// exported units (* or @) match every filter, a wildcard filter matches
// only global units, and explicit codes are case-sensitive substring
// checks against the unit's region string.
func matchesRegion(u models.Unit, code string) bool {
	if code == "*" {
		return u.Global()
	}
	return strings.Contains(u.Regions, code) || u.Global()
}

// SortMode is one of the six fixed orderings offered by the browser.
type SortMode int

const (
	SortIDAsc SortMode = iota
	SortIDDesc
	SortNameAsc
	SortNameDesc
	SortClass
	SortPicnum
)

var sortModeNames = []string{"ID ↑", "ID ↓", "Name A-Z", "Name Z-A", "Class", "Picnum"}

func (m SortMode) String() string {
	if int(m) < 0 || int(m) >= len(sortModeNames) {
		return "ID ↑"
	}
	return sortModeNames[m]
}

// Next cycles to the following sort mode, wrapping around.
func (m SortMode) Next() SortMode {
	return SortMode((int(m) + 1) % len(sortModeNames))
}

// SortModeFromName resolves a mode by its display name or by the plain
// aliases used on the CLI (id, -id, name, -name, class, picnum).
func SortModeFromName(name string) (SortMode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "id", "id ↑", "":
		return SortIDAsc, true
	case "-id", "id ↓":
		return SortIDDesc, true
	case "name", "name a-z":
		return SortNameAsc, true
	case "-name", "name z-a":
		return SortNameDesc, true
	case "class":
		return SortClass, true
	case "picnum":
		return SortPicnum, true
	}
	return SortIDAsc, false
}

// Sort orders the slice in place according to the mode. Name ordering is
// case-insensitive; class ordering breaks ties by name.
func Sort(list []models.Unit, mode SortMode) {
	switch mode {
	case SortIDAsc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	case SortIDDesc:
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	case SortNameAsc:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
	case SortNameDesc:
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Name) > strings.ToLower(list[j].Name)
		})
	case SortClass:
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Class != list[j].Class {
				return list[i].Class < list[j].Class
			}
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		})
	case SortPicnum:
		sort.SliceStable(list, func(i, j int) bool { return list[i].Picnum < list[j].Picnum })
	}
}
