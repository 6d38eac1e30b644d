package models

import "strings"

// Category is derived from the unit class and never stored in the game files.
type Category string

const (
	CategoryLand  Category = "land"
	CategoryAir   Category = "air"
	CategoryNaval Category = "naval"
)

// CategoryForClass maps a raw unit class value to its browse category.
// Classes 0-6 are land units, 7-12 air, everything above naval.
func CategoryForClass(class int) Category {
	switch {
	case class <= 6:
		return CategoryLand
	case class <= 12:
		return CategoryAir
	default:
		return CategoryNaval
	}
}

// Unit is one entry from a default.unit file. Multiple units may share a
// picnum (mesh reuse), and duplicate IDs are kept as-is.
type Unit struct {
	ID       int      `csv:"id"`
	Name     string   `csv:"name"`
	Class    int      `csv:"class"`
	Picnum   int      `csv:"picnum"`
	Category Category `csv:"category"`
	Regions  string   `csv:"regions"`
}

// Global reports whether the unit is available to every region
// (regions string contains one of the export wildcards).
func (u Unit) Global() bool {
	return strings.ContainsAny(u.Regions, "*@")
}
