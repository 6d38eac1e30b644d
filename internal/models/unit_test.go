package models

import "testing"

func TestGlobal(t *testing.T) {
	tests := []struct {
		regions string
		want    bool
	}{
		{"*", true},
		{"@", true},
		{"G*", true},
		{"GUM", false},
		{"", false},
	}
	for _, tt := range tests {
		u := Unit{Regions: tt.regions}
		if got := u.Global(); got != tt.want {
			t.Errorf("Global(%q) = %v, want %v", tt.regions, got, tt.want)
		}
	}
}
