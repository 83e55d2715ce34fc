package models

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name           string
		page, limit    int
		total          int
		wantTotalPages int
	}{
		{"exact multiple", 1, 12, 24, 2},
		{"partial last page", 1, 12, 25, 3},
		{"fewer than one page", 1, 12, 5, 1},
		{"empty result", 1, 12, 0, 0},
		{"limit one", 3, 1, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.Page != tt.page || p.Limit != tt.limit || p.Total != tt.total {
				t.Errorf("pagination echoes wrong inputs: %+v", p)
			}
		})
	}
}
