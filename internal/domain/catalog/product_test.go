package catalog

import "testing"

func TestNormalizeStockStatus(t *testing.T) {
	cases := []struct {
		name   string
		stock  int
		status ProductStatus
		want   ProductStatus
	}{
		{"zero stock forces out_of_stock", 0, ProductStatusActive, ProductStatusOutOfStock},
		{"zero stock overrides inactive", 0, ProductStatusInactive, ProductStatusOutOfStock},
		{"restocked product becomes active", 5, ProductStatusOutOfStock, ProductStatusActive},
		{"stocked active unchanged", 3, ProductStatusActive, ProductStatusActive},
		{"stocked inactive unchanged", 3, ProductStatusInactive, ProductStatusInactive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Product{Stock: tc.stock, Status: tc.status}
			NormalizeStockStatus(p)
			if p.Status != tc.want {
				t.Fatalf("got status %q, want %q", p.Status, tc.want)
			}
		})
	}
}

func TestValidProductStatus(t *testing.T) {
	for _, s := range []string{"active", "inactive", "out_of_stock"} {
		if !ValidProductStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []string{"", "archived", "ACTIVE"} {
		if ValidProductStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
