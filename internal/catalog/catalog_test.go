package catalog

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{999, "$999"},
		{1299, "$1,299"},
		{1499, "$1,499"},
		{1234567, "$1,234,567"},
		{-2500, "-$2,500"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%d): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestProducts(t *testing.T) {
	products := Products()
	if len(products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(products))
	}
	for _, p := range products {
		if len(p.Features) != 5 || len(p.Specs) != 5 {
			t.Errorf("%s: expected 5 features and 5 specs, got %d and %d", p.Name, len(p.Features), len(p.Specs))
		}
		if len(p.Highlights()) != 4 {
			t.Errorf("%s: expected 4 highlights, got %d", p.Name, len(p.Highlights()))
		}
	}

	products[0].Name = "changed"
	if Products()[0].Name != "ErgoSense Pro" {
		t.Error("Expected Products to return a fresh copy")
	}
}

func TestReversedAlternates(t *testing.T) {
	if Reversed(0) || !Reversed(1) || Reversed(2) {
		t.Error("Expected only odd sections to be reversed")
	}
}

func TestNavDropdowns(t *testing.T) {
	var dropdowns []string
	for _, l := range Nav() {
		if l.HasDropdown() {
			dropdowns = append(dropdowns, l.Label)
		}
	}
	if len(dropdowns) != 2 || dropdowns[0] != "Features" || dropdowns[1] != "Resources" {
		t.Errorf("Expected Features and Resources dropdowns, got %v", dropdowns)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{"ann@example.com", "ann@example.com", nil},
		{"  bob@chair.io \t", "bob@chair.io", nil},
		{"", "", ErrEmailEmpty},
		{"   ", "", ErrEmailEmpty},
		{"not an email", "", ErrEmailInvalid},
		{"ann@localhost", "", ErrEmailInvalid},
		{"ann@example.", "", ErrEmailInvalid},
		{"Ann <ann@example.com>", "", ErrEmailInvalid},
		{"@example.com", "", ErrEmailInvalid},
	}
	for _, tt := range tests {
		got, err := ValidateEmail(tt.in)
		if err != tt.err {
			t.Errorf("ValidateEmail(%q): expected error %v, got %v", tt.in, tt.err, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidateEmail(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
