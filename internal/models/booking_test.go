package models

import (
	"regexp"
	"testing"
)

func TestNewBookingReferenceFormat(t *testing.T) {
	re := regexp.MustCompile(`^TRV-[0-9A-Z]{8}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := NewBookingReference()
		if !re.MatchString(ref) {
			t.Fatalf("reference %q does not match TRV-XXXXXXXX", ref)
		}
		seen[ref] = true
	}
	if len(seen) < 99 {
		t.Errorf("references are not practically unique: %d distinct out of 100", len(seen))
	}
}

func TestIsValidBookingType(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{BookingTypeHotel, true},
		{BookingTypeFlight, true},
		{BookingTypePackage, true},
		{"car", false},
		{"Hotel", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidBookingType(tt.in); got != tt.want {
			t.Errorf("IsValidBookingType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
