package objects

import (
	"testing"
)

func TestPendingIntakeProductName(t *testing.T) {
	tests := []struct {
		name     string
		caption  string
		expected string
	}{
		{"multi-line caption", "Wireless Earbuds\nGreat sound", "Wireless Earbuds"},
		{"single-line caption", "Smart Watch", "Smart Watch"},
		{"empty caption", "", "Product"},
		{"whitespace-only caption", "   ", "Product"},
		{"empty first line", "\nDescription below", "Product"},
		{"first line with surrounding spaces", "  Phone Case  \ndetails", "Phone Case"},
		{"caption with many lines", "Gadget\nline two\nline three", "Gadget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending := &PendingIntake{Caption: tt.caption}
			if got := pending.ProductName(); got != tt.expected {
				t.Errorf("ProductName() = %q, want %q", got, tt.expected)
			}
		})
	}
}
