package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-31"); !ok {
		t.Error("IsValidDate(2024-01-31) = false, want true")
	}
	for _, s := range []string{"2024-13-01", "31-01-2024", "2024-01-32", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateRange(t *testing.T) {
	start, end, ok := IsValidDateRange("2024-01-01", "2024-01-31")
	if !ok {
		t.Fatal("IsValidDateRange(2024-01-01, 2024-01-31) = false, want true")
	}
	if !end.After(start) {
		t.Errorf("expected end after start, got %v / %v", start, end)
	}

	// same day is a valid range
	if _, _, ok := IsValidDateRange("2024-01-01", "2024-01-01"); !ok {
		t.Error("single-day range must be valid")
	}

	if _, _, ok := IsValidDateRange("2024-01-31", "2024-01-01"); ok {
		t.Error("inverted range must be invalid")
	}
	if _, _, ok := IsValidDateRange("bad", "2024-01-01"); ok {
		t.Error("malformed start must be invalid")
	}
}
