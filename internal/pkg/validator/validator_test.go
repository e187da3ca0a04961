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
		{"\t\n", true},
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"jane@x.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2024-01-01")
	if !ok {
		t.Fatal("IsValidDate(\"2024-01-01\") = false, want true")
	}
	if date.Year() != 2024 || date.Month() != 1 || date.Day() != 1 {
		t.Errorf("IsValidDate(\"2024-01-01\") parsed to %v", date)
	}

	invalid := []string{"", "2024-13-01", "2024-02-30", "01-01-2024", "2024/01/01", "yesterday"}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestMaxLen(t *testing.T) {
	if !MaxLen("abc", 3) {
		t.Error("MaxLen(\"abc\", 3) = false, want true")
	}
	if MaxLen("abcd", 3) {
		t.Error("MaxLen(\"abcd\", 3) = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid email format"},
		{Field: "status", Message: "status must be Present or Absent"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() returned %d entries, want 2", len(m))
	}
	if m["email"] != "invalid email format" {
		t.Errorf("ToMap()[\"email\"] = %q", m["email"])
	}
	if errs.Error() != "email: invalid email format; status: status must be Present or Absent" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
