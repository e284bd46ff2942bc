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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"admin@nomina.pro", "sofia.martinez@example.com", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
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

func TestIsValidRFC(t *testing.T) {
	valid := []string{"GAPN850101XXX", "ROLC900202YYY", "abc010101ab1"}
	invalid := []string{"", "GAPN85010XXX", "GAPN850101XX", "1234850101XXX"}
	for _, rfc := range valid {
		if !IsValidRFC(rfc) {
			t.Errorf("IsValidRFC(%q) = false, want true", rfc)
		}
	}
	for _, rfc := range invalid {
		if IsValidRFC(rfc) {
			t.Errorf("IsValidRFC(%q) = true, want false", rfc)
		}
	}
}

func TestIsValidCURP(t *testing.T) {
	valid := []string{"GAPN850101HDFXXX01", "MAHS950303MJCZZZ03", "TOCM890606HDFTRA06"}
	invalid := []string{"", "GAPN850101XDFXXX01", "GAPN850101HDFXXX0", "GAPN850101HDFXXX0A"}
	for _, curp := range valid {
		if !IsValidCURP(curp) {
			t.Errorf("IsValidCURP(%q) = false, want true", curp)
		}
	}
	for _, curp := range invalid {
		if IsValidCURP(curp) {
			t.Errorf("IsValidCURP(%q) = true, want false", curp)
		}
	}
}

func TestIsValidNSSAndCLABE(t *testing.T) {
	if !IsValidNSS("12345678901") {
		t.Error("IsValidNSS(12345678901) = false, want true")
	}
	if IsValidNSS("1234567890A") || IsValidNSS("123") {
		t.Error("IsValidNSS accepted an invalid number")
	}
	if !IsValidCLABE("012180012345678901") {
		t.Error("IsValidCLABE(012180012345678901) = false, want true")
	}
	if IsValidCLABE("01218001234567890") || IsValidCLABE("01218001234567890X") {
		t.Error("IsValidCLABE accepted an invalid account")
	}
}

func TestIsValidDateAndMonth(t *testing.T) {
	if _, ok := IsValidDate("2024-07-20"); !ok {
		t.Error("IsValidDate(2024-07-20) = false, want true")
	}
	if _, ok := IsValidDate("2024-02-30"); ok {
		t.Error("IsValidDate(2024-02-30) = true, want false")
	}
	if m, ok := IsValidMonth("2024-07"); !ok || m.Month() != 7 {
		t.Error("IsValidMonth(2024-07) failed")
	}
	if _, ok := IsValidMonth("2024-7"); ok {
		t.Error("IsValidMonth(2024-7) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email format"},
	}
	if got := errs.Error(); got != "name: name is required; email: invalid email format" {
		t.Errorf("Error() = %q", got)
	}
	m := errs.ToMap()
	if m["email"] != "invalid email format" || len(m) != 2 {
		t.Errorf("ToMap() = %v", m)
	}
}

func TestIsInSlice(t *testing.T) {
	if !IsInSlice("asc", []string{"asc", "desc"}) {
		t.Error("IsInSlice(asc) = false, want true")
	}
	if IsInSlice("up", []string{"asc", "desc"}) {
		t.Error("IsInSlice(up) = true, want false")
	}
}
