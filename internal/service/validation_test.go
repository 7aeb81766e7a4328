package service

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := map[string]struct {
		email string
		valid bool
	}{
		"plain address":         {"ann@x.com", true},
		"mixed case":            {"Ann.Lee@Example.COM", true},
		"plus addressing":       {"ann+tag@example.co.uk", true},
		"surrounding spaces":    {"  ann@x.com  ", true},
		"empty":                 {"", false},
		"missing at sign":       {"ann.x.com", false},
		"missing tld":           {"ann@localhost", false},
		"leading dash in label": {"ann@-bad.com", false},
		"empty label":           {"ann@x..com", false},
		"spaces inside":         {"ann lee@x.com", false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.valid && err != nil {
				t.Fatalf("expected %q to be valid, got %v", tt.email, err)
			}
			if !tt.valid && err == nil {
				t.Fatalf("expected %q to be rejected", tt.email)
			}
		})
	}
}

func TestPhonePlausible(t *testing.T) {
	if !phonePlausible("+12125552368") {
		t.Fatalf("expected E.164 number to be plausible")
	}
	if !phonePlausible("(212) 555-2368") {
		t.Fatalf("expected national format to be plausible in default region")
	}
	if phonePlausible("not-a-phone") {
		t.Fatalf("expected garbage to be implausible")
	}
	if phonePlausible("") {
		t.Fatalf("expected empty value to be implausible")
	}
}
