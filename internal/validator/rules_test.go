package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDNI(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"eight digits", "12345678", true},
		{"seven digits", "1234567", false},
		{"nine digits", "123456789", false},
		{"letters mixed in", "1234567a", false},
		{"leading space", " 12345678", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDNI(tt.value))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain address", "ana@example.com", true},
		{"subdomain and plus tag", "ana+tareas@mail.example.pe", true},
		{"dots and underscores", "a.b_c%d@example.org", true},
		{"missing at", "example.com", false},
		{"missing tld", "ana@example", false},
		{"one letter tld", "ana@example.c", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.value))
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantOK     bool
		wantReason string
	}{
		{"too short", "ab12", false, "La contrasena debe tener al menos 6 caracteres"},
		{"no digit", "abcdef", false, "La contrasena debe contener al menos un numero"},
		{"valid", "abc123", true, "OK"},
		{"digits only", "123456", true, "OK"},
		{"empty", "", false, "La contrasena debe tener al menos 6 caracteres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ValidatePassword(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
