// file: internals/helpers/format_test.go
package helper

import "testing"

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		sep   string
		want  string
	}{
		{"bulat tanpa desimal", 14, ".", "14"},
		{"bulat tetap bulat", 20, ".", "20"},
		{"satu desimal", 14.5, ".", "14.5"},
		{"dibulatkan ke satu desimal", 14.55, ".", "14.6"},
		{"dibulatkan turun", 14.34, ".", "14.3"},
		{"trailing nol hilang", 14.50, ".", "14.5"},
		{"nol", 0, ".", "0"},
		{"koma locale", 14.5, ",", "14,5"},
		{"koma pada bulat tidak muncul", 14, ",", "14"},
		{"sep kosong fallback titik", 14.5, "", "14.5"},
		{"hampir dua puluh", 19.96, ".", "20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatScore(tt.score, tt.sep); got != tt.want {
				t.Errorf("FormatScore(%v, %q) = %q, want %q", tt.score, tt.sep, got, tt.want)
			}
		})
	}
}

func TestDecimalSepFromLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"fr", ","},
		{"fr-FR", ","},
		{"id", ","},
		{"ID-id", ","},
		{"de-DE", ","},
		{"en", "."},
		{"en-US", "."},
		{"", "."},
		{"ja", "."},
	}
	for _, tt := range tests {
		if got := DecimalSepFromLocale(tt.locale); got != tt.want {
			t.Errorf("DecimalSepFromLocale(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}
