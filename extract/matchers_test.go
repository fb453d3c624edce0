package extract

import "testing"

func TestMatchEmail(t *testing.T) {
	tests := []struct {
		line  string
		want  string
		match bool
	}{
		{"john@acme.com", "john@acme.com", true},
		{"contact: jane.roe@sub.example.de more", "jane.roe@sub.example.de", true},
		{"no address here", "", false},
		{"broken@", "", false},
		{"@example.com", "", false},
		{"a@b.c", "", false}, // TLD needs at least two letters
	}

	for _, tt := range tests {
		got, ok := MatchEmail(tt.line)
		if ok != tt.match {
			t.Errorf("MatchEmail(%q) ok = %v, want %v", tt.line, ok, tt.match)
			continue
		}
		if got != tt.want {
			t.Errorf("MatchEmail(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestMatchPostalCode(t *testing.T) {
	tests := []struct {
		line  string
		want  string
		match bool
	}{
		{"10115", "10115", true},
		{"10115 Berlin", "10115", true},
		{"1234", "1234", true},   // OCR dropped a digit
		{"123456", "123456", true}, // OCR duplicated a digit
		{"123", "", false},
		{"1234567", "", false},
		{"Main St 5", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := MatchPostalCode(tt.line)
		if ok != tt.match {
			t.Errorf("MatchPostalCode(%q) ok = %v, want %v", tt.line, ok, tt.match)
			continue
		}
		if got != tt.want {
			t.Errorf("MatchPostalCode(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestMatchPhone(t *testing.T) {
	tests := []struct {
		line  string
		want  string
		match bool
	}{
		{"+49 30 1234567", "+49 30 1234567", true},
		{"Tel: +49 (0)30 123-456", "+49 (0)30 123-456", true},
		{"030 1234567", "", false}, // no international prefix
		{"10115", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := MatchPhone(tt.line)
		if ok != tt.match {
			t.Errorf("MatchPhone(%q) ok = %v, want %v", tt.line, ok, tt.match)
			continue
		}
		if got != tt.want {
			t.Errorf("MatchPhone(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestMatcherFor(t *testing.T) {
	if MatcherFor("Email") == nil {
		t.Error("expected matcher for Email")
	}
	if MatcherFor("POSTALCODE") == nil {
		t.Error("expected case-insensitive matcher lookup")
	}
	if MatcherFor("Company") != nil {
		t.Error("expected Company to be free-text")
	}
	if MatcherFor("Department") != nil {
		t.Error("expected custom field to be free-text")
	}
}
