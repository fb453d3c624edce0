package extract

import (
	"strings"
	"testing"
)

func TestParseBlockLayout(t *testing.T) {
	text := "Acme Corp\nBerlin\nMain St 5\n10115\nJohn Doe\nManager\njohn@acme.com\n+49 30 1234567"

	records := Parse(text, DefaultFields())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	want := map[string]string{
		"Company":    "Acme Corp",
		"City":       "Berlin",
		"StreetNo":   "Main St 5",
		"PostalCode": "10115",
		"Name":       "John Doe",
		"Title":      "Manager",
		"Email":      "john@acme.com",
		"Phone":      "+49 30 1234567",
	}
	for name, value := range want {
		if got := records[0].Values[name]; got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}
}

func TestParseEmptyText(t *testing.T) {
	for _, text := range []string{"", "\n\n\n", "   \n \t \n"} {
		if records := Parse(text, DefaultFields()); len(records) != 0 {
			t.Errorf("Parse(%q) = %d records, want 0", text, len(records))
		}
	}
}

func TestParseGarbledText(t *testing.T) {
	// No structured pattern matches anywhere, so no record is emitted.
	text := "l1li!| #&% ,,..\nxXxXx\n---"
	if records := Parse(text, DefaultFields()); len(records) != 0 {
		t.Errorf("expected 0 records for garbled text, got %d", len(records))
	}
}

func TestParseNeverSwapsEmailAndPostal(t *testing.T) {
	// Pattern matching, not line position, decides the assignment: no
	// ordering of the two lines may ever put the email in PostalCode or
	// the postal code in Email.
	for _, text := range []string{"10115\njohn@acme.com", "john@acme.com\n10115"} {
		records := Parse(text, DefaultFields())
		if len(records) == 0 {
			t.Fatalf("Parse(%q): expected at least 1 record", text)
		}
		for _, rec := range records {
			if v := rec.Values["Email"]; v != "" && v != "john@acme.com" {
				t.Errorf("Parse(%q): Email = %q", text, v)
			}
			if v := rec.Values["PostalCode"]; v != "" && v != "10115" {
				t.Errorf("Parse(%q): PostalCode = %q", text, v)
			}
		}
	}
}

func TestParsePartialRecord(t *testing.T) {
	// Missing phone and title: fields stay present with empty values.
	text := "Acme Corp\nBerlin\n10115\njohn@acme.com"

	records := Parse(text, DefaultFields())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if len(rec.Values) != len(DefaultColumns) {
		t.Errorf("record has %d fields, want %d", len(rec.Values), len(DefaultColumns))
	}
	for _, name := range DefaultColumns {
		if _, present := rec.Values[name]; !present {
			t.Errorf("field %s missing from record", name)
		}
	}
	if rec.Values["Phone"] != "" {
		t.Errorf("Phone = %q, want empty", rec.Values["Phone"])
	}
	if rec.Values["Company"] != "Acme Corp" {
		t.Errorf("Company = %q, want %q", rec.Values["Company"], "Acme Corp")
	}
}

func TestParseMultipleRecordsPerPage(t *testing.T) {
	text := strings.Join([]string{
		"Acme Corp", "Berlin", "Main St 5", "10115",
		"John Doe", "Manager", "john@acme.com", "+49 30 1234567",
		"Beta AG", "Hamburg", "Dock 1", "20457",
		"Jane Roe", "CEO", "jane@beta.de", "+49 40 7654321",
	}, "\n")

	records := Parse(text, DefaultFields())
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if got := records[0].Values["Email"]; got != "john@acme.com" {
		t.Errorf("record 0 Email = %q, want %q", got, "john@acme.com")
	}
	if got := records[1].Values["Company"]; got != "Beta AG" {
		t.Errorf("record 1 Company = %q, want %q", got, "Beta AG")
	}
	if got := records[1].Values["Phone"]; got != "+49 40 7654321" {
		t.Errorf("record 1 Phone = %q, want %q", got, "+49 40 7654321")
	}
}

func TestParseColumnarLayout(t *testing.T) {
	// One printed table row per line, as produced when OCR keeps a row on
	// a single line.
	text := "PLZ Ort Strasse Firma\n" +
		"Acme GmbH Berlin Hauptstr.5 10115 Max Mustermann Geschaftsfuhrer max@acme.de +49 30 123456"

	records := Parse(text, DefaultFields())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	want := map[string]string{
		"Company":    "Acme GmbH",
		"City":       "Berlin",
		"StreetNo":   "Hauptstr.5",
		"PostalCode": "10115",
		"Name":       "Max Mustermann",
		"Title":      "Geschaftsfuhrer",
		"Email":      "max@acme.de",
		"Phone":      "+49 30 123456",
	}
	for name, value := range want {
		if got := records[0].Values[name]; got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}
}

func TestParseColumnarWithoutTitle(t *testing.T) {
	text := "Acme GmbH Berlin Hauptstr.5 10115 Max Mustermann max@acme.de"

	records := Parse(text, DefaultFields())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].Values["Title"]; got != "" {
		t.Errorf("Title = %q, want empty", got)
	}
	if got := records[0].Values["Name"]; got != "Max Mustermann" {
		t.Errorf("Name = %q, want %q", got, "Max Mustermann")
	}
}

func TestParseCustomColumns(t *testing.T) {
	fields := FieldsFor([]string{"Department", "Email"})
	text := "Purchasing\nbuyer@acme.com"

	records := Parse(text, fields)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].Values["Department"]; got != "Purchasing" {
		t.Errorf("Department = %q, want %q", got, "Purchasing")
	}
	if got := records[0].Values["Email"]; got != "buyer@acme.com" {
		t.Errorf("Email = %q, want %q", got, "buyer@acme.com")
	}
}

func TestParseNormalizesToNFC(t *testing.T) {
	// "u" + combining diaeresis must come out as a precomposed umlaut.
	text := "Müller GmbH\n10115\nmueller@example.de"

	records := Parse(text, DefaultFields())
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if got := records[0].Values["Company"]; got != "Müller GmbH" {
		t.Errorf("Company = %q, want %q", got, "Müller GmbH")
	}
}

func TestParseDeterministic(t *testing.T) {
	text := "Acme Corp\nBerlin\nMain St 5\n10115\nJohn Doe\nManager\njohn@acme.com\n+49 30 1234567"

	first := Parse(text, DefaultFields())
	for i := 0; i < 5; i++ {
		again := Parse(text, DefaultFields())
		if len(again) != len(first) {
			t.Fatalf("run %d: %d records, want %d", i, len(again), len(first))
		}
		for j := range first {
			for name, value := range first[j].Values {
				if again[j].Values[name] != value {
					t.Errorf("run %d record %d: %s = %q, want %q",
						i, j, name, again[j].Values[name], value)
				}
			}
		}
	}
}

func TestFieldsFor(t *testing.T) {
	fields := FieldsFor([]string{"Company", "Email", "Custom"})
	if fields[0].Match != nil {
		t.Error("Company should have no matcher")
	}
	if fields[1].Match == nil {
		t.Error("Email should have a matcher")
	}
	if fields[2].Match != nil {
		t.Error("Custom should have no matcher")
	}
}
