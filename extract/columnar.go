package extract

import "strings"

// parseColumnarLine parses a line that carries an entire printed table row:
// company tokens, city, street and number, postal code, contact name,
// title, email, and optionally a phone number, in that order. It returns
// false unless the line holds both an email token and a postal-code token
// in the expected positions; only the columnar list layout produces such
// lines.
func parseColumnarLine(line string, fields []Field) (map[string]string, bool) {
	// Positional parsing depends on both anchors being configured.
	if matcherByName(fields, "email") == nil || matcherByName(fields, "postalcode") == nil {
		return nil, false
	}

	tokens := strings.Fields(line)
	emailIdx := -1
	for i, t := range tokens {
		if strings.Contains(t, "@") {
			emailIdx = i
			break
		}
	}
	if emailIdx < 0 {
		return nil, false
	}

	postalIdx := -1
	for i, t := range tokens[:emailIdx] {
		if postalRE.MatchString(t) {
			postalIdx = i
			break
		}
	}
	// The row needs company, city, and street tokens before the postal
	// code, and a two-token contact name between postal code and email.
	if postalIdx < 3 {
		return nil, false
	}
	after := tokens[postalIdx+1 : emailIdx]
	if len(after) < 2 {
		return nil, false
	}

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Name] = ""
	}
	set := func(name, v string) {
		for _, f := range fields {
			if strings.EqualFold(f.Name, name) {
				values[f.Name] = v
				return
			}
		}
	}

	set("Company", strings.Join(tokens[:postalIdx-2], " "))
	set("City", tokens[postalIdx-2])
	set("StreetNo", tokens[postalIdx-1])
	set("PostalCode", tokens[postalIdx])
	set("Name", strings.Join(after[:2], " "))
	if len(after) > 2 {
		set("Title", strings.Join(after[2:], " "))
	}
	set("Email", tokens[emailIdx])
	if m := phoneRE.FindString(strings.Join(tokens[emailIdx+1:], " ")); m != "" {
		set("Phone", strings.TrimSpace(m))
	}

	return values, true
}
