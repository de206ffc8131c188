package notion

// Property bag extraction. Every helper is total: a missing property, a
// kind mismatch, or an empty value yields the zero value, never an error.
// Malformed source content must not abort document generation.

// TextValue extracts the plain text of a title or rich_text property,
// or a select property's option name. Checkbox properties render as
// "true"/"false". Unknown kinds yield "".
func TextValue(props map[string]Property, name string) string {
	p, ok := props[name]
	if !ok {
		return ""
	}
	switch p.Type {
	case "title":
		return PlainText(p.Title)
	case "rich_text":
		return PlainText(p.RichText)
	case "select":
		if p.Select == nil {
			return ""
		}
		return p.Select.Name
	case "checkbox":
		if p.Checkbox {
			return "true"
		}
		return "false"
	}
	return ""
}

// CheckboxValue extracts a checkbox property. Missing or mismatched
// properties read as false.
func CheckboxValue(props map[string]Property, name string) bool {
	p, ok := props[name]
	if !ok || p.Type != "checkbox" {
		return false
	}
	return p.Checkbox
}

// DateStart extracts the start value of a date property as the raw ISO
// string, or "" when the property is missing, not a date, or unset.
func DateStart(props map[string]Property, name string) string {
	p, ok := props[name]
	if !ok || p.Type != "date" || p.Date == nil {
		return ""
	}
	return p.Date.Start
}
