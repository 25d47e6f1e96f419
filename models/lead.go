package models

// LeadSubmission is the generic site-form payload (contact blocks, vacancy
// responses, modal categories) forwarded to the CRM as a lead.
type LeadSubmission struct {
	Type   string     `json:"type"`
	Fields LeadFields `json:"fields"`
}

// LeadFields carries the union of fields the site forms collect. Unused
// fields stay empty; the CRM mapping drops them.
type LeadFields struct {
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message,omitempty"`
	About      string `json:"about,omitempty"`
	Service    string `json:"service,omitempty"`
	Experience string `json:"experience,omitempty"`
	Category   string `json:"category,omitempty"`
}

// Comment picks the free-text body for the CRM comments block.
func (f LeadFields) Comment() string {
	if f.Message != "" {
		return f.Message
	}
	return f.About
}
