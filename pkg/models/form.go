package models

// SourceWebsite tags every spreadsheet row coming from the landing page
const SourceWebsite = "Website"

// Represents the data structure coming from the waitlist modal
type WaitlistFormData struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Company string `json:"company" form:"company"`
}

// Represents the data structure coming from the contact section
type ContactFormData struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Message string `json:"message" form:"message" binding:"required"`
}

// SheetRow is the JSON body recorded by the spreadsheet web-hook
type SheetRow struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Source  string `json:"source"`
}

// EmailMessage carries the template variables relayed to the email service
type EmailMessage struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message"`
	ToEmail   string `json:"to_email"`
}

// FormState maps a form field name to its current value
type FormState map[string]string

func (f WaitlistFormData) State() FormState {
	return FormState{"name": f.Name, "email": f.Email, "company": f.Company}
}

func (f ContactFormData) State() FormState {
	return FormState{"name": f.Name, "email": f.Email, "message": f.Message}
}

// Get returns the value of a field, empty when unset or when the state is nil
func (s FormState) Get(field string) string {
	return s[field]
}

// Row converts a waitlist signup into a spreadsheet row
func (f WaitlistFormData) Row() SheetRow {
	return SheetRow{
		Name:    f.Name,
		Email:   f.Email,
		Company: f.Company,
		Source:  SourceWebsite,
	}
}
