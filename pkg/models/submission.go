package models

// Status is the outcome shown to the visitor after a submit attempt
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// SubmissionStatus pairs an outcome with the message rendered next to the form.
// It is set as a whole once the attempt resolves, never field by field.
type SubmissionStatus struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// IdleStatus is the status of a form nobody has submitted yet
func IdleStatus() SubmissionStatus {
	return SubmissionStatus{Status: StatusIdle}
}

// StepResult records how one external call in a submission went
type StepResult struct {
	Name    string `json:"name"`
	Skipped bool   `json:"skipped,omitempty"`
	OK      bool   `json:"ok"`
}

// SubmissionResult is returned to the caller of a form endpoint
type SubmissionResult struct {
	ID string `json:"id"`
	SubmissionStatus
	// Reset tells the page to clear the form fields
	Reset bool `json:"reset"`
	// CloseAfterMs is set for the waitlist modal on success
	CloseAfterMs int64        `json:"closeAfterMs,omitempty"`
	Steps        []StepResult `json:"steps"`
}

// FormView is what the page needs to render one form: its values, status and field errors
type FormView struct {
	State  FormState
	Status SubmissionStatus
	Errors map[string]string
}

// Succeeded reports whether the submission reached every configured endpoint
func (r SubmissionResult) Succeeded() bool {
	return r.Status == StatusSuccess
}
