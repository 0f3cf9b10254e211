package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitlistFormData_Row(t *testing.T) {
	f := WaitlistFormData{Name: "Ada", Email: "ada@example.com"}

	row := f.Row()
	assert.Equal(t, "Ada", row.Name)
	assert.Equal(t, "ada@example.com", row.Email)
	assert.Empty(t, row.Company)
	assert.Equal(t, SourceWebsite, row.Source)
}

func TestFormState(t *testing.T) {
	state := ContactFormData{Name: "Ada", Email: "ada@example.com", Message: "hi"}.State()
	assert.Equal(t, "hi", state.Get("message"))
	assert.Empty(t, state.Get("company"))

	var empty FormState
	assert.Empty(t, empty.Get("name"))
}

func TestSubmissionResult_Succeeded(t *testing.T) {
	assert.True(t, SubmissionResult{SubmissionStatus: SubmissionStatus{Status: StatusSuccess}}.Succeeded())
	assert.False(t, SubmissionResult{SubmissionStatus: SubmissionStatus{Status: StatusError}}.Succeeded())
	assert.Equal(t, StatusIdle, IdleStatus().Status)
}
