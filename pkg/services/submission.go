package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nexacrm/landing/pkg/clients/emailjs"
	"github.com/nexacrm/landing/pkg/config"
	"github.com/nexacrm/landing/pkg/models"
	"github.com/nexacrm/landing/pkg/utils"
)

const (
	StepSheets = "sheets"
	StepEmail  = "email"

	WaitlistSuccessMessage = "You're on the list! We'll reach out as soon as early access opens."
	ContactSuccessMessage  = "Thank you! We'll get back to you soon."
)

// RowRecorder stores a waitlist signup outside the page, e.g. a spreadsheet web-hook
type RowRecorder interface {
	AppendRow(ctx context.Context, row models.SheetRow) error
}

// FormSubmissionService relays the landing page forms to external services
type FormSubmissionService interface {
	SubmitWaitlist(ctx context.Context, data models.WaitlistFormData) models.SubmissionResult
	SubmitContact(ctx context.Context, data models.ContactFormData) models.SubmissionResult
}

type formSubmissionServiceImpl struct {
	emailClient emailjs.Client
	recorder    RowRecorder
	config      *config.Config
	logger      *zap.Logger
}

// NewFormSubmissionService creates a new submission service.
// recorder may be nil, in which case waitlist rows are not recorded.
func NewFormSubmissionService(
	emailClient emailjs.Client,
	recorder RowRecorder,
	config *config.Config,
	logger *zap.Logger,
) FormSubmissionService {
	return &formSubmissionServiceImpl{
		emailClient: emailClient,
		recorder:    recorder,
		config:      config,
		logger:      logger,
	}
}

// FailureMessage is the single message shown for every failed attempt
func FailureMessage(supportEmail string) string {
	return fmt.Sprintf("Sorry, something went wrong. Please try again or email us directly at %s.", supportEmail)
}

type step struct {
	name string
	skip bool
	run  func(ctx context.Context) error
}

func (s *formSubmissionServiceImpl) SubmitWaitlist(ctx context.Context, data models.WaitlistFormData) models.SubmissionResult {
	company := data.Company
	if company == "" {
		company = "N/A"
	}

	steps := []step{
		{
			name: StepSheets,
			skip: s.recorder == nil || !s.config.Sheets.Active(),
			run: func(ctx context.Context) error {
				return s.recorder.AppendRow(ctx, data.Row())
			},
		},
		{
			name: StepEmail,
			run: func(ctx context.Context) error {
				return s.emailClient.Send(ctx, models.EmailMessage{
					FromName:  data.Name,
					FromEmail: data.Email,
					Company:   data.Company,
					Message:   fmt.Sprintf("New waitlist signup: %s (%s) from %s", data.Name, data.Email, company),
					ToEmail:   s.config.Email.Recipient,
				})
			},
		},
	}

	result := s.run(ctx, "waitlist", data.Email, steps, WaitlistSuccessMessage)
	if result.Succeeded() {
		result.CloseAfterMs = s.config.UI.ModalCloseDelay.Milliseconds()
	}
	return result
}

func (s *formSubmissionServiceImpl) SubmitContact(ctx context.Context, data models.ContactFormData) models.SubmissionResult {
	steps := []step{
		{
			name: StepEmail,
			run: func(ctx context.Context) error {
				return s.emailClient.Send(ctx, models.EmailMessage{
					FromName:  data.Name,
					FromEmail: data.Email,
					Message:   data.Message,
					ToEmail:   s.config.Email.Recipient,
				})
			},
		},
	}

	return s.run(ctx, "contact", data.Email, steps, ContactSuccessMessage)
}

// run executes the steps in order and stops at the first failure. Any failure
// collapses into the same error status; the step list only feeds the logs.
func (s *formSubmissionServiceImpl) run(ctx context.Context, form, email string, steps []step, successMessage string) models.SubmissionResult {
	result := models.SubmissionResult{
		ID:    uuid.NewString(),
		Steps: make([]models.StepResult, 0, len(steps)),
	}
	log := s.logger.With(
		zap.String("submission_id", result.ID),
		zap.String("form", form),
		zap.String("email_fp", utils.EmailFingerprint(email)),
	)

	for _, st := range steps {
		if st.skip {
			log.Debug("Skipping step", zap.String("step", st.name))
			result.Steps = append(result.Steps, models.StepResult{Name: st.name, Skipped: true})
			continue
		}

		if err := st.run(ctx); err != nil {
			log.Error("Submission step failed", zap.String("step", st.name), zap.Error(err))
			result.Steps = append(result.Steps, models.StepResult{Name: st.name})
			result.SubmissionStatus = models.SubmissionStatus{
				Status:  models.StatusError,
				Message: FailureMessage(s.config.UI.SupportEmail),
			}
			if succeeded := countOK(result.Steps); succeeded > 0 {
				log.Warn("Submission partially delivered", zap.Int("steps_ok", succeeded))
			}
			return result
		}
		result.Steps = append(result.Steps, models.StepResult{Name: st.name, OK: true})
	}

	log.Info("Submission delivered", zap.Int("steps_ok", countOK(result.Steps)))
	result.SubmissionStatus = models.SubmissionStatus{
		Status:  models.StatusSuccess,
		Message: successMessage,
	}
	result.Reset = true
	return result
}

func countOK(steps []models.StepResult) int {
	n := 0
	for _, st := range steps {
		if st.OK {
			n++
		}
	}
	return n
}
