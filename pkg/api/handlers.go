package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nexacrm/landing/pkg/components"
	"github.com/nexacrm/landing/pkg/config"
	"github.com/nexacrm/landing/pkg/models"
	"github.com/nexacrm/landing/pkg/services"
)

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	submissionService services.FormSubmissionService
	config            *config.Config
	logger            *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.FormSubmissionService, cfg *config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		config:            cfg,
		logger:            logger,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders the page with both forms idle. ?waitlist=open starts with the modal shown.
func (h *Handlers) LandingPage(c *gin.Context) {
	h.renderPage(c, http.StatusOK, h.pageData(idleForm(), idleForm(), c.Query("waitlist") == "open"))
}

// HandleWaitlist relays a waitlist signup to the spreadsheet and the email service
func (h *Handlers) HandleWaitlist(c *gin.Context) {
	var data models.WaitlistFormData

	if err := c.ShouldBind(&data); err != nil {
		fieldErrors := validationMessages(err)
		if wantsJSON(c) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "fields": fieldErrors})
			return
		}
		view := models.FormView{State: data.State(), Status: models.IdleStatus(), Errors: fieldErrors}
		h.renderPage(c, http.StatusBadRequest, h.pageData(view, idleForm(), true))
		return
	}

	result := h.submissionService.SubmitWaitlist(c.Request.Context(), data)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, result)
		return
	}
	h.renderPage(c, http.StatusOK, h.pageData(resultView(data.State(), result), idleForm(), true))
}

// HandleContact relays a contact message to the email service
func (h *Handlers) HandleContact(c *gin.Context) {
	var data models.ContactFormData

	if err := c.ShouldBind(&data); err != nil {
		fieldErrors := validationMessages(err)
		if wantsJSON(c) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "fields": fieldErrors})
			return
		}
		view := models.FormView{State: data.State(), Status: models.IdleStatus(), Errors: fieldErrors}
		h.renderPage(c, http.StatusBadRequest, h.pageData(idleForm(), view, false))
		return
	}

	result := h.submissionService.SubmitContact(c.Request.Context(), data)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, result)
		return
	}
	h.renderPage(c, http.StatusOK, h.pageData(idleForm(), resultView(data.State(), result), false))
}

func (h *Handlers) pageData(waitlist, contact models.FormView, waitlistOpen bool) components.PageData {
	return components.PageData{
		SupportEmail:       h.config.UI.SupportEmail,
		FailureMessage:     services.FailureMessage(h.config.UI.SupportEmail),
		NavScrollThreshold: h.config.UI.NavScrollThreshold,
		RevealThreshold:    h.config.UI.RevealThreshold,
		ModalCloseDelayMs:  h.config.UI.ModalCloseDelay.Milliseconds(),
		Waitlist:           waitlist,
		Contact:            contact,
		WaitlistOpen:       waitlistOpen,
	}
}

func (h *Handlers) renderPage(c *gin.Context, status int, data components.PageData) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := components.LandingPage(data).Render(c.Writer); err != nil {
		h.logger.Error("Error rendering page", zap.Error(err))
	}
}

func idleForm() models.FormView {
	return models.FormView{Status: models.IdleStatus()}
}

// resultView keeps the submitted values unless the submission asked for a reset
func resultView(state models.FormState, result models.SubmissionResult) models.FormView {
	if result.Reset {
		state = models.FormState{}
	}
	return models.FormView{State: state, Status: result.SubmissionStatus}
}

func wantsJSON(c *gin.Context) bool {
	return c.ContentType() == binding.MIMEJSON || strings.Contains(c.GetHeader("Accept"), binding.MIMEJSON)
}

// validationMessages turns binding errors into a field -> message map
func validationMessages(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": "Please check the form and try again."}
	}

	messages := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages[name] = "This field is required."
		case "email":
			messages[name] = "Please enter a valid email address."
		default:
			messages[name] = "This value is not valid."
		}
	}
	return messages
}
