package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/staff-data-intake/internal/models"
	"github.com/staff-data-intake/internal/service"
	"github.com/staff-data-intake/internal/validation"
)

// RosterMismatchMessage is shown when the submitted name and number are not on the roster.
const RosterMismatchMessage = "Invalid staff details. Please check your name and staff number."

// formView is the data rendered into form.html
type formView struct {
	Error       string
	FieldErrors map[string]string
	Entry       models.StaffEntry
}

// FormHandler handles the staff data form
type FormHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewFormHandler creates a new FormHandler
func NewFormHandler(services *service.Services, log zerolog.Logger) *FormHandler {
	return &FormHandler{
		services: services,
		log:      log.With().Str("handler", "form").Logger(),
	}
}

// ShowForm handles GET /
func (h *FormHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form.html", formView{})
}

// Success handles GET /success
func (h *FormHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", nil)
}

// Submit handles POST /submit
func (h *FormHandler) Submit(c *gin.Context) {
	var entry models.StaffEntry
	if err := c.ShouldBind(&entry); err != nil {
		h.log.Warn().Err(err).Msg("Failed to bind form")
		c.HTML(http.StatusBadRequest, "form.html", formView{Error: "Invalid form submission.", Entry: entry})
		return
	}

	_, err := h.services.Intake.Submit(c.Request.Context(), &entry)

	var verrs validation.Errors
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/success")

	case errors.As(err, &verrs):
		fieldErrors := make(map[string]string, len(verrs))
		for _, v := range verrs {
			fieldErrors[v.Field] = v.Message
		}
		c.HTML(http.StatusBadRequest, "form.html", formView{
			Error:       "Please fill in all required fields.",
			FieldErrors: fieldErrors,
			Entry:       entry,
		})

	case errors.Is(err, service.ErrRosterMismatch):
		c.HTML(http.StatusOK, "form.html", formView{
			Error: RosterMismatchMessage,
			Entry: entry,
		})

	default:
		h.log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Failed to save submission")
		renderError(c, http.StatusInternalServerError, "We could not save your details. Please try again.")
	}
}
