// Contact-form HTTP handler.
//
//   - POST /contact  (capture a contact-form submission)
//
// Clients may send an Idempotency-Key header; retries carrying the same key
// from the same address are acknowledged without inserting a duplicate row.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autokursai/landing-api/internal/http/middleware"
	"github.com/autokursai/landing-api/internal/i18n"
	"github.com/autokursai/landing-api/internal/services"
)

// ContactRequest is the JSON payload for a contact-form submission.
type ContactRequest struct {
	// Email is required and must contain "@".
	Email string `json:"email" example:"jonas@example.lt"`
	// Phone is optional.
	Phone string `json:"phone" example:"+37060000000"`
	// Message is optional free text.
	Message string `json:"message" example:"Norėčiau registruotis į kursus"`
}

// SubmitContact godoc
// @ID          submitContact
// @Summary     Submit the contact form
// @Description Validates the email, classifies the caller's device and city, and stores the submission. Safe to retry with an Idempotency-Key header.
// @Tags        Contact
// @Accept      json
// @Produce     json
//
// @Param       Idempotency-Key  header  string  false "Dedupe key for safe retries"
// @Param       body             body    handlers.ContactRequest  true  "Contact payload"
//
// @Success     200  {object}  handlers.SuccessResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid email"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /contact [post]
func (h *Handlers) SubmitContact(c *gin.Context) {
	// A replay of an already-accepted submission is acknowledged as-is.
	if middleware.IsReplay(c) {
		ok(c, http.StatusOK, SuccessResponse{Success: true})
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, localize(c, i18n.MsgInvalidEmail))
		return
	}

	ctx := c.Request.Context()
	ip := ClientIP(c)
	ua := c.Request.UserAgent()

	sub, err := h.contactSvc.Submit(ctx, ip, ua, services.SubmissionInput{
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			fail(c, http.StatusBadRequest, ErrCodeInvalidEmail, localize(c, i18n.MsgInvalidEmail))
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeContactFailed, localize(c, i18n.MsgContactFailed))
		return
	}

	middleware.CountSubmission()

	// Receipt persistence is best effort; a failure here must not turn an
	// accepted submission into a client-visible error.
	if key, hasKey := middleware.GetIdempotencyKey(c); hasKey {
		if err := h.contactSvc.SaveReceipt(ctx, ip, key, sub.ID, http.StatusOK); err != nil {
			middleware.LoggerFrom(c).Warn().Err(err).Msg("save submission receipt")
		}
	}

	ok(c, http.StatusOK, SuccessResponse{Success: true})
}
