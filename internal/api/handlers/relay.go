package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"remote-jobs-api/internal/mailer"
	"remote-jobs-api/internal/metrics"
	"remote-jobs-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	relayMsgSent          = "Email sent successfully"
	relayMsgFailed        = "Failed to send email"
	relayMsgMissingApply  = "Missing required fields: email, firstName, or jobTitle"
	relayMsgMissingVerify = "Missing required field: email"
	relayMsgInvalidEmail  = "Invalid email address"
)

// RelayMailer sends the relay's transactional mails.
type RelayMailer interface {
	SendApplicationReceived(ctx context.Context, d mailer.ApplicationReceived) (string, error)
	SendVerificationRequest(ctx context.Context, d mailer.VerificationRequest) (string, error)
}

// RelayHandler serves the notification relay endpoints.
type RelayHandler struct {
	mailer    RelayMailer
	validator *validator.Validate
}

func NewRelayHandler(m RelayMailer, validate *validator.Validate) *RelayHandler {
	return &RelayHandler{
		mailer:    m,
		validator: validate,
	}
}

// SendJobApplicationEmail godoc
//
//	@Summary		Send the application confirmation mail
//	@Tags			relay
//	@Accept			json
//	@Produce		json
//	@Param			message	body		dto.JobApplicationEmailRequest	true	"Mail fields"
//	@Success		200		{object}	dto.RelayResponse				"Email sent"
//	@Failure		400		{object}	dto.RelayResponse				"Missing or invalid fields"
//	@Failure		401		{object}	dto.RelayResponse				"Invalid relay key"
//	@Failure		500		{object}	dto.RelayResponse				"SMTP failure"
//	@Router			/relay/job-application-email [post]
func (h *RelayHandler) SendJobApplicationEmail(c *gin.Context) {
	var req dto.JobApplicationEmailRequest
	if !h.bindRelayRequest(c, &req, relayMsgMissingApply, "email", "firstName", "jobTitle") {
		return
	}

	messageID, err := h.mailer.SendApplicationReceived(c.Request.Context(), mailer.ApplicationReceived{
		Email:       string(req.Email),
		FirstName:   req.FirstName,
		Surname:     req.Surname,
		JobTitle:    req.JobTitle,
		JobPosition: req.JobPosition,
		JobLink:     req.JobLink,
	})
	h.respondSent(c, mailer.TemplateApplicationReceived, messageID, err)
}

// SendVerificationEmail godoc
//
//	@Summary		Send the verification call mail
//	@Tags			relay
//	@Accept			json
//	@Produce		json
//	@Param			message	body		dto.VerificationEmailRequest	true	"Mail fields"
//	@Success		200		{object}	dto.RelayResponse				"Email sent"
//	@Failure		400		{object}	dto.RelayResponse				"Missing or invalid fields"
//	@Failure		401		{object}	dto.RelayResponse				"Invalid relay key"
//	@Failure		500		{object}	dto.RelayResponse				"SMTP failure"
//	@Router			/relay/verification-email [post]
func (h *RelayHandler) SendVerificationEmail(c *gin.Context) {
	var req dto.VerificationEmailRequest
	if !h.bindRelayRequest(c, &req, relayMsgMissingVerify, "email") {
		return
	}

	messageID, err := h.mailer.SendVerificationRequest(c.Request.Context(), mailer.VerificationRequest{
		Email:     string(req.Email),
		FirstName: req.FirstName,
		Surname:   req.Surname,
	})
	h.respondSent(c, mailer.TemplateVerificationRequest, messageID, err)
}

// bindRelayRequest checks the required fields on the raw body before decoding,
// so a blank field reports the relay's missing-fields message rather than a
// decoding error.
func (h *RelayHandler) bindRelayRequest(c *gin.Context, req any, missingMsg string, required ...string) bool {
	body, err := c.GetRawData()
	if err != nil || !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		c.JSON(http.StatusBadRequest, dto.RelayResponse{Success: false, Message: "Invalid request body"})
		return false
	}
	for _, field := range required {
		if strings.TrimSpace(gjson.GetBytes(body, field).String()) == "" {
			c.JSON(http.StatusBadRequest, dto.RelayResponse{Success: false, Message: missingMsg})
			return false
		}
	}

	if err := json.Unmarshal(body, req); err != nil {
		if errors.Is(err, openapi_types.ErrValidationEmail) {
			c.JSON(http.StatusBadRequest, dto.RelayResponse{Success: false, Message: relayMsgInvalidEmail})
		} else {
			c.JSON(http.StatusBadRequest, dto.RelayResponse{Success: false, Message: "Invalid request body", Error: err.Error()})
		}
		return false
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}

func (h *RelayHandler) respondSent(c *gin.Context, template, messageID string, err error) {
	metrics.ObserveRelayMessage(template, err)
	if err != nil {
		log.Error().Err(err).Str("template", template).Msg("Relay: error sending email")
		c.JSON(http.StatusInternalServerError, dto.RelayResponse{Success: false, Message: relayMsgFailed, Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.RelayResponse{Success: true, Message: relayMsgSent, MessageID: messageID})
}
