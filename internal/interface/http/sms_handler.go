package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aidigitalcashout-cell/v0-ecobank/pkg/sms"
)

// SMSHandler exposes the outbound messaging boundary. Provider is nil when no
// credentials are configured; the routes then answer 500 as the messaging
// contract requires.
type SMSHandler struct {
	Provider sms.Provider
	Logger   *logrus.Logger
}

func NewSMSHandler(provider sms.Provider, logger *logrus.Logger) *SMSHandler {
	return &SMSHandler{Provider: provider, Logger: logger}
}

// smsResponse is the wire shape fixed by the messaging contract; these routes
// do not use the standard API envelope.
type smsResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Status    string `json:"status,omitempty"`
	Type      string `json:"type,omitempty"`
	Error     string `json:"error,omitempty"`
}

type sendSMSRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Send handles POST /sms/send.
func (h *SMSHandler) Send(c *gin.Context) {
	var req sendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, smsResponse{Success: false, Error: "Missing required fields: to, message"})
		return
	}
	if h.Provider == nil {
		h.Logger.Error("SMS provider credentials not configured")
		c.JSON(http.StatusInternalServerError, smsResponse{Success: false, Error: "SMS service not configured"})
		return
	}

	category := sms.CategoryGeneral
	if req.Type != "" {
		category = sms.Category(req.Type)
	}
	rcpt, err := h.Provider.Send(c.Request.Context(), sms.Message{To: req.To, Body: req.Message, Category: category})
	if err != nil {
		h.Logger.WithError(err).Error("SMS send failed")
		c.JSON(http.StatusInternalServerError, smsResponse{Success: false, Error: err.Error()})
		return
	}

	h.Logger.WithField("message_id", rcpt.MessageID).Info("SMS sent")
	c.JSON(http.StatusOK, smsResponse{
		Success:   true,
		MessageID: rcpt.MessageID,
		Status:    rcpt.Status,
		Type:      string(category),
	})
}

type businessCardRequest struct {
	To            string `json:"to"`
	Sender        string `json:"sender"`
	AccountNumber string `json:"accountNumber"`
	Bank          string `json:"bank"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

// SendBusinessCard handles POST /sms/business-card. The card body is built
// server-side from the provided fields.
func (h *SMSHandler) SendBusinessCard(c *gin.Context) {
	var req businessCardRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" || req.Sender == "" {
		c.JSON(http.StatusBadRequest, smsResponse{Success: false, Error: "Missing required fields"})
		return
	}
	if h.Provider == nil {
		c.JSON(http.StatusInternalServerError, smsResponse{Success: false, Error: "SMS service not configured"})
		return
	}

	body := sms.BusinessCard(sms.Card{
		Sender:        req.Sender,
		AccountNumber: req.AccountNumber,
		Bank:          req.Bank,
		Phone:         req.Phone,
		Email:         req.Email,
	})
	rcpt, err := h.Provider.Send(c.Request.Context(), sms.Message{To: req.To, Body: body, Category: sms.CategoryNotification})
	if err != nil {
		h.Logger.WithError(err).Error("business card SMS failed")
		c.JSON(http.StatusInternalServerError, smsResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, smsResponse{Success: true, MessageID: rcpt.MessageID, Status: rcpt.Status})
}
