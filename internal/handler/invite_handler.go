package handler

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/user-registry/internal/dto"
	"github.com/octobees/user-registry/internal/mailer"
	middlewarepkg "github.com/octobees/user-registry/internal/middleware"
	"github.com/octobees/user-registry/internal/service"
)

const msgInviteSent = "Invitation email has been sent"

// InviteHandler accepts invitation requests and hands them to the mailer.
type InviteHandler struct {
	mailer mailer.Mailer
}

// NewInviteHandler constructs an InviteHandler.
func NewInviteHandler(m mailer.Mailer) *InviteHandler {
	return &InviteHandler{mailer: m}
}

// Send handles POST /send_invite requests. The send itself runs on a
// detached goroutine: the response acknowledges scheduling, never
// delivery, and transport failures are only visible in the server log.
func (h *InviteHandler) Send(c echo.Context) error {
	var req dto.InviteRequest
	if err := c.Bind(&req); err != nil {
		return Message(c, http.StatusBadRequest, "invalid payload")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return Message(c, http.StatusBadRequest, "email, subject and message are required")
	}
	if err := service.ValidateEmail(req.Email); err != nil {
		return Message(c, http.StatusBadRequest, err.Error())
	}

	inv := mailer.Invitation{To: req.Email, Subject: req.Subject, Body: req.Message}
	rid := middlewarepkg.RequestIDFromContext(c)

	go func() {
		if err := h.mailer.Send(context.Background(), inv); err != nil {
			log.Printf("request_id=%s invite delivery failed to=%s err=%v", rid, inv.To, err)
		}
	}()

	return Message(c, http.StatusOK, msgInviteSent)
}
