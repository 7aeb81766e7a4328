package mailer

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Invitation is a single outbound message: destination, subject line and
// plain-text body. It only lives for the duration of one send.
type Invitation struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a single invitation message.
type Mailer interface {
	Send(ctx context.Context, inv Invitation) error
}

// SMTPMailer delivers invitations through a fixed SMTP relay. Each send
// opens a fresh session (STARTTLS + AUTH), transmits one message and
// closes the connection.
type SMTPMailer struct {
	from string
	send func(m ...*gomail.Message) error
}

// NewSMTPMailer builds a mailer for the given relay and process-wide
// credential pair.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	dialer := gomail.NewDialer(host, port, username, password)
	return &SMTPMailer{from: username, send: dialer.DialAndSend}
}

// NewSMTPMailerWithSender allows injecting a custom send function (useful
// for tests).
func NewSMTPMailerWithSender(from string, send func(m ...*gomail.Message) error) *SMTPMailer {
	return &SMTPMailer{from: from, send: send}
}

// Send transmits one invitation. The context is only consulted before
// dialing; the SMTP session itself runs to completion once started.
func (s *SMTPMailer) Send(ctx context.Context, inv Invitation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inv.To == "" {
		return errors.New("invitation destination must not be empty")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", inv.To)
	m.SetHeader("Subject", inv.Subject)
	m.SetBody("text/plain", inv.Body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("send invitation: %w", err)
	}
	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
