package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"gopkg.in/gomail.v2"
)

func TestSMTPMailer_Send(t *testing.T) {
	var sent []*gomail.Message
	mailer := NewSMTPMailerWithSender("noreply@example.com", func(m ...*gomail.Message) error {
		sent = append(sent, m...)
		return nil
	})

	inv := Invitation{To: "ann@x.com", Subject: "Welcome", Body: "You are invited."}
	if err := mailer.Send(context.Background(), inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("expected exactly one message, got %d", len(sent))
	}

	var buf bytes.Buffer
	if _, err := sent[0].WriteTo(&buf); err != nil {
		t.Fatalf("failed to render message: %v", err)
	}
	raw := buf.String()
	for _, want := range []string{"From: noreply@example.com", "To: ann@x.com", "Subject: Welcome", "You are invited."} {
		if !strings.Contains(raw, want) {
			t.Fatalf("expected rendered message to contain %q, got:\n%s", want, raw)
		}
	}
	if !strings.Contains(raw, "text/plain") {
		t.Fatalf("expected plain-text body, got:\n%s", raw)
	}
}

func TestSMTPMailer_Send_Errors(t *testing.T) {
	mailer := NewSMTPMailerWithSender("noreply@example.com", func(m ...*gomail.Message) error {
		return errors.New("relay unreachable")
	})

	err := mailer.Send(context.Background(), Invitation{To: "ann@x.com"})
	if err == nil || !strings.Contains(err.Error(), "relay unreachable") {
		t.Fatalf("expected transport error to surface, got %v", err)
	}

	if err := mailer.Send(context.Background(), Invitation{}); err == nil {
		t.Fatalf("expected error for empty destination")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := mailer.Send(ctx, Invitation{To: "ann@x.com"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}
