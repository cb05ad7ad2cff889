// Package mailer renders transactional mail and hands it to an SMTP server.
package mailer

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	TemplateApplicationReceived = "application_received"
	TemplateVerificationRequest = "verification_request"
)

var ErrNotConfigured = errors.New("mailer: smtp is not configured")

// Sender delivers a composed message.
type Sender interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

// ApplicationReceived is the data of the application confirmation mail.
type ApplicationReceived struct {
	Email       string
	FirstName   string
	Surname     string
	JobTitle    string
	JobPosition string
	JobLink     string
}

// VerificationRequest is the data of the verification call mail.
type VerificationRequest struct {
	Email     string
	FirstName string
	Surname   string
}

type Identity struct {
	FromName    string
	FromAddress string
	ReplyTo     string
}

// Service composes messages from the embedded templates.
type Service struct {
	sender Sender
	from   Identity
}

func NewService(sender Sender, from Identity) *Service {
	if from.ReplyTo == "" {
		from.ReplyTo = from.FromAddress
	}
	return &Service{sender: sender, from: from}
}

// SendApplicationReceived mails the applicant and returns the Message-ID.
func (s *Service) SendApplicationReceived(ctx context.Context, d ApplicationReceived) (string, error) {
	subject := fmt.Sprintf("Application Received for %s - %s", d.JobTitle, s.from.FromName)
	data := struct {
		ApplicationReceived
		Sender string
	}{d, s.from.FromName}
	return s.send(ctx, TemplateApplicationReceived, d.Email, subject, data)
}

// SendVerificationRequest mails the applicant a request to book a verification call.
func (s *Service) SendVerificationRequest(ctx context.Context, d VerificationRequest) (string, error) {
	data := struct {
		VerificationRequest
		Sender string
	}{d, s.from.FromName}
	return s.send(ctx, TemplateVerificationRequest, d.Email, "Schedule Your Verification Call", data)
}

func (s *Service) send(ctx context.Context, tmpl, to, subject string, data any) (string, error) {
	body, err := renderTemplate(tmpl, data)
	if err != nil {
		return "", err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.from.FromName, s.from.FromAddress); err != nil {
		return "", fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return "", fmt.Errorf("invalid recipient address: %w", err)
	}
	if s.from.ReplyTo != "" {
		if err := msg.ReplyTo(s.from.ReplyTo); err != nil {
			return "", fmt.Errorf("invalid reply-to address: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetMessageID()
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := s.sender.Send(ctx, msg); err != nil {
		return "", err
	}

	messageID := ""
	if ids := msg.GetGenHeader(mail.HeaderMessageID); len(ids) > 0 {
		messageID = ids[0]
	}
	log.Info().Str("template", tmpl).Str("message_id", messageID).Msg("Mailer: message sent")
	return messageID, nil
}

func renderTemplate(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name+".html", data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return body.String(), nil
}

// SMTPConfig mirrors the smtp configuration section.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	TLSPolicy string
}

// SMTPSender delivers through an authenticated SMTP submission server.
type SMTPSender struct {
	client *mail.Client
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, ErrNotConfigured
	}
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(tlsPolicy(cfg.TLSPolicy)),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPSender{client: client}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg *mail.Msg) error {
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func tlsPolicy(name string) mail.TLSPolicy {
	switch strings.ToLower(name) {
	case "opportunistic":
		return mail.TLSOpportunistic
	case "none":
		return mail.NoTLS
	default:
		return mail.TLSMandatory
	}
}

// UnconfiguredSender fails every send. Keeps the relay endpoints reporting a
// mail failure when no SMTP host is set.
type UnconfiguredSender struct{}

func (UnconfiguredSender) Send(context.Context, *mail.Msg) error { return ErrNotConfigured }
