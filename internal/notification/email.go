package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"charter/config"
	"charter/infras/otel"
	"charter/shared/constant"
)

// EmailSink sends rendered notifications over SMTP as HTML mail.
type EmailSink struct {
	cfg  *config.Config
	otel otel.Otel
}

func NewEmailSink(cfg *config.Config, otel otel.Otel) *EmailSink {
	return &EmailSink{
		cfg:  cfg,
		otel: otel,
	}
}

func (s *EmailSink) Send(ctx context.Context, msg Message) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".email.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailCfg := s.cfg.Notification.Email
	addr := net.JoinHostPort(emailCfg.SMTPHost, emailCfg.SMTPPort)

	var auth smtp.Auth
	if emailCfg.Username != "" {
		auth = smtp.PlainAuth("", emailCfg.Username, emailCfg.Password, emailCfg.SMTPHost)
	}

	payload := strings.Join([]string{
		"From: " + emailCfg.FromAddress,
		"To: " + msg.Destination,
		"Subject: " + msg.Subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		msg.Body,
	}, "\r\n")

	if err = smtp.SendMail(addr, auth, emailCfg.FromAddress, []string{msg.Destination}, []byte(payload)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
