package notification

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"charter/config"
	"charter/infras/otel"
	"charter/shared/constant"
)

const (
	whatsappRequestTimeout = 10 * time.Second
)

// WhatsAppSink posts messages to a Twilio-compatible messaging API. One
// failed attempt is retried once before the error is surfaced.
type WhatsAppSink struct {
	cfg    *config.Config
	client *http.Client
	otel   otel.Otel
}

func NewWhatsAppSink(cfg *config.Config, otel otel.Otel) *WhatsAppSink {
	return &WhatsAppSink{
		cfg:    cfg,
		client: &http.Client{Timeout: whatsappRequestTimeout},
		otel:   otel,
	}
}

func (s *WhatsAppSink) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".whatsapp.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.post(ctx, msg)
	if err == nil {
		return nil
	}

	log.Warn().Err(err).Str("destination", msg.Destination).Msg("whatsapp send failed, retrying once")

	if err = s.post(ctx, msg); err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}

	return nil
}

func (s *WhatsAppSink) post(ctx context.Context, msg Message) error {
	waCfg := s.cfg.Notification.WhatsApp

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimRight(waCfg.BaseURL, "/"), waCfg.AccountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:"+waCfg.FromNumber)
	form.Set("To", "whatsapp:"+s.normalize(msg.Destination))
	form.Set("Body", msg.Body)

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}

	request.SetBasicAuth(waCfg.AccountSID, waCfg.AuthToken)
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeFormURLEncoded)

	response, err := s.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to post whatsapp message: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("whatsapp api returned status %d", response.StatusCode)
	}

	return nil
}

// normalize prefixes bare local numbers with the configured country code.
func (s *WhatsAppSink) normalize(number string) string {
	if strings.HasPrefix(number, "+") {
		return number
	}

	return s.cfg.Notification.WhatsApp.CountryCode + number
}
