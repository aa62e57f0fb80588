// Package mail sends transactional email through an HTTP mail gateway.
package mail

import (
	"context"
	"log/slog"
	"time"

	"comfortstay/config"
	"comfortstay/internal/domain/service"
	"comfortstay/internal/errors"

	"github.com/go-resty/resty/v2"
)

const defaultMailTimeout = 10 * time.Second

// restyMailer implements service.Mailer against a JSON mail gateway API.
type restyMailer struct {
	client *resty.Client
	from   string
	logger *slog.Logger
}

// sendRequest is the gateway's expected payload.
type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NewRestyMailer is the constructor for restyMailer.
func NewRestyMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Endpoint == "" {
		return nil, errors.New("mail gateway config must be provided")
	}

	timeout := cfg.Mail.Timeout
	if timeout <= 0 {
		timeout = defaultMailTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.Mail.Endpoint).
		SetTimeout(timeout).
		SetHeader("Authorization", "Bearer "+cfg.Mail.APIKey).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &restyMailer{
		client: client,
		from:   cfg.Mail.From,
		logger: logger,
	}, nil
}

// Send delivers a single email through the configured gateway.
func (m *restyMailer) Send(ctx context.Context, mail *service.Mail) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(sendRequest{
			From:    m.from,
			To:      mail.To,
			Subject: mail.Subject,
			Body:    mail.Body,
		}).
		Post("/v1/send")
	if err != nil {
		return errors.Wrap(err, "failed to call mail gateway")
	}

	if resp.IsError() {
		return errors.Errorf("mail gateway returned status %d: %s", resp.StatusCode(), resp.String())
	}

	m.logger.LogAttrs(ctx, slog.LevelDebug, "mail sent",
		slog.String("to", mail.To),
		slog.String("subject", mail.Subject),
	)

	return nil
}
