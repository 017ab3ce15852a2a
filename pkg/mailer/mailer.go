// Package mailer sends transactional mail over SMTP.
package mailer

import (
	"crypto/tls"
	"fmt"

	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer delivers account mail. The SMTP client satisfies it in production;
// tests substitute their own.
type Mailer interface {
	SendVerificationCode(to, code string) error
}

type Client struct {
	cfg    utils.EmailConfig
	dialer *gomail.Dialer
	log    *zap.Logger
}

func New(cfg utils.EmailConfig, log *zap.Logger) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return &Client{
		cfg:    cfg,
		dialer: dialer,
		log:    log.With(zap.String("client", "mailer")),
	}
}

func (c *Client) SendVerificationCode(to, code string) error {
	// Without SMTP credentials the code is only logged. Keeps local
	// development working without a mail server.
	if c.cfg.Host == "" {
		c.log.Info("SMTP not configured, verification code logged only",
			zap.String("email", to),
			zap.String("otp_code", code))
		return nil
	}

	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetHeader("From", c.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Verify your account")
	msg.SetBody("text/plain", fmt.Sprintf("Your verification code is %s", code))

	if err := c.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send verification mail to %s: %w", to, err)
	}

	return nil
}
