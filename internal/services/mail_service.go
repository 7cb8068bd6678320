package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error
	SendMailToResetPassword(email, token string) error
	SendPaymentReceipt(email, planName string, amount int64, orderCode string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool
	RequireTLS bool

	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg     SMTPConfig
	bodyTpl *template.Template
}

const mailBodyTemplate = `<html><body style="font-family:sans-serif">
<h2>{{.AppName}}</h2>
<p>{{.Body}}</p>
{{if .CTAURL}}<p><a href="{{.CTAURL}}">{{.CTAText}}</a></p>{{end}}
<hr><small>{{.AppName}} &middot; {{.AppBaseURL}}</small>
</body></html>`

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	bodyTpl := template.Must(template.New("mailBody").Parse(mailBodyTemplate))
	return &smtpMailService{
		cfg:     cfg,
		bodyTpl: bodyTpl,
	}, nil
}

func (s *smtpMailService) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	html, err := s.render(body, ctaText, ctaURL)
	if err != nil {
		return err
	}
	return s.send(to, subject, html)
}

func (s *smtpMailService) SendMailToResetPassword(email, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.AppBaseURL, token)
	body := "We received a request to reset your password. The link below is valid for 15 minutes."
	html, err := s.render(body, "Reset password", resetURL)
	if err != nil {
		return err
	}
	return s.send(email, s.cfg.AppName+" password reset", html)
}

func (s *smtpMailService) SendPaymentReceipt(email, planName string, amount int64, orderCode string) error {
	body := fmt.Sprintf("Payment received for the %s plan: INR %d (order %s). Your subscription is now active.",
		planName, amount, orderCode)
	html, err := s.render(body, "", "")
	if err != nil {
		return err
	}
	return s.send(email, s.cfg.AppName+" payment receipt", html)
}

func (s *smtpMailService) render(body, ctaText, ctaURL string) (string, error) {
	var buf bytes.Buffer
	err := s.bodyTpl.Execute(&buf, map[string]string{
		"AppName":    s.cfg.AppName,
		"AppBaseURL": s.cfg.AppBaseURL,
		"Body":       body,
		"CTAText":    ctaText,
		"CTAURL":     ctaURL,
	})
	return buf.String(), err
}

func (s *smtpMailService) send(to, subject, htmlBody string) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))

	headers := []string{
		fmt.Sprintf("From: %s <%s>", s.cfg.FromName, s.cfg.From),
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"Date: " + time.Now().Format(time.RFC1123Z),
	}
	msg := []byte(strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		return s.sendSMTPS(addr, auth, to, msg)
	}
	return s.sendSTARTTLS(addr, auth, to, msg)
}

func (s *smtpMailService) sendSTARTTLS(addr string, auth smtp.Auth, to string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("smtp server %s does not support STARTTLS", s.cfg.Host)
	}

	return s.deliver(client, auth, to, msg)
}

func (s *smtpMailService) sendSMTPS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	return s.deliver(client, auth, to, msg)
}

func (s *smtpMailService) deliver(client *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
