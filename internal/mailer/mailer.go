package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/FanSt3/naturale-api/internal/config"
)

// Mailer sends the administrator welcome email over SMTP. The welcome email
// carries the plaintext initial password; the recipient is forced to change
// it on first login.
type Mailer struct {
	cfg     config.SMTPConfig
	baseURL string
}

// New creates a Mailer. The base URL is embedded in the login link inside
// the welcome email.
func New(cfg config.SMTPConfig, baseURL string) *Mailer {
	return &Mailer{cfg: cfg, baseURL: baseURL}
}

// Configured reports whether SMTP credentials are present. Administrator
// creation proceeds without mail when they are not.
func (m *Mailer) Configured() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// SendWelcome delivers the access-credentials email to a newly created
// administrator.
func (m *Mailer) SendWelcome(ctx context.Context, name, email, password string) error {
	body, err := renderWelcome(welcomeData{
		Name:     name,
		Email:    email,
		Password: password,
		LoginURL: m.baseURL + "/admin/login",
		Year:     time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat("Naturale Admin", m.cfg.Username); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Pristupni podaci za Naturale Admin Panel")
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

type welcomeData struct {
	Name     string
	Email    string
	Password string
	LoginURL string
	Year     int
}

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<!DOCTYPE html>
<html lang="sr">
<head>
  <meta charset="UTF-8">
  <title>Dobrodošli u Naturale Admin Panel</title>
</head>
<body style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; color: #333; background-color: #f7f7f7; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 20px auto; padding: 30px; background-color: #fff; border-radius: 8px;">
    <h1 style="color: #10b981; text-align: center;">Dobrodošli u Naturale Admin Panel</h1>
    <p>Poštovani/a <strong>{{.Name}}</strong>,</p>
    <p>Kreiran je vaš administratorski nalog za Naturale projekat. Ispod su vaši pristupni podaci:</p>
    <div style="background-color: #f5f5f5; padding: 20px; border-radius: 8px; border-left: 4px solid #10b981;">
      <p><strong>Email:</strong> {{.Email}}</p>
      <p><strong>Inicijalna lozinka:</strong> {{.Password}}</p>
    </div>
    <div style="background-color: #fff8e6; padding: 15px; border-radius: 6px; border-left: 4px solid #f59e0b;">
      <p><strong>Važno:</strong> Iz bezbednosnih razloga, nakon prve prijave bićete zatraženi da promenite inicijalnu lozinku.</p>
    </div>
    <p>Za pristup admin panelu, kliknite na dugme ispod:</p>
    <div style="text-align: center;">
      <a href="{{.LoginURL}}" style="display: inline-block; background-color: #10b981; color: white; text-decoration: none; padding: 12px 25px; border-radius: 4px; font-weight: bold;">Naturale Admin Panel</a>
    </div>
    <p>Za sva pitanja možete odgovoriti na ovaj email.</p>
    <div style="text-align: center; margin-top: 30px; padding-top: 20px; border-top: 1px solid #eee; font-size: 14px; color: #777;">
      <p>Srdačan pozdrav,<br/>Naturale Tim</p>
      <p>&copy; {{.Year}} Naturale. Sva prava zadržana.</p>
    </div>
  </div>
</body>
</html>`))

func renderWelcome(data welcomeData) (string, error) {
	var buf bytes.Buffer
	if err := welcomeTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
