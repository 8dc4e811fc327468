// Package notify sends transactional e-mails. Delivery is asynchronous and
// never fails the caller.
package notify

import (
	"fmt"
	"html/template"
	"net/mail"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/profutur/profutur-api/internal/config"
	"github.com/profutur/profutur-api/internal/domain"
)

type Message struct {
	To          mail.Address
	Subject     string
	TextContent string
	HTMLContent string
}

type Mailer interface {
	Send(messages ...Message)
}

// New returns a SendGrid mailer when an API key is configured and a logging
// mailer otherwise.
func New(conf *config.SendGridConfig) Mailer {
	if conf == nil || conf.APIKey == "" {
		return NewLogMailer()
	}

	return NewSendGridMailer(conf.APIKey, conf.FromName, conf.FromEmail)
}

var (
	certificateHTML = template.Must(template.New("certificate").Parse(
		`<p>Hello {{.Name}},</p><p>Congratulations on completing <strong>{{.Title}}</strong>. ` +
			`Your certificate <code>{{.Number}}</code> is valid until {{.Expiry}}.</p>` +
			`<p><a href="{{.URL}}">Verify your certificate</a></p>`,
	))
	paymentHTML = template.Must(template.New("payment").Parse(
		`<p>Hello {{.Name}},</p><p>Your {{.Provider}} payment {{.TransactionID}} of {{.Amount}} {{.Currency}} is {{.Status}}.</p>`,
	))
)

func CertificateIssued(user domain.User, formation domain.Formation, cert domain.Certificate) Message {
	expiry := cert.ExpiryDate.Format("2006-01-02")
	text := fmt.Sprintf(
		"Hello %s,\n\nCongratulations on completing %q. Your certificate %s is valid until %s.\nVerify it at %s\n",
		user.Name, formation.Title, cert.CertificateNumber, expiry, cert.VerificationURL,
	)

	return Message{
		To:          mail.Address{Name: user.Name, Address: user.Email},
		Subject:     "Your certificate is ready",
		TextContent: text,
		HTMLContent: render(certificateHTML, map[string]string{
			"Name":   user.Name,
			"Title":  formation.Title,
			"Number": cert.CertificateNumber,
			"Expiry": expiry,
			"URL":    cert.VerificationURL,
		}),
	}
}

func PaymentConfirmed(user domain.User, tx domain.MobileMoneyTransaction) Message {
	text := fmt.Sprintf(
		"Hello %s,\n\nYour %s payment %s of %s %s is %s.\n",
		user.Name, tx.Provider, tx.TransactionID, tx.Amount.StringFixed(2), tx.Currency, tx.Status,
	)

	return Message{
		To:          mail.Address{Name: user.Name, Address: user.Email},
		Subject:     "Payment " + string(tx.Status),
		TextContent: text,
		HTMLContent: render(paymentHTML, map[string]string{
			"Name":          user.Name,
			"Provider":      string(tx.Provider),
			"TransactionID": tx.TransactionID,
			"Amount":        tx.Amount.StringFixed(2),
			"Currency":      tx.Currency,
			"Status":        string(tx.Status),
		}),
	}
}

// render falls back to an empty body; the text part is always sent.
func render(t *template.Template, data map[string]string) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		zap.L().Warn("rendering e-mail body", zap.String("template", t.Name()), zap.Error(err))
		return ""
	}

	return b.String()
}

// LogMailer only logs messages. It keeps what it sent for inspection.
type LogMailer struct {
	mu   sync.Mutex
	sent []Message
}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(messages ...Message) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, msg := range messages {
		zap.L().Info("email not sent, no provider configured",
			zap.String("to", msg.To.Address),
			zap.String("subject", msg.Subject),
		)
		m.sent = append(m.sent, msg)
	}
}

func (m *LogMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]Message(nil), m.sent...)
}
