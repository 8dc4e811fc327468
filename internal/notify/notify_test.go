package notify

import (
	"net/http"
	"sync"
	"testing"
	"time"

	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profutur/profutur-api/internal/config"
	"github.com/profutur/profutur-api/internal/domain"
)

func TestNew(t *testing.T) {
	_, isLog := New(&config.SendGridConfig{}).(*LogMailer)
	assert.True(t, isLog)

	_, isSendGrid := New(&config.SendGridConfig{APIKey: "SG.key", FromName: "PROFUTUR", FromEmail: "noreply@profutur.example.com"}).(*SendGridMailer)
	assert.True(t, isSendGrid)
}

func TestSendGridMailer_Send(t *testing.T) {
	var (
		mu       sync.Mutex
		received []*sgmail.SGMailV3
	)

	m := NewSendGridMailer("SG.key", "PROFUTUR", "noreply@profutur.example.com")
	m.deliver = func(msg *sgmail.SGMailV3) (int, string, error) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, msg)
		return http.StatusAccepted, "", nil
	}

	user := domain.User{Name: "Amani", Email: "amani@example.com"}
	cert := domain.NewCertificate(1, "CERT-1-1", time.Now(), "https://profutur.example.com")
	m.Send(
		CertificateIssued(user, domain.Formation{Title: "Go"}, cert),
		Message{Subject: "dropped, no recipient"},
	)
	m.Wait()

	require.Len(t, received, 1)
	assert.Equal(t, "[PROFUTUR] Your certificate is ready", received[0].Personalizations[0].Subject)
	assert.Equal(t, "amani@example.com", received[0].Personalizations[0].To[0].Address)
}

func TestLogMailer(t *testing.T) {
	m := NewLogMailer()
	m.Send(PaymentConfirmed(domain.User{Email: "a@example.com"}, domain.MobileMoneyTransaction{
		TransactionID: "TXN-1-1", Provider: domain.ProviderOrange, Amount: decimal.NewFromInt(5),
		Currency: "USD", Status: domain.PaymentCompleted,
	}))

	sent := m.Sent()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].TextContent, "5.00 USD")
}

func TestMessages_EscapeHTML(t *testing.T) {
	user := domain.User{Name: `<script>alert("x")</script>`, Email: "a@example.com"}

	cert := CertificateIssued(user, domain.Formation{Title: "Go & <b>gRPC</b>"}, domain.Certificate{
		CertificateNumber: "CERT-1-1",
		ExpiryDate:        time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		VerificationURL:   "https://profutur.example.com/verify/CERT-1-1",
	})
	assert.NotContains(t, cert.HTMLContent, "<script>")
	assert.NotContains(t, cert.HTMLContent, "<b>gRPC</b>")
	assert.Contains(t, cert.HTMLContent, "&lt;script&gt;")
	assert.Contains(t, cert.HTMLContent, "Go &amp; &lt;b&gt;gRPC&lt;/b&gt;")
	assert.Contains(t, cert.HTMLContent, `href="https://profutur.example.com/verify/CERT-1-1"`)
	assert.Contains(t, cert.TextContent, `<script>`)

	payment := PaymentConfirmed(user, domain.MobileMoneyTransaction{
		TransactionID: "TXN-1-1", Provider: domain.ProviderOrange, Amount: decimal.NewFromInt(5),
		Currency: "USD", Status: domain.PaymentCompleted,
	})
	assert.NotContains(t, payment.HTMLContent, "<script>")
	assert.Contains(t, payment.HTMLContent, "5.00 USD is completed")
}
