package notify

import (
	"net/http"
	"sync"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type SendGridMailer struct {
	from       *sgmail.Email
	subjPrefix string
	deliver    func(m *sgmail.SGMailV3) (int, string, error)
	wg         sync.WaitGroup
}

func NewSendGridMailer(key, appName, fromEmail string) *SendGridMailer {
	client := sendgrid.NewSendClient(key)

	return &SendGridMailer{
		from:       sgmail.NewEmail(appName, fromEmail),
		subjPrefix: "[" + appName + "] ",
		deliver: func(m *sgmail.SGMailV3) (int, string, error) {
			res, err := client.Send(m)
			if err != nil {
				return 0, "", err
			}
			return res.StatusCode, res.Body, nil
		},
	}
}

func (s *SendGridMailer) Send(messages ...Message) {
	for _, msg := range messages {
		msg := msg
		if msg.To.Address == "" {
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.send(msg)
		}()
	}
}

// Wait blocks until every queued message has been handed to SendGrid.
func (s *SendGridMailer) Wait() {
	s.wg.Wait()
}

func (s *SendGridMailer) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	p.AddTos(sgmail.NewEmail(msg.To.Name, msg.To.Address))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(
		sgmail.NewContent("text/plain", msg.TextContent),
		sgmail.NewContent("text/html", msg.HTMLContent),
	)

	return m
}

func (s *SendGridMailer) send(msg Message) {
	status, body, err := s.deliver(s.prepare(msg))
	if err != nil {
		zap.L().Error("sending email", zap.String("to", msg.To.Address), zap.Error(err))
		return
	}
	if status >= http.StatusBadRequest {
		zap.L().Error("sending email",
			zap.String("to", msg.To.Address),
			zap.Int("status", status),
			zap.String("body", body),
		)
	}
}
