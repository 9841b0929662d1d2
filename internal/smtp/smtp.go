package smtp

import (
	"context"
	"fmt"
	"strings"

	"github.com/JMURv/trust-bridge/internal/config"
	md "github.com/JMURv/trust-bridge/internal/models"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const alertSubject = "[%s] %s security event: %s"

type EmailServer struct {
	enabled bool
	service string
	server  string
	port    int
	user    string
	pass    string
	admin   string
	send    func(m *gomail.Message) error
}

func New(conf config.Config) *EmailServer {
	s := &EmailServer{
		enabled: conf.Email.Enabled && conf.Email.Admin != "",
		service: conf.ServiceName,
		server:  conf.Email.Server,
		port:    conf.Email.Port,
		user:    conf.Email.User,
		pass:    conf.Email.Pass,
		admin:   conf.Email.Admin,
	}
	s.send = s.dialAndSend
	return s
}

func (s *EmailServer) GetMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	return m
}

func (s *EmailServer) dialAndSend(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error(
			"Failed to send an email",
			zap.Error(err),
		)
		return err
	}
	return nil
}

// SecurityAlert mails high and critical events to the administrator.
// Lower severities and a disabled mailer are ignored.
func (s *EmailServer) SecurityAlert(ctx context.Context, e *md.SecurityEvent) error {
	const op = "smtp.SecurityAlert"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if !s.enabled || (e.Severity != md.SeverityHigh && e.Severity != md.SeverityCritical) {
		return nil
	}

	details, err := json.MarshalIndent(e.Details, "", "  ")
	if err != nil {
		details = []byte("{}")
	}

	user := "anonymous"
	if e.UserID != nil {
		user = e.UserID.String()
	}

	body := strings.Join(
		[]string{
			fmt.Sprintf("Type: %s", e.Type),
			fmt.Sprintf("Severity: %s", e.Severity),
			fmt.Sprintf("User: %s", user),
			fmt.Sprintf("IP: %s", e.IP),
			fmt.Sprintf("User-Agent: %s", e.UA),
			fmt.Sprintf("Endpoint: %s", e.Endpoint),
			fmt.Sprintf("Time: %s", e.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST")),
			"",
			string(details),
		}, "\n",
	)

	m := s.GetMessageBase(
		fmt.Sprintf(alertSubject, s.service, strings.ToUpper(string(e.Severity)), e.Type),
		s.admin,
	)
	m.SetBody("text/plain", body)

	return s.send(m)
}
