package delivery

import (
	"bytes"
	"context"
	"embed"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"

	"github.com/xenking/storefront/internal/domain/notify"
)

//go:embed templates/*.html templates/*.txt
var templateFS embed.FS

const (
	tmplConfirmation = "order_confirmation"
	tmplShipped      = "order_shipped"
	tmplDelivered    = "order_delivered"
)

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// SSL dials with implicit TLS (port 465) instead of STARTTLS.
	SSL bool
}

type mailData struct {
	Name           string
	OrderNumber    string
	Total          string
	TrackingNumber string
}

var _ notify.Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends order emails with an HTML body and a plain-text
// alternative.
type SMTPMailer struct {
	from  string
	html  *htmltemplate.Template
	plain *texttemplate.Template
	send  func(m *gomail.Message) error
}

// NewSMTPMailer parses the embedded templates and returns a mailer dialing
// cfg's server for each message.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.SSL
	return newSMTPMailer(cfg.From, d.DialAndSend)
}

func newSMTPMailer(from string, send func(m ...*gomail.Message) error) (*SMTPMailer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse html templates")
	}
	plain, err := texttemplate.ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, errors.Wrap(err, "parse text templates")
	}
	return &SMTPMailer{
		from:  from,
		html:  html,
		plain: plain,
		send:  func(m *gomail.Message) error { return send(m) },
	}, nil
}

func (s *SMTPMailer) SendOrderConfirmation(ctx context.Context, email, name, orderNumber string, total decimal.Decimal) error {
	return s.sendTemplate(ctx, email, "Order Confirmation - "+orderNumber, tmplConfirmation, mailData{
		Name:        name,
		OrderNumber: orderNumber,
		Total:       total.StringFixed(2),
	})
}

func (s *SMTPMailer) SendOrderShipped(ctx context.Context, email, name, orderNumber, trackingNumber string) error {
	return s.sendTemplate(ctx, email, "Your order has shipped - "+orderNumber, tmplShipped, mailData{
		Name:           name,
		OrderNumber:    orderNumber,
		TrackingNumber: trackingNumber,
	})
}

func (s *SMTPMailer) SendOrderDelivered(ctx context.Context, email, name, orderNumber string) error {
	return s.sendTemplate(ctx, email, "Your order has been delivered - "+orderNumber, tmplDelivered, mailData{
		Name:        name,
		OrderNumber: orderNumber,
	})
}

func (s *SMTPMailer) sendTemplate(ctx context.Context, to, subject, name string, data mailData) error {
	m, err := s.message(to, subject, name, data)
	if err != nil {
		return err
	}
	// gomail has no context support; honour cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.send(m); err != nil {
		return errors.Wrapf(err, "send %s to %s", name, to)
	}
	return nil
}

func (s *SMTPMailer) message(to, subject, name string, data mailData) (*gomail.Message, error) {
	html, plain, err := s.render(name, data)
	if err != nil {
		return nil, err
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plain)
	m.AddAlternative("text/html", html)
	return m, nil
}

func (s *SMTPMailer) render(name string, data mailData) (html, plain string, err error) {
	var buf bytes.Buffer
	if err := s.html.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return "", "", errors.Wrapf(err, "render %s.html", name)
	}
	html = buf.String()

	buf.Reset()
	if err := s.plain.ExecuteTemplate(&buf, name+".txt", data); err != nil {
		return "", "", errors.Wrapf(err, "render %s.txt", name)
	}
	return html, buf.String(), nil
}
