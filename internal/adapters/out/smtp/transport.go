// Package smtp provides the gomail-based implementation of the mail
// transport port.
package smtp

import (
	"context"

	"punarvasthra/internal/core/ports"

	"gopkg.in/gomail.v2"
)

// GomailTransport sends messages through an SMTP relay using gomail.
// Each Send dials a fresh connection; the notification volume of a single
// store does not warrant connection pooling.
type GomailTransport struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailTransport creates a transport for the given relay. The from
// address is stamped on every outgoing message.
func NewGomailTransport(host string, port int, username, password, from string) *GomailTransport {
	return &GomailTransport{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one message, blocking until the relay accepts or rejects it.
// The context is checked before dialing; gomail itself does not support
// cancellation of an in-flight send.
func (t *GomailTransport) Send(ctx context.Context, message ports.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", t.from)
	m.SetAddressHeader("To", message.To, message.ToName)
	m.SetHeader("Subject", message.Subject)
	m.SetBody("text/html", message.Body)

	return t.dialer.DialAndSend(m)
}
