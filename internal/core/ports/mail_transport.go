package ports

import "context"

// MailMessage is a single outbound email.
type MailMessage struct {
	To      string
	ToName  string
	Subject string
	Body    string // HTML body
}

// MailTransport is the send-one-message primitive supplied by the
// environment. It is injected into the notification dispatcher at
// construction so tests can substitute a fake; the core never talks to
// SMTP directly and holds no process-wide transport state.
//
// Send blocks until the transport accepts or rejects the message. The
// transport's own timeout applies; the core imposes none and does not
// support aborting an in-flight send.
type MailTransport interface {
	Send(ctx context.Context, message MailMessage) error
}
