package mail

import (
	"context"
	"errors"
)

// ErrSendFailed indicates that delivery to the mail relay failed. Callers on
// the contact flow log it and move on; it never fails the request that
// triggered the send.
var ErrSendFailed = errors.New("failed to send email")

// Message is a plaintext email ready for delivery.
type Message struct {
	To      string
	Subject string
	Body    string
	ReplyTo string
}

// Sender delivers a prepared message. Implementations must be safe for
// concurrent use by multiple request handlers.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
