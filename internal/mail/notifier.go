package mail

import (
	"context"
	"fmt"
	"log/slog"

	"gitlab.com/cielprofs/website-backend/internal/model"
)

// Notifier sends the two best-effort emails that follow a stored contact
// submission: an alert to the site admin and an auto-reply to the submitter.
type Notifier struct {
	sender Sender
	admin  string
}

// NewNotifier creates a Notifier that alerts the given admin address.
func NewNotifier(sender Sender, admin string) *Notifier {
	return &Notifier{sender: sender, admin: admin}
}

// ContactSubmitted delivers both notifications for a contact message that is
// already committed to the database. Each mail is attempted exactly once;
// failures are logged and swallowed because the submission must not be
// failed retroactively.
func (n *Notifier) ContactSubmitted(ctx context.Context, msg model.ContactMessage) {
	alert := &Message{
		To:      n.admin,
		Subject: "New contact form message from " + msg.Name,
		Body:    adminAlertBody(msg),
		ReplyTo: msg.Email,
	}
	if err := n.sender.Send(ctx, alert); err != nil {
		slog.Warn("could not deliver admin alert",
			"error", err, "contact_id", msg.Id)
	}

	reply := &Message{
		To:      msg.Email,
		Subject: "We received your message",
		Body:    autoReplyBody(msg),
		ReplyTo: n.admin,
	}
	if err := n.sender.Send(ctx, reply); err != nil {
		slog.Warn("could not deliver auto-reply",
			"error", err, "contact_id", msg.Id)
	}
}

func adminAlertBody(msg model.ContactMessage) string {
	return fmt.Sprintf(
		"A new message arrived via the contact form.\n\n"+
			"Name:    %s\n"+
			"Email:   %s\n"+
			"Phone:   %s\n"+
			"Topic:   %s\n"+
			"Sent at: %s\n\n"+
			"%s\n",
		msg.Name, msg.Email, msg.Phone, msg.Topic, msg.CreatedAt, msg.Message)
}

func autoReplyBody(msg model.ContactMessage) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"thank you for reaching out. We received your message and will get\n"+
			"back to you as soon as possible.\n\n"+
			"Your message:\n%s\n",
		msg.Name, msg.Message)
}
