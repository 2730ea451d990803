package notifier

import (
	"fmt"
	"time"
)

// Message is an outbound notification payload.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Notifier hands a message to a delivery transport. Implementations exist for
// SMTP and for logging during development.
type Notifier interface {
	Send(msg Message) error
}

// ApprovalDetails carries the booking fields rendered into the
// confirmation mail.
type ApprovalDetails struct {
	Name       string
	Email      string
	Date       time.Time
	TimeSlot   string
	GroundType string
}

// BuildApprovalMessage renders the booking-approved confirmation mail.
func BuildApprovalMessage(d ApprovalDetails) Message {
	body := fmt.Sprintf(`<h1>Booking Confirmation</h1>
<p>Hello %s,</p>
<p>We're pleased to inform you that your booking has been approved!</p>
<h2>Booking Details:</h2>
<ul>
  <li><strong>Date:</strong> %s</li>
  <li><strong>Time:</strong> %s</li>
  <li><strong>Ground:</strong> %s</li>
</ul>
<p>Thank you for using our service!</p>`,
		d.Name,
		d.Date.Format("02/01/2006"),
		d.TimeSlot,
		d.GroundType,
	)

	return Message{
		To:      d.Email,
		Subject: "Your Booking has been Approved!",
		HTML:    body,
	}
}
