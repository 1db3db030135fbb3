package application

import (
	"bytes"
	"context"
	"html/template"
	"log"
	"time"

	"github.com/alamin516/roombooking-server/domain"
	"gopkg.in/gomail.v2"
)

const bookingMailSubject = "Booking successful"

const bookingMailBody = `<p>Booking id: {{.BookingID}}</p>
<p>Price: {{.Price}}</p>
<p>TransactionId: {{.TransactionId}}</p>
<p>Location: {{.Location}}</p>
<p>From: {{.From}}</p>
<p>To: {{.To}}</p>
<p>Host Email: {{.HostEmail}}</p>
<img src="{{.Image}}"/>
`

var bookingMailTemplate = template.Must(template.New("bookingConfirmation").Parse(bookingMailBody))

// MailSender is what the dispatcher needs from a mail transport.
// *gomail.Dialer satisfies it.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type NotificationService struct {
	store  domain.NotificationStore
	sender MailSender
	from   string
}

func NewNotificationService(store domain.NotificationStore, sender MailSender, from string) *NotificationService {
	return &NotificationService{
		store:  store,
		sender: sender,
		from:   from,
	}
}

// SendBookingConfirmation records the notification and mails the guest a
// summary of the booking. Callers fire it off the response path, a
// failure here never reaches the HTTP caller.
func (service *NotificationService) SendBookingConfirmation(ctx context.Context, booking *domain.Booking) error {
	notification := domain.Notification{
		To:        booking.GuestEmail,
		Subject:   bookingMailSubject,
		BookingId: booking.ID.Hex(),
		CreatedAt: time.Now(),
	}

	if _, err := service.store.Insert(ctx, &notification); err != nil {
		log.Printf("Failed to store booking notification: %s", err)
	}

	body, err := renderBookingMail(booking)
	if err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", service.from)
	message.SetHeader("To", booking.GuestEmail)
	message.SetHeader("Subject", bookingMailSubject)
	message.SetBody("text/html", body)

	if err := service.sender.DialAndSend(message); err != nil {
		log.Printf("Failed to send booking confirmation mail: %s", err)
		return err
	}

	return nil
}

func renderBookingMail(booking *domain.Booking) (string, error) {
	var buf bytes.Buffer
	err := bookingMailTemplate.Execute(&buf, map[string]interface{}{
		"BookingID":     booking.ID.Hex(),
		"Price":         booking.Price,
		"TransactionId": booking.TransactionId,
		"Location":      booking.Home.Location,
		"From":          booking.Home.From,
		"To":            booking.Home.To,
		"HostEmail":     booking.HostEmail,
		"Image":         booking.Home.Image,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
