// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"salondesk-backend/models"
)

// Notify is the process-wide notifier, wired in main. Until InitNotifier
// runs it is a no-op so tests and handlers never nil-check it.
var Notify = &Notifier{}

// Notifier sends booking SMS through Twilio. When the Twilio env vars are
// absent it only logs, which is what local development wants.
type Notifier struct {
	client *twilio.RestClient
	from   string
}

func InitNotifier() {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")

	if accountSid == "" || authToken == "" || from == "" {
		log.Println("Twilio not configured, booking SMS disabled")
		return
	}

	Notify = &Notifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

// BookingConfirmed sends the confirmation SMS for a new appointment.
func (n *Notifier) BookingConfirmed(appt *models.Appointment) {
	msg := fmt.Sprintf("Hi %s, your appointment on %s at %s is confirmed. See you soon!",
		appt.ClientName,
		appt.AppointmentTime.Format("Jan 2"),
		appt.AppointmentTime.Format("15:04"))
	n.send(appt.ClientPhone, msg)
}

// BookingCancelled sends the cancellation notice.
func (n *Notifier) BookingCancelled(appt *models.Appointment) {
	msg := fmt.Sprintf("Hi %s, your appointment on %s at %s has been cancelled.",
		appt.ClientName,
		appt.AppointmentTime.Format("Jan 2"),
		appt.AppointmentTime.Format("15:04"))
	n.send(appt.ClientPhone, msg)
}

func (n *Notifier) send(to, body string) {
	if to == "" {
		return
	}
	if n.client == nil {
		log.Printf("[SMS] (disabled) to=%s: %s", to, body)
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.from)
	params.SetBody(body)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		log.Printf("[SMS] failed to send to %s: %v", to, err)
	}
}
