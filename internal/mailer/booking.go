package mailer

import (
	"fmt"
	"strings"

	"github.com/arefins/consultation-booking/internal/model"
)

// Event types carried on booking queue messages and mapped to mail here.
const (
	EventNewBooking   = "new_booking"
	EventStatusUpdate = "status_update"
)

// BookingMails assembles the outbound messages for one booking event.
// A new booking produces two mails (a summary to the operator and a
// confirmation to the client); a status update produces one mail to the
// client.  Unknown event types produce nothing.
func BookingMails(eventType string, b model.Booking, operatorEmail string) []Message {
	switch eventType {
	case EventNewBooking:
		return []Message{
			{
				To:      operatorEmail,
				Subject: fmt.Sprintf("New Booking: %s", b.ClientName),
				Body:    operatorSummaryBody(b),
			},
			{
				To:      b.ClientEmail,
				Subject: "Booking Received - Pending Confirmation",
				Body:    clientReceivedBody(b),
			},
		}
	case EventStatusUpdate:
		return []Message{
			{
				To:      b.ClientEmail,
				Subject: fmt.Sprintf("Booking %s", titleCase(string(b.Status))),
				Body:    statusUpdateBody(b),
			},
		}
	}
	return nil
}

func operatorSummaryBody(b model.Booking) string {
	date, window := slotWhen(b.Slot)
	var sb strings.Builder
	sb.WriteString("New consultation booking\n\n")
	fmt.Fprintf(&sb, "Client: %s\n", b.ClientName)
	fmt.Fprintf(&sb, "Email: %s\n", b.ClientEmail)
	fmt.Fprintf(&sb, "Phone: %s\n", b.ClientPhone)
	fmt.Fprintf(&sb, "Date: %s\n", date)
	fmt.Fprintf(&sb, "Time: %s\n", window)
	fmt.Fprintf(&sb, "Payment: %s\n", b.PaymentMethod)
	fmt.Fprintf(&sb, "Transaction ID: %s\n", b.TransactionID)
	fmt.Fprintf(&sb, "Amount: BDT %d\n", b.Amount)
	sb.WriteString("\nPlease verify the payment and confirm the booking.\n")
	return sb.String()
}

func clientReceivedBody(b model.Booking) string {
	date, window := slotWhen(b.Slot)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", b.ClientName)
	sb.WriteString("Your booking has been received and is pending payment verification.\n\n")
	fmt.Fprintf(&sb, "Reference: %s\n", b.Reference)
	fmt.Fprintf(&sb, "Date: %s\n", date)
	fmt.Fprintf(&sb, "Time: %s\n", window)
	fmt.Fprintf(&sb, "Amount: BDT %d\n", b.Amount)
	fmt.Fprintf(&sb, "Transaction ID: %s\n", b.TransactionID)
	sb.WriteString("\nWe'll confirm your booking shortly after verifying the payment.\n")
	return sb.String()
}

func statusUpdateBody(b model.Booking) string {
	date, window := slotWhen(b.Slot)
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\n", b.ClientName)
	fmt.Fprintf(&sb, "Your booking status has been updated to: %s\n\n", b.Status)
	fmt.Fprintf(&sb, "Date: %s\n", date)
	fmt.Fprintf(&sb, "Time: %s\n", window)
	switch b.Status {
	case model.StatusConfirmed:
		sb.WriteString("\nYour session is confirmed! We look forward to meeting you.\n")
	case model.StatusCancelled:
		sb.WriteString("\nIf you believe this is an error, please contact us.\n")
	}
	return sb.String()
}

// slotWhen renders the slot's date and HH:MM window, or TBD when the
// slot was deleted out from under the booking.
func slotWhen(s *model.Slot) (date, window string) {
	if s == nil {
		return "TBD", "TBD"
	}
	return s.Date, fmt.Sprintf("%s - %s", hhmm(s.StartTime), hhmm(s.EndTime))
}

func hhmm(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
