package email

import (
	"context"
	"log"

	"github.com/Domenick1991/travelbook/internal/kafka"
)

// Sender delivers booking notifications. The current implementation only
// logs; swapping in an SMTP client keeps the same Send contract.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	log.Printf("send email to %s: %s booking %d (%s) total %.2f", event.Email, event.Type, event.BookingID, event.BookingType, event.TotalPrice)
	return nil
}
