package ports

import (
	"context"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
)

type BookingRepo interface {
	// Save persists the booking and all of its tickets as a single
	// transaction: either every row commits or none do.
	Save(ctx context.Context, b *domain.Booking) error

	// CountTickets reports how many ticket rows exist for a booking.
	CountTickets(ctx context.Context, bookingID int) (int, error)
}
