package ports

import (
	"context"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
)

type BookingNotifier interface {
	// NotifyBookingConfirmed dispatches a notification for a saved booking.
	// Delivery failure must not reach the caller; implementations log it.
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
}
