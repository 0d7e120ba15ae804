package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	repo      ports.BookingRepo
	notifiers []ports.BookingNotifier
	logger    logger.Logger
}

func NewBookingService(repo ports.BookingRepo, log logger.Logger, notifiers ...ports.BookingNotifier) *BookingService {
	return &BookingService{
		repo:      repo,
		notifiers: notifiers,
		logger:    log,
	}
}

// NewBookingID returns a random 6-digit booking id. Uniqueness is not checked
// up front; a collision surfaces as domain.ErrBookingExists on save.
func NewBookingID() int {
	return 100000 + rand.IntN(900000)
}

func newTicketID() int {
	return 1000000 + rand.IntN(9000000)
}

// Materialize converts a completed conversation into a persisted booking and
// dispatches the confirmation notifications. Ticket ids are generated per
// attempt, so a retry after a failed save gets fresh ones; the booking id
// stays with the session.
func (s *BookingService) Materialize(ctx context.Context, sess *domain.Session, transactionID string) (*domain.Booking, error) {
	booking := &domain.Booking{
		BookingID:     sess.BookingID,
		TransactionID: transactionID,
		Email:         sess.Email,
		VisitDate:     sess.VisitDate,
		BookingDate:   time.Now().UTC(),
		TotalQuantity: len(sess.Visitors),
		TotalPrice:    sess.TotalPrice,
	}

	// Per-ticket price comes from the price table at save time, not from the
	// quote shown during the conversation.
	booking.Tickets = make([]domain.Ticket, 0, len(sess.Visitors))
	for _, v := range sess.Visitors {
		booking.Tickets = append(booking.Tickets, domain.Ticket{
			TicketID:   newTicketID(),
			BookingID:  booking.BookingID,
			Name:       v.Name,
			Age:        v.Age,
			TicketType: v.TicketType,
			Price:      domain.PriceOf(v.TicketType),
		})
	}

	if err := s.repo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking: %w", err)
	}

	s.logger.Info("booking saved",
		logger.Int("booking_id", booking.BookingID),
		logger.Int("tickets", len(booking.Tickets)),
		logger.String("email", booking.Email),
	)

	// Operator-facing verification only: the booking is already committed, so
	// a mismatch is logged and never surfaced.
	if count, err := s.repo.CountTickets(ctx, booking.BookingID); err != nil {
		s.logger.Error("verify tickets",
			logger.Int("booking_id", booking.BookingID),
			logger.String("error", err.Error()),
		)
	} else if count != len(booking.Tickets) {
		s.logger.Error("ticket count mismatch",
			logger.Int("booking_id", booking.BookingID),
			logger.Int("expected", len(booking.Tickets)),
			logger.Int("found", count),
		)
	}

	for _, n := range s.notifiers {
		go n.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking)
	}

	return booking, nil
}
