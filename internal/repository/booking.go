package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Save writes the booking row and one ticket row per visitor inside a single
// transaction. Any failure rolls the whole booking back.
func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingQuery := `INSERT INTO bookings (booking_id, visit_date, booking_date, total_quantity, total_price, transaction_id, email)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err = tx.ExecContext(
		ctx, bookingQuery,
		b.BookingID, b.VisitDate, b.BookingDate,
		b.TotalQuantity, b.TotalPrice, b.TransactionID, b.Email,
	); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrBookingExists
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	ticketQuery := `INSERT INTO tickets (ticket_id, booking_id, name, age, ticket_type, price)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	for _, t := range b.Tickets {
		if _, err = tx.ExecContext(
			ctx, ticketQuery,
			t.TicketID, t.BookingID, t.Name, t.Age, string(t.TicketType), t.Price,
		); err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}
	}

	return tx.Commit()
}

// CountTickets reports how many ticket rows exist for a booking.
func (r *BookingRepository) CountTickets(ctx context.Context, bookingID int) (int, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE booking_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan ticket count: %w", err)
	}

	return count, nil
}
