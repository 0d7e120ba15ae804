package domain

import "time"

// Ticket is one persisted ticket row.
type Ticket struct {
	TicketID   int
	BookingID  int
	Name       string
	Age        int
	TicketType TicketCategory
	Price      int
}

// Booking is the finalized record of a completed purchase. TransactionID is
// the free-form payment reference entered by the user; it is not verified.
type Booking struct {
	BookingID     int
	TransactionID string
	Email         string
	VisitDate     time.Time
	BookingDate   time.Time
	TotalQuantity int
	TotalPrice    int
	Tickets       []Ticket
}
