package domain

import (
	"sync"
	"time"
)

// DialogState is the current stage of a booking conversation.
type DialogState string

const (
	StateGreeting         DialogState = "greeting"
	StateMainMenu         DialogState = "main_menu"
	StateAskQuantity      DialogState = "ask_quantity"
	StateCollectVisitor   DialogState = "collect_visitor"
	StateAskEmail         DialogState = "ask_email"
	StateAskVisitDate     DialogState = "ask_visit_date"
	StateConfirmPayment   DialogState = "confirm_payment"
	StateAwaitTransaction DialogState = "await_transaction"
)

// Visitor is one ticket holder. TicketType is derived from Age at the moment
// the visitor is entered and is not re-derived later.
type Visitor struct {
	Name       string
	Age        int
	TicketType TicketCategory
}

// Session accumulates one conversation's state. A session is single-writer:
// the mutex is held for the whole chat turn.
type Session struct {
	mu sync.Mutex

	State          DialogState
	Quantity       int
	Visitors       []Visitor
	CurrentVisitor int
	Email          string
	VisitDate      time.Time
	TotalPrice     int
	BookingID      int
}

func NewSession() *Session {
	return &Session{State: StateGreeting}
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Reset clears all accumulated fields after a completed booking. The session
// returns to the main menu rather than the greeting: the user already saw it.
func (s *Session) Reset() {
	s.State = StateMainMenu
	s.Quantity = 0
	s.Visitors = nil
	s.CurrentVisitor = 0
	s.Email = ""
	s.VisitDate = time.Time{}
	s.TotalPrice = 0
	s.BookingID = 0
}
