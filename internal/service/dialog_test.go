package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/service/mocks"
	portmocks "github.com/Veer-w/Online-Chatbot-for-ticketing/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testMuseum = domain.MuseumInfo{
	Name:    "City Art Museum",
	Address: "Sector-12, Moshi, Pune",
	Hours:   "9:00 AM - 5:00 PM, Tuesday through Sunday (Closed on Mondays)",
	Phone:   "7083850807",
}

func newDialogService(t *testing.T) (*mocks.MockBookingMaterializer, *portmocks.MockPaymentQR, *DialogService) {
	t.Helper()
	bookings := mocks.NewMockBookingMaterializer(t)
	qr := portmocks.NewMockPaymentQR(t)
	svc := NewDialogService(bookings, qr, testMuseum, newTestLogger(t))
	return bookings, qr, svc
}

func sessionIn(state domain.DialogState) *domain.Session {
	sess := domain.NewSession()
	sess.State = state
	return sess
}

func TestDialog_Greeting_AdvancesOnAnyInput(t *testing.T) {
	_, _, svc := newDialogService(t)

	for _, input := range []string{"hi", "hello", "asdfgh", ""} {
		sess := domain.NewSession()

		resp := svc.Respond(context.Background(), sess, input)

		assert.Equal(t, domain.StateMainMenu, sess.State)
		assert.Equal(t, domain.ResponseOptions, resp.Type)
		assert.Equal(t, "Welcome to City Art Museum!", resp.Content.Title)
		assert.Equal(t, []string{"Book tickets", "Get museum information"}, resp.Content.Options)
	}
}

func TestDialog_MainMenu_BookTickets(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateMainMenu)

	resp := svc.Respond(context.Background(), sess, "I want to book tickets")

	assert.Equal(t, domain.StateAskQuantity, sess.State)
	assert.Equal(t, domain.ResponseText, resp.Type)
	assert.Contains(t, resp.Content.Message, "How many tickets")
}

func TestDialog_MainMenu_MuseumInformation(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateMainMenu)

	resp := svc.Respond(context.Background(), sess, "Get museum information")

	// Info panel does not leave the menu.
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Equal(t, domain.ResponseInfo, resp.Type)
	assert.Contains(t, resp.Content.Details, "Name: City Art Museum")
	assert.Contains(t, resp.Content.Details, "Phone: 7083850807")
	assert.Equal(t, []string{"Yes", "No"}, resp.Content.Options)
}

func TestDialog_MainMenu_Unrecognized(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateMainMenu)

	resp := svc.Respond(context.Background(), sess, "what is the weather")

	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Equal(t, domain.ResponseOptions, resp.Type)
	assert.Contains(t, resp.Content.Message, "didn't understand")
}

func TestDialog_AskQuantity(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantState domain.DialogState
		wantMsg   string
	}{
		{"not a number", "abc", domain.StateAskQuantity, "valid number"},
		{"below range", "0", domain.StateAskQuantity, "between 1 and 10"},
		{"above range", "11", domain.StateAskQuantity, "between 1 and 10"},
		{"negative", "-3", domain.StateAskQuantity, "between 1 and 10"},
		{"lower bound", "1", domain.StateCollectVisitor, "visitor 1"},
		{"upper bound", "10", domain.StateCollectVisitor, "visitor 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newDialogService(t)
			sess := sessionIn(domain.StateAskQuantity)

			resp := svc.Respond(context.Background(), sess, tt.input)

			assert.Equal(t, tt.wantState, sess.State)
			assert.Contains(t, resp.Content.Message, tt.wantMsg)
		})
	}
}

func TestDialog_AskQuantity_InitializesCollection(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateAskQuantity)

	svc.Respond(context.Background(), sess, " 3 ")

	assert.Equal(t, 3, sess.Quantity)
	assert.Equal(t, 1, sess.CurrentVisitor)
	assert.Empty(t, sess.Visitors)
}

func TestDialog_CollectVisitor_MissingColon(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateCollectVisitor)
	sess.Quantity = 2
	sess.CurrentVisitor = 1

	resp := svc.Respond(context.Background(), sess, "Alice30")

	assert.Equal(t, domain.StateCollectVisitor, sess.State)
	assert.Empty(t, sess.Visitors)
	assert.Equal(t, 1, sess.CurrentVisitor)
	assert.Contains(t, resp.Content.Message, "'Name: Age'")
}

func TestDialog_CollectVisitor_BadAge(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateCollectVisitor)
	sess.Quantity = 1
	sess.CurrentVisitor = 1

	resp := svc.Respond(context.Background(), sess, "Alice: old")

	assert.Empty(t, sess.Visitors)
	assert.Contains(t, resp.Content.Message, "valid age")
}

func TestDialog_CollectVisitor_Progresses(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateCollectVisitor)
	sess.Quantity = 2
	sess.CurrentVisitor = 1

	resp := svc.Respond(context.Background(), sess, "Alice: 30")

	require.Len(t, sess.Visitors, 1)
	assert.Equal(t, domain.Visitor{Name: "Alice", Age: 30, TicketType: domain.TicketAdult}, sess.Visitors[0])
	assert.Equal(t, 2, sess.CurrentVisitor)
	assert.Equal(t, domain.StateCollectVisitor, sess.State)
	assert.Contains(t, resp.Content.Message, "visitor 2")
}

func TestDialog_CollectVisitor_LastVisitorTotalsAndAdvances(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateCollectVisitor)
	sess.Quantity = 2
	sess.CurrentVisitor = 2
	sess.Visitors = []domain.Visitor{{Name: "Alice", Age: 30, TicketType: domain.TicketAdult}}

	resp := svc.Respond(context.Background(), sess, "Bob: 8")

	assert.Equal(t, domain.StateAskEmail, sess.State)
	assert.Equal(t, 150, sess.TotalPrice)
	assert.Contains(t, resp.Content.Message, "₹150")
	assert.Contains(t, resp.Content.Message, "email address")
}

func TestDialog_AskEmail(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantState domain.DialogState
	}{
		{"no at sign", "alice.example.com", domain.StateAskEmail},
		{"no dot", "alice@example", domain.StateAskEmail},
		{"accepted", "alice@example.com", domain.StateAskVisitDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, svc := newDialogService(t)
			sess := sessionIn(domain.StateAskEmail)

			svc.Respond(context.Background(), sess, tt.input)

			assert.Equal(t, tt.wantState, sess.State)
		})
	}
}

func TestDialog_AskVisitDate_Invalid(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateAskVisitDate)

	resp := svc.Respond(context.Background(), sess, "June 1st")

	assert.Equal(t, domain.StateAskVisitDate, sess.State)
	assert.Contains(t, resp.Content.Message, "YYYY-MM-DD")
}

func TestDialog_AskVisitDate_Accepted(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateAskVisitDate)

	resp := svc.Respond(context.Background(), sess, "2025-06-01")

	assert.Equal(t, domain.StateConfirmPayment, sess.State)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), sess.VisitDate)
	assert.Equal(t, domain.ResponseOptions, resp.Type)
	assert.Contains(t, resp.Content.Message, "June 01, 2025")
}

func TestDialog_ConfirmPayment_Declined(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateConfirmPayment)
	sess.TotalPrice = 150

	resp := svc.Respond(context.Background(), sess, "No")

	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Zero(t, sess.BookingID)
	assert.Equal(t, []string{"Start new booking", "Get museum information"}, resp.Content.Options)
}

func TestDialog_ConfirmPayment_Accepted(t *testing.T) {
	_, qr, svc := newDialogService(t)
	sess := sessionIn(domain.StateConfirmPayment)
	sess.TotalPrice = 150

	qr.EXPECT().RenderPaymentCode(150).Return("QRDATA", nil)

	resp := svc.Respond(context.Background(), sess, "yes")

	assert.Equal(t, domain.StateAwaitTransaction, sess.State)
	assert.GreaterOrEqual(t, sess.BookingID, 100000)
	assert.Less(t, sess.BookingID, 1000000)
	assert.Equal(t, domain.ResponsePayment, resp.Type)
	assert.Equal(t, "QRDATA", resp.Content.QRCode)
	assert.Contains(t, resp.Content.Message, "₹150")
	assert.Contains(t, resp.Content.Message, fmt.Sprintf("%d", sess.BookingID))
	assert.Equal(t, "text", resp.Content.InputType)
}

func TestDialog_ConfirmPayment_QRError(t *testing.T) {
	_, qr, svc := newDialogService(t)
	sess := sessionIn(domain.StateConfirmPayment)
	sess.TotalPrice = 150

	qr.EXPECT().RenderPaymentCode(150).Return("", errors.New("encode failed"))

	resp := svc.Respond(context.Background(), sess, "yes")

	// The step is not consumed; the user can retry.
	assert.Equal(t, domain.StateConfirmPayment, sess.State)
	assert.Zero(t, sess.BookingID)
	assert.Equal(t, "Sorry, I encountered an error.", resp.Content.Message)
}

func TestDialog_AwaitTransaction_EmptyInput(t *testing.T) {
	_, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateAwaitTransaction)

	resp := svc.Respond(context.Background(), sess, "   ")

	assert.Equal(t, domain.StateAwaitTransaction, sess.State)
	assert.Contains(t, resp.Content.Message, "valid UPI transaction ID")
}

func TestDialog_AwaitTransaction_MaterializeError(t *testing.T) {
	bookings, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateAwaitTransaction)
	sess.BookingID = 123456
	sess.Email = "alice@example.com"
	sess.Visitors = []domain.Visitor{{Name: "Alice", Age: 30, TicketType: domain.TicketAdult}}
	sess.TotalPrice = 100

	bookings.EXPECT().Materialize(mock.Anything, sess, "TXN001").Return(nil, errors.New("db down"))

	resp := svc.Respond(context.Background(), sess, "TXN001")

	// Session survives the failure so the transaction id can be resubmitted.
	assert.Equal(t, domain.StateAwaitTransaction, sess.State)
	assert.Equal(t, 123456, sess.BookingID)
	assert.Len(t, sess.Visitors, 1)
	assert.Contains(t, resp.Content.Message, "error occurred while processing your booking")
}

func TestDialog_AwaitTransaction_Confirmed(t *testing.T) {
	bookings, _, svc := newDialogService(t)
	sess := sessionIn(domain.StateAwaitTransaction)
	sess.BookingID = 123456
	sess.Email = "alice@example.com"

	booking := &domain.Booking{BookingID: 123456, Email: "alice@example.com"}
	bookings.EXPECT().Materialize(mock.Anything, sess, "TXN001").Return(booking, nil)

	resp := svc.Respond(context.Background(), sess, " TXN001 ")

	assert.Equal(t, domain.ResponseConfirmation, resp.Type)
	assert.Contains(t, resp.Content.Message, "123456")
	assert.Contains(t, resp.Content.Message, "alice@example.com")

	// Completed booking clears the session back to the menu.
	assert.Equal(t, domain.StateMainMenu, sess.State)
	assert.Zero(t, sess.BookingID)
	assert.Zero(t, sess.TotalPrice)
	assert.Empty(t, sess.Visitors)
	assert.Empty(t, sess.Email)
}

func TestDialog_PanicRecovered(t *testing.T) {
	qr := portmocks.NewMockPaymentQR(t)
	// nil materializer: the await-transaction step panics on use.
	svc := NewDialogService(nil, qr, testMuseum, newTestLogger(t))
	sess := sessionIn(domain.StateAwaitTransaction)

	resp := svc.Respond(context.Background(), sess, "TXN001")

	assert.Equal(t, domain.ResponseText, resp.Type)
	assert.Equal(t, "Sorry, I encountered an error.", resp.Content.Message)
}

func TestDialog_FullBookingFlow(t *testing.T) {
	bookings, qr, svc := newDialogService(t)
	sess := domain.NewSession()
	ctx := context.Background()

	qr.EXPECT().RenderPaymentCode(150).Return("QRDATA", nil)
	bookings.EXPECT().Materialize(mock.Anything, sess, "TXN123").
		RunAndReturn(func(_ context.Context, s *domain.Session, txn string) (*domain.Booking, error) {
			return &domain.Booking{BookingID: s.BookingID, TransactionID: txn, Email: s.Email}, nil
		})

	steps := []string{"hi", "book tickets", "2", "Alice: 30", "Bob: 8", "alice@example.com", "2025-06-01", "yes"}
	for _, input := range steps {
		svc.Respond(ctx, sess, input)
	}

	require.Equal(t, domain.StateAwaitTransaction, sess.State)
	require.Equal(t, 150, sess.TotalPrice)
	bookingID := sess.BookingID

	resp := svc.Respond(ctx, sess, "TXN123")

	assert.Equal(t, domain.ResponseConfirmation, resp.Type)
	assert.Contains(t, resp.Content.Message, fmt.Sprintf("%d", bookingID))
	assert.Equal(t, domain.StateMainMenu, sess.State)
}
