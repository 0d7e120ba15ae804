package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	minQuantity = 1
	maxQuantity = 10

	visitDateLayout = "2006-01-02"
)

// BookingMaterializer persists a completed conversation.
type BookingMaterializer interface {
	Materialize(ctx context.Context, sess *domain.Session, transactionID string) (*domain.Booking, error)
}

// DialogService drives the booking conversation. Each turn takes the raw user
// input, validates it against the session's current state, mutates the session
// in place and returns exactly one structured response.
type DialogService struct {
	bookings BookingMaterializer
	qr       ports.PaymentQR
	museum   domain.MuseumInfo
	logger   logger.Logger
}

func NewDialogService(
	bookings BookingMaterializer,
	qr ports.PaymentQR,
	museum domain.MuseumInfo,
	log logger.Logger,
) *DialogService {
	return &DialogService{
		bookings: bookings,
		qr:       qr,
		museum:   museum,
		logger:   log,
	}
}

// Respond handles one chat turn. Any panic while computing the reply is
// recovered here and converted into a generic text response so a fault never
// reaches the transport layer.
func (s *DialogService) Respond(ctx context.Context, sess *domain.Session, input string) (resp domain.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("dialog turn panicked",
				logger.String("state", string(sess.State)),
				logger.Any("error", r),
			)
			resp = textResponse("Sorry, I encountered an error.")
		}
	}()

	switch sess.State {
	case domain.StateGreeting:
		return s.greet(sess)
	case domain.StateMainMenu:
		return s.mainMenu(sess, input)
	case domain.StateAskQuantity:
		return s.askQuantity(sess, input)
	case domain.StateCollectVisitor:
		return s.collectVisitor(sess, input)
	case domain.StateAskEmail:
		return s.askEmail(sess, input)
	case domain.StateAskVisitDate:
		return s.askVisitDate(sess, input)
	case domain.StateConfirmPayment:
		return s.confirmPayment(sess, input)
	case domain.StateAwaitTransaction:
		return s.awaitTransaction(ctx, sess, input)
	default:
		return textResponse("Sorry, I encountered an error.")
	}
}

// greet always advances: whatever the first message says, the user gets the
// welcome and the main menu options.
func (s *DialogService) greet(sess *domain.Session) domain.Response {
	sess.State = domain.StateMainMenu
	return domain.Response{
		Type: domain.ResponseOptions,
		Content: domain.ResponseContent{
			Title:   fmt.Sprintf("Welcome to %s!", s.museum.Name),
			Message: "How can I assist you today?",
			Options: []string{"Book tickets", "Get museum information"},
		},
	}
}

func (s *DialogService) mainMenu(sess *domain.Session, input string) domain.Response {
	in := strings.ToLower(input)
	switch {
	case strings.Contains(in, "book") || strings.Contains(in, "ticket"):
		sess.State = domain.StateAskQuantity
		return textResponse("Great! Let's book your tickets. How many tickets do you need?")

	case strings.Contains(in, "information") || strings.Contains(in, "about"):
		// Info panel does not change state; the user stays on the menu.
		return domain.Response{
			Type: domain.ResponseInfo,
			Content: domain.ResponseContent{
				Title:   "Museum Information",
				Message: "Here's some information about our museum:",
				Details: []string{
					"Name: " + s.museum.Name,
					"Address: " + s.museum.Address,
					"Hours: " + s.museum.Hours,
					"Phone: " + s.museum.Phone,
				},
				Question: "Would you like to book tickets now?",
				Options:  []string{"Yes", "No"},
			},
		}

	default:
		return domain.Response{
			Type: domain.ResponseOptions,
			Content: domain.ResponseContent{
				Message: "I'm sorry, I didn't understand. Would you like to book tickets or get information about our museum?",
				Options: []string{"Book tickets", "Get museum information"},
			},
		}
	}
}

func (s *DialogService) askQuantity(sess *domain.Session, input string) domain.Response {
	quantity, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return textResponse("Please enter a valid number for the quantity of tickets.")
	}
	if quantity < minQuantity || quantity > maxQuantity {
		return textResponse("I'm sorry, we can only process bookings for 1-10 people at a time. Please enter a number between 1 and 10.")
	}

	sess.Quantity = quantity
	sess.Visitors = make([]domain.Visitor, 0, quantity)
	sess.CurrentVisitor = 1
	sess.State = domain.StateCollectVisitor
	return textResponse("Great! Now, please provide the name and age for visitor 1 in the format 'Name: Age'.")
}

func (s *DialogService) collectVisitor(sess *domain.Session, input string) domain.Response {
	name, ageText, ok := strings.Cut(input, ":")
	if !ok {
		return textResponse("Please provide the visitor's name and age in the format 'Name: Age'.")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return textResponse("Please provide the visitor's name and age in the format 'Name: Age'.")
	}

	age, err := strconv.Atoi(strings.TrimSpace(ageText))
	if err != nil {
		return textResponse("Please enter a valid age as a number.")
	}

	sess.Visitors = append(sess.Visitors, domain.Visitor{
		Name:       name,
		Age:        age,
		TicketType: domain.Classify(age),
	})

	if len(sess.Visitors) < sess.Quantity {
		sess.CurrentVisitor++
		return textResponse(fmt.Sprintf(
			"Thank you. Now, please provide the name and age for visitor %d in the format 'Name: Age'.",
			sess.CurrentVisitor,
		))
	}

	total := 0
	for _, v := range sess.Visitors {
		total += domain.PriceOf(v.TicketType)
	}
	sess.TotalPrice = total
	sess.State = domain.StateAskEmail
	return textResponse(fmt.Sprintf(
		"Thank you for providing all visitor details. The total price for your tickets is ₹%d. Please provide your email address for the booking confirmation.",
		total,
	))
}

func (s *DialogService) askEmail(sess *domain.Session, input string) domain.Response {
	if !strings.Contains(input, "@") || !strings.Contains(input, ".") {
		return textResponse("Please provide a valid email address.")
	}

	sess.Email = strings.TrimSpace(input)
	sess.State = domain.StateAskVisitDate
	return textResponse("Thank you. Please enter the date of your visit (YYYY-MM-DD):")
}

func (s *DialogService) askVisitDate(sess *domain.Session, input string) domain.Response {
	visitDate, err := time.Parse(visitDateLayout, strings.TrimSpace(input))
	if err != nil {
		return textResponse("Please enter a valid date in the format YYYY-MM-DD.")
	}

	sess.VisitDate = visitDate
	sess.State = domain.StateConfirmPayment
	return domain.Response{
		Type: domain.ResponseOptions,
		Content: domain.ResponseContent{
			Message: fmt.Sprintf(
				"Thank you. Your visit is scheduled for %s. Would you like to proceed with the payment?",
				visitDate.Format("January 02, 2006"),
			),
			Options: []string{"Yes", "No"},
		},
	}
}

// confirmPayment has two valid outcomes: "yes" moves to the payment step,
// anything else returns to the main menu. The second branch is a transition,
// not an error.
func (s *DialogService) confirmPayment(sess *domain.Session, input string) domain.Response {
	if !strings.Contains(strings.ToLower(input), "yes") {
		sess.State = domain.StateMainMenu
		return domain.Response{
			Type: domain.ResponseOptions,
			Content: domain.ResponseContent{
				Message: "No problem. Would you like to start over with a new booking or get more information about our museum?",
				Options: []string{"Start new booking", "Get museum information"},
			},
		}
	}

	qrCode, err := s.qr.RenderPaymentCode(sess.TotalPrice)
	if err != nil {
		s.logger.Error("render payment code",
			logger.Int("amount", sess.TotalPrice),
			logger.String("error", err.Error()),
		)
		return textResponse("Sorry, I encountered an error.")
	}

	sess.BookingID = NewBookingID()
	sess.State = domain.StateAwaitTransaction
	return domain.Response{
		Type: domain.ResponsePayment,
		Content: domain.ResponseContent{
			Title: "Payment",
			Message: fmt.Sprintf(
				"Great! Please scan the QR code to make the payment of ₹%d. Your booking ID is %d.",
				sess.TotalPrice, sess.BookingID,
			),
			QRCode:       qrCode,
			InputType:    "text",
			InputMessage: "After completing the payment, please enter the UPI transaction ID:",
		},
	}
}

// awaitTransaction accepts any non-empty input as the payment reference; no
// verification happens. On a failed save the session stays on this step so the
// reference can be resubmitted.
func (s *DialogService) awaitTransaction(ctx context.Context, sess *domain.Session, input string) domain.Response {
	transactionID := strings.TrimSpace(input)
	if transactionID == "" {
		return textResponse("Please enter a valid UPI transaction ID to confirm your payment.")
	}

	booking, err := s.bookings.Materialize(ctx, sess, transactionID)
	if err != nil {
		s.logger.Error("materialize booking",
			logger.Int("booking_id", sess.BookingID),
			logger.String("error", err.Error()),
		)
		return textResponse("An error occurred while processing your booking. Please try again or contact support.")
	}

	resp := domain.Response{
		Type: domain.ResponseConfirmation,
		Content: domain.ResponseContent{
			Title: "Booking Confirmed",
			Message: fmt.Sprintf(
				"Thank you for your payment! Your booking is confirmed. Your booking ID is %d. A confirmation email has been sent to %s.",
				booking.BookingID, booking.Email,
			),
		},
	}

	sess.Reset()
	return resp
}

func textResponse(msg string) domain.Response {
	return domain.Response{
		Type:    domain.ResponseText,
		Content: domain.ResponseContent{Message: msg},
	}
}
