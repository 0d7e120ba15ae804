package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

// EmailNotifier sends the booking confirmation email. With no credentials
// configured it stays disabled and only logs what it would have sent.
type EmailNotifier struct {
	dialer   *gomail.Dialer
	from     string
	logoPath string
	museum   domain.MuseumInfo
	tmpl     *template.Template
	logger   logger.Logger
}

func NewEmailNotifier(
	host string,
	port int,
	from, password, logoPath string,
	museum domain.MuseumInfo,
	log logger.Logger,
) (*EmailNotifier, error) {
	tmpl, err := template.New("confirmation").Parse(confirmationTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse email template: %w", err)
	}

	n := &EmailNotifier{
		from:     from,
		logoPath: logoPath,
		museum:   museum,
		tmpl:     tmpl,
		logger:   log,
	}

	if from == "" || password == "" {
		log.Warn("email credentials are not set, confirmation emails disabled")
		return n, nil
	}

	n.dialer = gomail.NewDialer(host, port, from, password)
	return n, nil
}

type confirmationData struct {
	Name       string
	Museum     domain.MuseumInfo
	BookingID  int
	VisitDate  string
	Visitors   []confirmationVisitor
	TotalPrice int
}

type confirmationVisitor struct {
	Name     string
	Category string
}

func (n *EmailNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	if n.dialer == nil {
		n.logger.Debug("confirmation email skipped (smtp disabled)",
			logger.Int("booking_id", b.BookingID),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("confirmation email skipped (context cancelled)",
			logger.Int("booking_id", b.BookingID),
		)
		return
	}

	data := confirmationData{
		Name:       "Visitor",
		Museum:     n.museum,
		BookingID:  b.BookingID,
		VisitDate:  b.VisitDate.Format("January 02, 2006"),
		TotalPrice: b.TotalPrice,
	}
	for _, t := range b.Tickets {
		data.Visitors = append(data.Visitors, confirmationVisitor{
			Name:     t.Name,
			Category: categoryLabel(t.TicketType),
		})
	}
	if len(b.Tickets) > 0 {
		data.Name = b.Tickets[0].Name
	}

	var body bytes.Buffer
	if err := n.tmpl.Execute(&body, data); err != nil {
		n.logger.Error("render confirmation email",
			logger.Int("booking_id", b.BookingID),
			logger.String("error", err.Error()),
		)
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", b.Email)
	m.SetHeader("Subject", fmt.Sprintf("%s - Booking Confirmation", n.museum.Name))
	m.SetBody("text/html", body.String())

	// The template references the logo as cid:museum.png; without the file
	// the email still goes out, just with a broken image slot.
	if _, err := os.Stat(n.logoPath); err == nil {
		m.Embed(n.logoPath)
	} else {
		n.logger.Debug("logo not found, sending email without it",
			logger.String("path", n.logoPath),
		)
	}

	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error("failed to send confirmation email",
			logger.Int("booking_id", b.BookingID),
			logger.String("to", b.Email),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Info("confirmation email sent",
		logger.Int("booking_id", b.BookingID),
		logger.String("to", b.Email),
	)
}

// categoryLabel shortens a stored category to its display form, e.g.
// "Child (under 12)" becomes "Child".
func categoryLabel(c domain.TicketCategory) string {
	label, _, _ := strings.Cut(string(c), "(")
	return strings.TrimSpace(label)
}

const confirmationTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Booking Confirmation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { width: 100%; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; margin-bottom: 20px; }
        .logo { max-width: 150px; }
        h1 { color: #0056b3; }
        .booking-details { background-color: #f8f9fa; padding: 15px; border-radius: 5px; }
        .footer { margin-top: 20px; text-align: center; font-size: 0.9em; color: #6c757d; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <img src="cid:museum.png" alt="Museum Logo" class="logo">
            <h1>Booking Confirmation</h1>
        </div>
        <p>Dear {{.Name}},</p>
        <p>Thank you for booking with {{.Museum.Name}}. Your reservation has been confirmed.</p>
        <div class="booking-details">
            <p><strong>Booking ID:</strong> {{.BookingID}}</p>
            <p><strong>Visit Date:</strong> {{.VisitDate}}</p>
            <p><strong>Visitors:</strong></p>
            <ul>
                {{range .Visitors}}<li>{{.Name}} - {{.Category}}</li>
                {{end}}
            </ul>
            <p><strong>Total Price:</strong> ₹{{.TotalPrice}}</p>
        </div>
        <p>We look forward to welcoming you to our museum. If you have any questions, please don't hesitate to contact us.</p>
        <p>Best regards,<br>The {{.Museum.Name}} Team</p>
        <div class="footer">
            <p>{{.Museum.Name}} | {{.Museum.Address}} | {{.Museum.Phone}}</p>
        </div>
    </div>
</body>
</html>
`
