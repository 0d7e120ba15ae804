package domain

// TicketCategory determines the ticket price. The labels are stored as-is in
// the tickets table and shown in the confirmation email.
type TicketCategory string

const (
	TicketChild  TicketCategory = "Child (under 12)"
	TicketAdult  TicketCategory = "Adult (12-60)"
	TicketSenior TicketCategory = "Senior Citizen (60+)"
)

var ticketPrices = map[TicketCategory]int{
	TicketChild:  50,
	TicketAdult:  100,
	TicketSenior: 70,
}

// Classify maps an age to its ticket category. The ranges are total: every
// non-negative age falls into exactly one category.
func Classify(age int) TicketCategory {
	switch {
	case age < 12:
		return TicketChild
	case age < 60:
		return TicketAdult
	default:
		return TicketSenior
	}
}

// PriceOf returns the price for a category in rupees.
func PriceOf(c TicketCategory) int {
	return ticketPrices[c]
}
