package notification

import (
	"context"
	"fmt"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// StaffNotifier posts a short alert to the museum staff chat for every
// completed booking. Optional: with no token or chat id it stays disabled.
type StaffNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewStaffNotifier(token string, chatID int64, log logger.Logger) (*StaffNotifier, error) {
	if token == "" || chatID == 0 {
		log.Warn("telegram staff alerts disabled (no token or chat id)")
		return &StaffNotifier{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &StaffNotifier{bot: bot, chatID: chatID, logger: log}, nil
}

func (n *StaffNotifier) NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking*\n\n"+"Booking ID: %d\n"+"Visit date: %s\n"+"Visitors: %d\n"+"Total: ₹%d",
		b.BookingID,
		b.VisitDate.Format("02.01.2006"),
		b.TotalQuantity,
		b.TotalPrice,
	)
	n.send(ctx, text)
}

func (n *StaffNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("staff alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("staff alert skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send staff alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
