package telegram

import (
	"context"
	"log"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"actbot/internal/auth"
	"actbot/internal/intake"
	"actbot/internal/observability"
	"actbot/internal/report"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	s       sender
	gate    *auth.Gate
	engine  *intake.Engine
	reports *report.Service
	metrics *observability.Metrics
	now     func() time.Time
}

func New(botToken string, gate *auth.Gate, engine *intake.Engine, reports *report.Service, metrics *observability.Metrics) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	log.Printf("🤖 Authorized as @%s", api.Self.UserName)
	return &Bot{
		api:     api,
		s:       botAPISender{api: api},
		gate:    gate,
		engine:  engine,
		reports: reports,
		metrics: metrics,
		now:     time.Now,
	}, nil
}

// Start handles updates one at a time until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.dispatch(ctx, update)
		}
	}
}

// dispatch routes one update. A panic is logged and swallowed so the loop
// keeps serving other users.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ panic while handling update %d: %v\n%s", update.UpdateID, r, debug.Stack())
		}
	}()
	if update.Message != nil {
		b.handleIncomingMessage(ctx, update.Message)
		return
	}
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) send(c tgbotapi.Chattable) error {
	if _, err := b.s.Send(c); err != nil {
		b.metrics.SendFailed()
		log.Printf("failed to send message: %v", err)
		return err
	}
	return nil
}

func (b *Bot) sendMessage(chatID int64, text string) error {
	return b.send(tgbotapi.NewMessage(chatID, text))
}

func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	return strconv.FormatInt(u.ID, 10)
}
