package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"actbot/internal/auth"
	"actbot/internal/export"
	"actbot/internal/intake"
	"actbot/internal/report"
)

const (
	menuText          = "Оберіть дію:"
	cancelledText     = "Заповнення акта скасовано."
	nothingToCancel   = "Немає активного заповнення."
	saveFailedText    = "⚠️ Не вдалося зберегти дані. Почніть заповнення ще раз."
	reportsDenied     = "⛔️ У вас немає доступу до звітів."
	analysisDenied    = "⛔️ У вас немає доступу."
	noRecordsText     = "Записів немає."
	noDataText        = "Немає даних для аналізу."
	noWeekRecordsText = "За останній тиждень немає записів."
	loadFailedText    = "⚠️ Не вдалося отримати записи. Спробуйте пізніше."
	exportFailedText  = "⚠️ Не вдалося сформувати файл звіту."
)

// handleIncomingMessage
func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	if msg.IsCommand() {
		b.handleCommand(msg)
		return
	}
	b.handleText(ctx, msg)
}

// handleCommand treats every command as unrelated to an open intake.
func (b *Bot) handleCommand(msg *tgbotapi.Message) {
	userID := msg.From.ID
	switch msg.Command() {
	case "start":
		b.abandon(userID)
		m := tgbotapi.NewMessage(msg.Chat.ID, menuText)
		m.ReplyMarkup = b.menuKeyboard(userID)
		_ = b.send(m)
	case "cancel":
		if b.abandon(userID) {
			_ = b.sendMessage(msg.Chat.ID, cancelledText)
			return
		}
		_ = b.sendMessage(msg.Chat.ID, nothingToCancel)
	default:
		b.abandon(userID)
	}
}

// handleCallback
func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil {
		return
	}
	if _, err := b.s.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("failed to answer callback: %v", err)
	}
	userID := cb.From.ID
	chatID := userID
	if cb.Message != nil && cb.Message.Chat != nil {
		chatID = cb.Message.Chat.ID
	}

	switch cb.Data {
	case addActCmd:
		b.startIntake(chatID, userID)
	case viewReportsCmd:
		b.abandon(userID)
		b.sendReports(ctx, chatID, userID)
	case weeklyAnalysisCmd:
		b.abandon(userID)
		_ = b.sendWeeklySummary(ctx, chatID, userID)
	default:
		log.Printf("unknown callback %q from %d", cb.Data, userID)
	}
}

func (b *Bot) startIntake(chatID, userID int64) {
	sess := b.engine.Start(userID)
	b.metrics.SessionStarted(b.engine.Open())
	log.Printf("📝 Intake %s started by %d", sess.ID, userID)
	_ = b.sendMessage(chatID, intake.Prompt(sess.State))
}

func (b *Bot) abandon(userID int64) bool {
	if !b.engine.Abandon(userID) {
		return false
	}
	b.metrics.SessionAbandoned(b.engine.Open())
	log.Printf("Intake abandoned by %d", userID)
	return true
}

// handleText feeds free text to an open intake. Text from users without one
// is ignored.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	if !b.engine.Active(userID) {
		return
	}
	out, err := b.engine.Answer(ctx, userID, displayName(msg.From), msg.Text)
	switch {
	case errors.Is(err, intake.ErrNoSession):
		return
	case err != nil:
		b.metrics.StoreError("insert")
		b.metrics.SessionClosed(b.engine.Open())
		log.Printf("intake %s by %d: %v", out.Session.ID, userID, err)
		_ = b.sendMessage(msg.Chat.ID, saveFailedText)
		return
	case !out.Completed:
		_ = b.sendMessage(msg.Chat.ID, out.Prompt)
		return
	}

	b.metrics.ActSubmitted()
	b.metrics.SessionClosed(b.engine.Open())
	log.Printf("✅ Intake %s completed by %d in %s", out.Session.ID, userID, sessionAge(out.Session, b.now()))
	if err := b.sendMessage(msg.Chat.ID, intake.Confirmation); err != nil {
		return
	}
	b.notifyAdmin(intake.FormatNotification(out.Act))
}

func sessionAge(s intake.Session, now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(s.StartedAt).Round(time.Second)
}

// notifyAdmin
func (b *Bot) notifyAdmin(text string) {
	adminID := b.gate.AdminID()
	if adminID == 0 {
		return
	}
	_ = b.sendMessage(adminID, text)
}

func (b *Bot) sendReports(ctx context.Context, chatID, requester int64) {
	items, err := b.reports.List(ctx, requester)
	switch {
	case errors.Is(err, auth.ErrAccessDenied):
		b.metrics.Denied("list")
		log.Printf("Unauthorized report request by user ID: %d", requester)
		_ = b.sendMessage(chatID, reportsDenied)
		return
	case err != nil:
		b.metrics.StoreError("scan")
		log.Printf("list acts: %v", err)
		_ = b.sendMessage(chatID, loadFailedText)
		return
	}
	if len(items) == 0 {
		_ = b.sendMessage(chatID, noRecordsText)
		return
	}
	for _, a := range items {
		if err := b.sendMessage(chatID, report.FormatAct(a)); err != nil {
			return
		}
	}
}

func (b *Bot) sendWeeklySummary(ctx context.Context, chatID, requester int64) error {
	sum, err := b.reports.WeeklySummary(ctx, requester)
	switch {
	case errors.Is(err, auth.ErrAccessDenied):
		b.metrics.Denied("weekly")
		log.Printf("Unauthorized analysis request by user ID: %d", requester)
		_ = b.sendMessage(chatID, analysisDenied)
		return err
	case err != nil:
		b.metrics.StoreError("scan")
		_ = b.sendMessage(chatID, loadFailedText)
		return err
	}
	if sum.Total == 0 {
		return b.sendMessage(chatID, noDataText)
	}
	if len(sum.Acts) == 0 {
		return b.sendMessage(chatID, noWeekRecordsText)
	}
	if err := b.sendMessage(chatID, sum.Text()); err != nil {
		return err
	}

	data, err := export.Workbook(sum.Acts)
	if err != nil {
		_ = b.sendMessage(chatID, exportFailedText)
		return fmt.Errorf("build workbook: %w", err)
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: export.FileName(b.now()), Bytes: data})
	return b.send(doc)
}

// SendWeeklyToAdmin delivers the weekly summary to the administrator's chat.
func (b *Bot) SendWeeklyToAdmin(ctx context.Context) error {
	adminID := b.gate.AdminID()
	if adminID == 0 {
		return errors.New("administrator is not configured")
	}
	return b.sendWeeklySummary(ctx, adminID, adminID)
}
