package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

const (
	addActCmd         = "add_act"
	viewReportsCmd    = "view_reports"
	weeklyAnalysisCmd = "weekly_analysis"
)

// menuKeyboard hides the analysis button from everyone but the administrator.
// The handlers check access again.
func (b *Bot) menuKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➕ Почати", addActCmd)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📋 Звіт", viewReportsCmd)),
	}
	if b.gate.IsAdmin(userID) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📊 Аналіз", weeklyAnalysisCmd)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
