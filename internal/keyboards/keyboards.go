package keyboards

import (
	"gastrobot/internal/structs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Inline renders one button per row; nil when there are no buttons.
func Inline(buttons []structs.Button) *tgbotapi.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data),
		))
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func Message(chatID int64, reply structs.Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	msg.ParseMode = reply.ParseMode
	msg.DisableWebPagePreview = reply.DisableLinkPreview
	if kb := Inline(reply.Buttons); kb != nil {
		msg.ReplyMarkup = *kb
	}
	return msg
}
