package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Mahhmanee/Sup/internal/i18n"
	"github.com/Mahhmanee/Sup/internal/support"
)

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇷🇺 Русский", "lang_ru"),
			tgbotapi.NewInlineKeyboardButtonData("🇬🇧 English", "lang_en"),
		),
	)
}

func categoryKeyboard(lang i18n.Lang) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	var row []tgbotapi.KeyboardButton
	for _, cat := range i18n.Categories {
		row = append(row, tgbotapi.NewKeyboardButton(i18n.CategoryLabel(lang, cat)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	return kb
}

func closeTicketKeyboard(lang i18n.Lang) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(i18n.CloseTicket(lang)),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func managerCloseKeyboard(ticketID int) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔴 Закрыть тикет", fmt.Sprintf("close_%d", ticketID)),
		),
	)
}

// renderMarkup maps the engine's abstract reply affordances onto
// Telegram keyboards. Nil means no markup on the message.
func renderMarkup(m support.Markup) interface{} {
	switch m.Kind {
	case support.MarkupLanguageChoice:
		return languageKeyboard()
	case support.MarkupCategoryMenu:
		return categoryKeyboard(m.Lang)
	case support.MarkupCloseTicket:
		return closeTicketKeyboard(m.Lang)
	case support.MarkupManagerClose:
		return managerCloseKeyboard(m.TicketID)
	}
	return nil
}
