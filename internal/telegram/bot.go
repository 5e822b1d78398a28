package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Mahhmanee/Sup/internal/config"
	"github.com/Mahhmanee/Sup/internal/models"
	"github.com/Mahhmanee/Sup/internal/repository"
	"github.com/Mahhmanee/Sup/internal/support"
)

type Bot struct {
	api          *tgbotapi.BotAPI
	engine       *support.Engine
	userRepo     *repository.UserRepository
	managersChat int64
}

func NewBot(cfg config.Telegram, tickets config.Tickets, userRepo *repository.UserRepository) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram token not set")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	api.Debug = false

	b := &Bot{
		api:          api,
		userRepo:     userRepo,
		managersChat: cfg.ManagersChatID,
	}
	b.engine = support.NewEngine(b, cfg.ManagersChatID, tickets.MinID, tickets.MaxID)

	return b, nil
}

func (b *Bot) Run() error {
	log.Printf("Bot @%s started successfully", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		go b.handleUpdate(update)
	}

	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil {
		return
	}

	message := update.Message

	if message.From != nil {
		b.saveUser(message.From)
	}

	if message.Chat.ID == b.managersChat {
		if message.Text == "" {
			return
		}
		replyTo := 0
		if message.ReplyToMessage != nil {
			replyTo = message.ReplyToMessage.MessageID
		}
		err := b.engine.HandleManagerMessage(support.ManagerMessage{
			ChatID:    message.Chat.ID,
			MessageID: message.MessageID,
			ReplyTo:   replyTo,
			Text:      message.Text,
		})
		if err != nil {
			log.Printf("ERROR: manager reply in chat %d: %v", message.Chat.ID, err)
		}
		return
	}

	switch {
	case message.IsCommand():
		b.handleCommand(message)
	case message.Text != "":
		msg := support.UserMessage{
			UserID:    message.From.ID,
			ChatID:    message.Chat.ID,
			MessageID: message.MessageID,
			Username:  message.From.UserName,
			Text:      message.Text,
		}
		if err := b.engine.HandleUserMessage(msg); err != nil {
			log.Printf("ERROR: message from user %d: %v", message.From.ID, err)
		}
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		msg := support.UserMessage{
			UserID:    message.From.ID,
			ChatID:    message.Chat.ID,
			MessageID: message.MessageID,
			Username:  message.From.UserName,
		}
		if err := b.engine.HandleStart(msg); err != nil {
			log.Printf("ERROR: /start for user %d: %v", message.From.ID, err)
		}
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	err := b.engine.HandleCallback(support.Callback{
		ID:        cb.ID,
		UserID:    cb.From.ID,
		ChatID:    cb.Message.Chat.ID,
		MessageID: cb.Message.MessageID,
		Data:      cb.Data,
	})
	if err != nil {
		log.Printf("ERROR: callback %q from user %d: %v", cb.Data, cb.From.ID, err)
	}
}

func (b *Bot) saveUser(from *tgbotapi.User) {
	ctx := context.Background()
	if _, err := b.userRepo.CreateOrUpdate(ctx, extractTelegramUser(from)); err != nil {
		log.Printf("Failed to save user %d: %v", from.ID, err)
	}
}

// Transport implementation over the Bot API. Errors come back as
// *support.TransportError so the engine can report the failed call.

func (b *Bot) ForwardMessage(targetChat, sourceChat int64, messageID int) (int, error) {
	sent, err := b.api.Send(tgbotapi.NewForward(targetChat, sourceChat, messageID))
	if err != nil {
		return 0, &support.TransportError{Op: "forward", ChatID: targetChat, Err: err}
	}
	return sent.MessageID, nil
}

func (b *Bot) SendMessage(chatID int64, text string, markup support.Markup) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	if rendered := renderMarkup(markup); rendered != nil {
		msg.ReplyMarkup = rendered
	}
	sent, err := b.api.Send(msg)
	if err != nil {
		return 0, &support.TransportError{Op: "send", ChatID: chatID, Err: err}
	}
	return sent.MessageID, nil
}

func (b *Bot) EditMessage(chatID int64, messageID int, text string) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	if _, err := b.api.Send(edit); err != nil {
		return &support.TransportError{Op: "edit", ChatID: chatID, Err: err}
	}
	return nil
}

func (b *Bot) DeleteMessage(chatID int64, messageID int) error {
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return &support.TransportError{Op: "delete", ChatID: chatID, Err: err}
	}
	return nil
}

func (b *Bot) AnswerCallback(callbackID, text string) error {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return &support.TransportError{Op: "answerCallback", Err: err}
	}
	return nil
}

// Helper to extract Telegram user data
func extractTelegramUser(from *tgbotapi.User) models.TelegramUser {
	var username, lastName, languageCode *string

	if from.UserName != "" {
		username = &from.UserName
	}
	if from.LastName != "" {
		lastName = &from.LastName
	}
	if from.LanguageCode != "" {
		languageCode = &from.LanguageCode
	}

	return models.TelegramUser{
		ID:           from.ID,
		Username:     username,
		FirstName:    from.FirstName,
		LastName:     lastName,
		IsBot:        from.IsBot,
		LanguageCode: languageCode,
	}
}

func RunTelegramBot(cfg config.Telegram, tickets config.Tickets, userRepo *repository.UserRepository) {
	bot, err := NewBot(cfg, tickets, userRepo)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := bot.Run(); err != nil {
		log.Fatalf("Bot failed: %v", err)
	}
}
