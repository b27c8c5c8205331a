package infrastructure

import (
	"context"
	"strconv"
	"strings"

	"bizbot/internal/entities"
	"bizbot/internal/usecases"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

const slowDownMessage = "⏳ You're sending messages a little fast. Please wait a moment and try again."

// telegramAPI is the part of *tgbotapi.BotAPI the bot needs to answer updates
type telegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TelegramBot long-polls Telegram and answers each text message through the MessageService.
// Text is read as "request | business idea | business name".
type TelegramBot struct {
	client  *TelegramClient
	api     telegramAPI
	service *usecases.MessageService
	limiter *MessageRateLimiter
}

// NewTelegramBot wires a bot around client. service should use client as its messenger.
func NewTelegramBot(client *TelegramClient, service *usecases.MessageService, limiter *MessageRateLimiter) *TelegramBot {
	return &TelegramBot{
		client:  client,
		api:     client.Bot,
		service: service,
		limiter: limiter,
	}
}

// Run polls for updates until ctx is cancelled
func (b *TelegramBot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.client.Bot.GetUpdatesChan(u)

	log.Info().Str("bot", b.client.Bot.Self.UserName).Msg("[TG Bot] started polling")

	for {
		select {
		case <-ctx.Done():
			b.client.Bot.StopReceivingUpdates()
			log.Info().Msg("[TG Bot] stopped polling")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(update)
		}
	}
}

// HandleUpdate answers a single update: commands, callback buttons, or free text
func (b *TelegramBot) HandleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
		return
	}
	if update.Message == nil || update.Message.Chat == nil {
		return
	}

	chatID := update.Message.Chat.ID
	from := strconv.FormatInt(chatID, 10)

	if b.limiter != nil && !b.limiter.Allow("tg:"+from) {
		b.send(tgbotapi.NewMessage(chatID, slowDownMessage))
		return
	}

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start", "help":
			welcome := b.service.Reply(entities.Message{From: from, Platform: "telegram"})
			msg := tgbotapi.NewMessage(chatID, usecases.FormatReply(welcome))
			msg.ReplyMarkup = CreateFeatureKeyboard()
			b.send(msg)
			return
		}
	}

	msg := ParseChatText(update.Message.Text)
	msg.ID = strconv.Itoa(update.Message.MessageID)
	msg.From = from
	msg.Platform = "telegram"

	if err := b.service.ProcessMessage(msg); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("[TG Bot] failed to send reply")
	}
}

func (b *TelegramBot) handleCallback(callback *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Warn().Err(err).Msg("[TG Bot] failed to answer callback")
	}
	if callback.Message == nil || callback.Message.Chat == nil {
		return
	}

	hint, ok := featureHints[strings.TrimPrefix(callback.Data, hintPrefix)]
	if !ok {
		log.Debug().Str("data", callback.Data).Msg("[TG Bot] unknown callback")
		return
	}
	b.send(tgbotapi.NewMessage(callback.Message.Chat.ID, hint))
}

func (b *TelegramBot) send(c tgbotapi.Chattable) {
	if _, err := b.api.Send(c); err != nil {
		log.Error().Err(err).Msg("[TG Bot] send failed")
	}
}

// ParseChatText splits "request | business idea | business name" into a Message.
// Missing parts stay empty.
func ParseChatText(text string) entities.Message {
	parts := strings.SplitN(text, "|", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	msg := entities.Message{Content: parts[0]}
	if len(parts) > 1 {
		msg.BusinessIdea = parts[1]
	}
	if len(parts) > 2 {
		msg.BusinessName = parts[2]
	}
	return msg
}
