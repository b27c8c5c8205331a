package infrastructure

import (
	"testing"

	"bizbot/internal/entities"
	"bizbot/internal/repository"
	"bizbot/internal/usecases"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTelegramAPI struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (f *fakeTelegramAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeTelegramAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type recordingMessenger struct {
	to, content string
}

func (r *recordingMessenger) SendMessage(to, content string) error {
	r.to, r.content = to, content
	return nil
}

func newTestBot(t *testing.T, limiter *MessageRateLimiter) (*TelegramBot, *fakeTelegramAPI, *recordingMessenger) {
	t.Helper()
	catalog, err := repository.LoadDefaultCatalog()
	require.NoError(t, err)

	messenger := &recordingMessenger{}
	api := &fakeTelegramAPI{}
	service := usecases.NewMessageService(usecases.NewContentGenerator(catalog, nil), messenger)
	return &TelegramBot{api: api, service: service, limiter: limiter}, api, messenger
}

func textUpdate(chatID int64, text string) tgbotapi.Update {
	msg := &tgbotapi.Message{MessageID: 1, Text: text, Chat: &tgbotapi.Chat{ID: chatID}}
	if len(text) > 0 && text[0] == '/' {
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(text)}}
	}
	return tgbotapi.Update{Message: msg}
}

func TestParseChatText(t *testing.T) {
	tests := []struct {
		text     string
		expected entities.Message
	}{
		{"hello", entities.Message{Content: "hello"}},
		{"steps | coffee shop", entities.Message{Content: "steps", BusinessIdea: "coffee shop"}},
		{" logo |  jewelry | Gem | Tonic ", entities.Message{Content: "logo", BusinessIdea: "jewelry", BusinessName: "Gem | Tonic"}},
		{"", entities.Message{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseChatText(tt.text))
		})
	}
}

func TestHandleUpdateStartCommand(t *testing.T) {
	bot, api, _ := newTestBot(t, nil)

	bot.HandleUpdate(textUpdate(7, "/start"))

	require.Len(t, api.sent, 1)
	msg, ok := api.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(7), msg.ChatID)
	assert.Contains(t, msg.Text, "Welcome to your Small Business Assistant!")
	assert.IsType(t, tgbotapi.InlineKeyboardMarkup{}, msg.ReplyMarkup)
}

func TestHandleUpdateText(t *testing.T) {
	bot, api, messenger := newTestBot(t, nil)

	bot.HandleUpdate(textUpdate(7, "logo | coffee shop | Bean There"))

	assert.Empty(t, api.sent)
	assert.Equal(t, "7", messenger.to)
	assert.Contains(t, messenger.content, "Create a professional logo for 'Bean There', a coffee shop business.")
}

func TestHandleUpdateRateLimited(t *testing.T) {
	bot, api, messenger := newTestBot(t, NewMessageRateLimiter(0.001, 1))

	bot.HandleUpdate(textUpdate(7, "steps | cafe"))
	assert.NotEmpty(t, messenger.content)

	bot.HandleUpdate(textUpdate(7, "steps | cafe"))
	require.Len(t, api.sent, 1)
	assert.Equal(t, slowDownMessage, api.sent[0].(tgbotapi.MessageConfig).Text)
}

func TestHandleUpdateCallback(t *testing.T) {
	bot, api, _ := newTestBot(t, nil)

	bot.HandleUpdate(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb1",
		Data:    "hint_logo",
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 9}},
	}})

	assert.Len(t, api.requests, 1)
	require.Len(t, api.sent, 1)
	msg := api.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, int64(9), msg.ChatID)
	assert.Equal(t, featureHints["logo"], msg.Text)

	bot.HandleUpdate(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb2",
		Data:    "hint_unknown",
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 9}},
	}})
	assert.Len(t, api.sent, 1)
}

func TestCreateFeatureKeyboard(t *testing.T) {
	keyboard := CreateFeatureKeyboard()

	var callbacks []string
	for _, row := range keyboard.InlineKeyboard {
		for _, btn := range row {
			require.NotNil(t, btn.CallbackData)
			callbacks = append(callbacks, *btn.CallbackData)
		}
	}
	assert.Len(t, callbacks, len(featureHints))
	for _, data := range callbacks {
		assert.Contains(t, featureHints, data[len(hintPrefix):])
	}
}
