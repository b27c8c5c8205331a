package infrastructure

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const hintPrefix = "hint_"

// featureHints explains the "request | idea | name" message format per feature
var featureHints = map[string]string{
	"steps":  "📋 Send: steps | <your business idea>\nExample: steps | coffee shop",
	"names":  "🏷️ Send: suggest names | <your business idea>\nExample: suggest names | online tutoring service",
	"logo":   "🎨 Send: logo | <your business idea> | <business name>\nExample: logo | handmade jewelry | Gem & Tonic",
	"social": "📱 Send: linkedin, instagram or facebook | <your business idea> | <business name>\nExample: instagram post | food truck | Rolling Bites",
	"ideas":  "💡 Send: ideas | <your business idea>\nExample: innovative ideas | bakery",
}

// CreateFeatureKeyboard creates inline keyboard buttons for each assistant feature
func CreateFeatureKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Business Plan", hintPrefix+"steps"),
			tgbotapi.NewInlineKeyboardButtonData("🏷️ Names", hintPrefix+"names"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎨 Logo", hintPrefix+"logo"),
			tgbotapi.NewInlineKeyboardButtonData("📱 Social Media", hintPrefix+"social"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💡 Ideas", hintPrefix+"ideas"),
		),
	)
}
