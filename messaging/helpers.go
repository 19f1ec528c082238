package messaging

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// NewHTMLMessage creates a new message with HTML parsing mode
// This ensures consistent HTML usage across the entire codebase
func NewHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "HTML" // Always HTML to avoid special character issues
	return msg
}

// NewHTMLPhoto creates a photo share by URL with an HTML caption
func NewHTMLPhoto(chatID int64, photoURL string, caption string) tgbotapi.PhotoConfig {
	photo := tgbotapi.NewPhotoShare(chatID, photoURL)
	photo.Caption = caption
	photo.ParseMode = "HTML"
	return photo
}
