package context

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/VarunTejjj/theautomationaffli/config"
	"github.com/VarunTejjj/theautomationaffli/membership"
	"github.com/VarunTejjj/theautomationaffli/repository"
	"github.com/VarunTejjj/theautomationaffli/sender"
)

// TelegramAPI is the surface of the bot client the application uses, kept
// as an interface so tests can substitute it.
type TelegramAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	DeleteMessage(config tgbotapi.DeleteMessageConfig) (tgbotapi.APIResponse, error)
	AnswerCallbackQuery(config tgbotapi.CallbackConfig) (tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.ChatConfigWithUser) (tgbotapi.ChatMember, error)
	GetFileDirectURL(fileID string) (string, error)
}

// Publisher is the blog platform's publish(post) -> url capability.
type Publisher interface {
	Publish(title, caption, imageURL, buttonURL string) (string, error)
}

type Context struct {
	bot        TelegramAPI // private - only accessible through methods
	Repo       *repository.Repository
	Publisher  Publisher
	Membership *membership.Checker
	Sender     *sender.Sender
	Config     *config.Config
}

// Send delivers a message through the rate-limited sender. kind labels the
// delivery metric.
func (context *Context) Send(kind string, c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return context.Sender.Send(kind, c)
}

// DeleteMessage removes a message through the rate-limited sender.
func (context *Context) DeleteMessage(config tgbotapi.DeleteMessageConfig) error {
	return context.Sender.DeleteMessage(config)
}

// AnswerCallbackQuery acknowledges an inline-button press.
func (context *Context) AnswerCallbackQuery(callback tgbotapi.CallbackConfig) error {
	return context.Sender.AnswerCallback(callback)
}

// GetFileDirectURL resolves a Telegram file id to a fetchable URL.
func (context *Context) GetFileDirectURL(fileID string) (string, error) {
	return context.bot.GetFileDirectURL(fileID)
}

// GetBot returns the bot instance - used during initialization wiring
func (context *Context) GetBot() TelegramAPI {
	return context.bot
}

// SetBot sets the bot instance - used during initialization
func (context *Context) SetBot(bot TelegramAPI) {
	context.bot = bot
	log.Println("[CONTEXT] Bot instance attached to application context")
}
