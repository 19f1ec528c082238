package menu

import (
	"fmt"
	"html"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/VarunTejjj/theautomationaffli/config"
	"github.com/VarunTejjj/theautomationaffli/context"
	"github.com/VarunTejjj/theautomationaffli/messaging"
	"github.com/VarunTejjj/theautomationaffli/metrics"
	"github.com/VarunTejjj/theautomationaffli/objects"
)

// recheckCallbackData identifies the "I've joined" button.
const recheckCallbackData = "joined_check"

// HandleStart serves the /start command. The force-join gate runs first,
// whatever the arguments; only then is the optional deep-link argument
// resolved against the product store.
func HandleStart(context *context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	log.Printf("[MENU] /start from user %d with argument %q", userID, message.CommandArguments())

	missing := context.Membership.MissingChannels(userID)
	if len(missing) > 0 {
		log.Printf("[MENU] User %d is missing %d force-join channels", userID, len(missing))
		metrics.RecordDeepLink("gated")
		sendJoinPrompt(context, chatID, missing)
		return
	}

	arg := strings.TrimSpace(message.CommandArguments())
	if arg == "" {
		metrics.RecordDeepLink("welcome")
		welcome := messaging.NewHTMLMessage(chatID,
			"Welcome! Open a product link from our channel to view it here.")
		context.Send("welcome", welcome)
		return
	}

	product := context.Repo.FindProduct(arg)
	if product == nil {
		log.Printf("[MENU] Product %q not found for user %d", arg, userID)
		metrics.RecordDeepLink("not_found")
		context.Send("not_found", messaging.NewHTMLMessage(chatID, "Sorry, this product could not be found."))
		return
	}

	metrics.RecordDeepLink("served")
	sendProduct(context, chatID, product)
}

// HandleCallback re-runs the membership gate when the user presses the
// "I've joined" button. The original /start argument is not remembered, so
// a fully joined user is asked to open the deep link again.
func HandleCallback(context *context.Context, callback *tgbotapi.CallbackQuery) {
	if callback.Data != recheckCallbackData {
		log.Printf("[MENU] Ignoring unknown callback data %q", callback.Data)
		return
	}

	userID := callback.From.ID

	missing := context.Membership.MissingChannels(userID)
	if len(missing) > 0 {
		log.Printf("[MENU] User %d still missing %d channels after recheck", userID, len(missing))
		metrics.RecordRecheck("still_missing")
		context.AnswerCallbackQuery(tgbotapi.NewCallbackWithAlert(callback.ID, "Please join all channels first."))
		return
	}

	log.Printf("[MENU] User %d passed the recheck", userID)
	metrics.RecordRecheck("passed")
	context.AnswerCallbackQuery(tgbotapi.NewCallback(callback.ID, ""))

	if callback.Message != nil {
		prompt := messaging.NewHTMLMessage(callback.Message.Chat.ID,
			"Thanks for joining! Now send your /start link again to view the product.")
		context.Send("recheck_ok", prompt)
	}
}

func sendProduct(context *context.Context, chatID int64, product *objects.ProductRecord) {
	buyURL := product.AffiliateLink
	if buyURL == "" {
		// Placeholder when no affiliate link was recorded.
		buyURL = product.BloggerPostURL
	}

	text := fmt.Sprintf("<b>%s</b>\n\n%s",
		html.EscapeString(product.ProductName), html.EscapeString(product.Caption))

	msg := messaging.NewHTMLMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("Buy Now", buyURL),
		),
	)
	context.Send("product", msg)
}

func sendJoinPrompt(context *context.Context, chatID int64, missing []config.ForceJoinChannel) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, channel := range missing {
		label := "Join Channel"
		if len(missing) > 1 {
			label = fmt.Sprintf("Join Channel %d", i+1)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(label, channel.Invite_Link),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("I've joined", recheckCallbackData),
	))

	msg := messaging.NewHTMLMessage(chatID,
		"Please join our channel(s) to use this bot, then press the button below.")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	context.Send("join_prompt", msg)
}
