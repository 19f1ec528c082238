package intake

import (
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/VarunTejjj/theautomationaffli/bugsink"
	"github.com/VarunTejjj/theautomationaffli/context"
	"github.com/VarunTejjj/theautomationaffli/messaging"
	"github.com/VarunTejjj/theautomationaffli/metrics"
	"github.com/VarunTejjj/theautomationaffli/objects"
)

// Manager drives the two-step product intake conversation with the admin:
// a qualifying source-channel post opens a pending slot, the admin's next
// text message closes it. One slot exists per admin identity; a newer
// qualifying post overwrites an unanswered one and the earlier post's
// association is lost.
type Manager struct {
	context *context.Context
	pending map[int64]*objects.PendingIntake
}

func NewManager(context *context.Context) *Manager {
	log.Println("[INTAKE] Intake manager created")
	return &Manager{
		context: context,
		pending: make(map[int64]*objects.PendingIntake),
	}
}

// State reports the intake state for the given admin identity.
func (m *Manager) State(adminID int64) objects.IntakeState {
	if _, ok := m.pending[adminID]; ok {
		return objects.Intake_AwaitingLink
	}
	return objects.Intake_Idle
}

// HandleChannelPost records a qualifying source-channel post and asks the
// admin for the affiliate link. A post qualifies when it carries text, a
// caption or a photo.
func (m *Manager) HandleChannelPost(post *tgbotapi.Message) {
	if post.Chat == nil || post.Chat.ID != m.context.Config.Source_Channel_Id {
		return
	}

	caption := post.Caption
	if caption == "" {
		caption = post.Text
	}

	photoFileID := ""
	if post.Photo != nil && len(*post.Photo) > 0 {
		// Telegram lists photo variants smallest first; take the largest.
		variants := *post.Photo
		photoFileID = variants[len(variants)-1].FileID
	}

	if caption == "" && photoFileID == "" {
		log.Printf("[INTAKE] Ignoring channel post %d without text, caption or photo", post.MessageID)
		return
	}

	adminID := m.context.Config.Admin_User_Id
	if previous, ok := m.pending[adminID]; ok {
		log.Printf("[INTAKE] Overwriting pending intake for admin %d (post %d replaced by post %d)",
			adminID, previous.MessageID, post.MessageID)
	}

	m.pending[adminID] = &objects.PendingIntake{
		MessageID:   post.MessageID,
		Caption:     caption,
		PhotoFileID: photoFileID,
	}

	metrics.RecordIntakeStarted()

	prompt := messaging.NewHTMLMessage(adminID, "New product post received. Send the affiliate link for it now.")
	if _, err := m.context.Send("admin_prompt", prompt); err != nil {
		log.Printf("[INTAKE] Failed to prompt admin %d: %v", adminID, err)
	}

	log.Printf("[INTAKE] Admin %d is now awaiting link for post %d", adminID, post.MessageID)
}

// HandleAdminMessage consumes the admin's reply while a post is awaiting
// its affiliate link. It returns false when the message is not a text
// message from the admin with an intake in flight, so the caller can route
// it elsewhere.
func (m *Manager) HandleAdminMessage(message *tgbotapi.Message) bool {
	adminID := m.context.Config.Admin_User_Id
	if message.From == nil || int64(message.From.ID) != adminID {
		return false
	}

	affiliateLink := strings.TrimSpace(message.Text)
	if affiliateLink == "" {
		return false
	}

	pending, ok := m.pending[adminID]
	if !ok {
		return false
	}

	// The pending slot is consumed exactly once, whatever happens next.
	delete(m.pending, adminID)

	startTime := time.Now()
	log.Printf("[INTAKE] Completing intake for post %d with link from admin %d", pending.MessageID, adminID)

	productName := pending.ProductName()

	imageURL := ""
	if pending.PhotoFileID != "" {
		url, err := m.context.GetFileDirectURL(pending.PhotoFileID)
		if err != nil {
			log.Printf("[INTAKE] Failed to resolve photo %s: %v (continuing without image)",
				pending.PhotoFileID, err)
		} else {
			imageURL = url
		}
	}

	productID := m.context.Repo.NextProductID()
	startLink := fmt.Sprintf("https://t.me/%s?start=%s", m.context.Config.Bot_Username, productID)

	postURL, err := m.context.Publisher.Publish(productName, pending.Caption, imageURL, startLink)
	if err != nil {
		log.Printf("[INTAKE] Publish failed for post %d: %v", pending.MessageID, err)
		metrics.RecordPublish("failed")
		metrics.RecordIntakeFailed("publish")
		bugsink.CaptureError(err, map[string]interface{}{
			"component":  "intake",
			"message_id": pending.MessageID,
		})

		failure := messaging.NewHTMLMessage(adminID,
			fmt.Sprintf("Publishing failed, nothing was saved: %s", html.EscapeString(err.Error())))
		m.context.Send("admin_error", failure)
		return true
	}
	metrics.RecordPublish("success")

	product := &objects.ProductRecord{
		ProductID:        productID,
		ProductName:      productName,
		Caption:          pending.Caption,
		ImageURL:         imageURL,
		BotStartLink:     startLink,
		BloggerPostURL:   postURL,
		ChannelMessageID: pending.MessageID,
		AffiliateLink:    affiliateLink,
	}

	// The record must be on disk before anything else happens; a crash
	// between publish and save loses the post's indexing, which is an
	// accepted risk.
	if err := m.context.Repo.SaveProduct(product); err != nil {
		log.Printf("[INTAKE] ERROR saving product %s: %v", productID, err)
		metrics.RecordIntakeFailed("store")
		bugsink.CaptureError(err, map[string]interface{}{
			"component":  "intake",
			"product_id": productID,
		})

		failure := messaging.NewHTMLMessage(adminID,
			fmt.Sprintf("Post published at %s but the product could not be saved: %s",
				postURL, html.EscapeString(err.Error())))
		m.context.Send("admin_error", failure)
		return true
	}

	m.deleteSourcePost(pending.MessageID)
	m.repost(product)

	confirm := messaging.NewHTMLMessage(adminID,
		fmt.Sprintf(`Product %s published: <a href="%s">%s</a>`, productID, postURL, postURL))
	m.context.Send("admin_confirm", confirm)

	metrics.RecordIntakeCompleted()
	log.Printf("[INTAKE] Intake for product %s completed (duration: %v)", productID, time.Since(startTime))
	return true
}

// deleteSourcePost removes the original channel message. Missing delete
// rights or an already-removed message is logged and swallowed.
func (m *Manager) deleteSourcePost(messageID int) {
	err := m.context.DeleteMessage(tgbotapi.NewDeleteMessage(m.context.Config.Source_Channel_Id, messageID))
	if err != nil {
		log.Printf("[INTAKE] Failed to delete source message %d: %v", messageID, err)
	}
}

// repost publishes the generated product message back to the source
// channel. Failure is reported to the admin but does not roll back the
// already-persisted record.
func (m *Manager) repost(product *objects.ProductRecord) {
	text := repostText(product)
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("View Product", product.BloggerPostURL),
		),
	)

	channelID := m.context.Config.Source_Channel_Id

	var err error
	if product.ImageURL != "" {
		photo := messaging.NewHTMLPhoto(channelID, product.ImageURL, text)
		photo.ReplyMarkup = markup
		_, err = m.context.Send("repost_photo", photo)
	} else {
		msg := messaging.NewHTMLMessage(channelID, text)
		msg.ReplyMarkup = markup
		_, err = m.context.Send("repost_text", msg)
	}

	if err != nil {
		log.Printf("[INTAKE] Repost for product %s failed: %v", product.ProductID, err)
		notice := messaging.NewHTMLMessage(m.context.Config.Admin_User_Id,
			fmt.Sprintf("Repost for product %s failed: %s", product.ProductID, html.EscapeString(err.Error())))
		m.context.Send("admin_error", notice)
	}
}

// repostText renders the fixed repost caption: the original caption, then
// the blog link and the bot deep link on their own lines.
func repostText(product *objects.ProductRecord) string {
	return fmt.Sprintf("%s\n\n<a href=\"%s\">View on Blog</a>\n<a href=\"%s\">View in Bot</a>",
		html.EscapeString(product.Caption), product.BloggerPostURL, product.BotStartLink)
}
