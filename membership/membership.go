package membership

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/VarunTejjj/theautomationaffli/config"
	"github.com/VarunTejjj/theautomationaffli/metrics"
)

// MemberAPI is the slice of the Telegram API the checker needs.
type MemberAPI interface {
	GetChatMember(config tgbotapi.ChatConfigWithUser) (tgbotapi.ChatMember, error)
}

// Checker answers whether a user belongs to every configured force-join
// channel. Query failures count as not joined.
type Checker struct {
	api      MemberAPI
	channels []config.ForceJoinChannel
}

func NewChecker(api MemberAPI, channels []config.ForceJoinChannel) *Checker {
	log.Printf("[MEMBERSHIP] Checker created with %d force-join channels", len(channels))
	return &Checker{api: api, channels: channels}
}

// IsJoined reports whether the user belongs to the given channel. Only the
// member, administrator and creator statuses count as joined.
func (c *Checker) IsJoined(chatID int64, userID int) bool {
	member, err := c.api.GetChatMember(tgbotapi.ChatConfigWithUser{
		ChatID: chatID,
		UserID: userID,
	})
	if err != nil {
		log.Printf("[MEMBERSHIP] Membership query failed for user %d in chat %d: %v (treating as not joined)",
			userID, chatID, err)
		metrics.RecordMembershipCheck("error")
		return false
	}

	switch member.Status {
	case "member", "administrator", "creator":
		metrics.RecordMembershipCheck("joined")
		return true
	}

	log.Printf("[MEMBERSHIP] User %d has status %q in chat %d", userID, member.Status, chatID)
	metrics.RecordMembershipCheck("not_joined")
	return false
}

// MissingChannels returns every configured channel the user has not joined,
// in configuration order.
func (c *Checker) MissingChannels(userID int) []config.ForceJoinChannel {
	var missing []config.ForceJoinChannel
	for _, channel := range c.channels {
		if !c.IsJoined(channel.Chat_Id, userID) {
			missing = append(missing, channel)
		}
	}
	return missing
}
