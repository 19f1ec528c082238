package objects

import "strings"

// IntakeState describes where the admin conversation stands. There is at
// most one slot per admin identity.
type IntakeState int

const (
	Intake_Idle         IntakeState = 0   // no pending post
	Intake_AwaitingLink IntakeState = 100 // one post recorded, waiting for the affiliate link
)

// ProductRecord is the durable record created at the end of a completed
// intake. A product id is unique, never reused and never mutated; the store
// is append-only in practice.
type ProductRecord struct {
	ProductID        string `json:"product_id"`
	ProductName      string `json:"product_name"`
	Caption          string `json:"caption"`
	ImageURL         string `json:"image_url"`
	BotStartLink     string `json:"bot_start_link"`
	BloggerPostURL   string `json:"blogger_post_url"`
	ChannelMessageID int    `json:"channel_message_id"` // source message, kept for audit only
	AffiliateLink    string `json:"affiliate_link"`
}

// PendingIntake is the source post an admin still has to answer with an
// affiliate link. A newer qualifying post overwrites it; a restart loses it.
type PendingIntake struct {
	MessageID   int
	Caption     string
	PhotoFileID string
}

// ProductName returns the first line of the source caption, or "Product"
// when the caption is empty.
func (p *PendingIntake) ProductName() string {
	firstLine := strings.TrimSpace(strings.SplitN(p.Caption, "\n", 2)[0])
	if firstLine == "" {
		return "Product"
	}
	return firstLine
}
