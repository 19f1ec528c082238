package sender

import (
	"log"
	"regexp"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/ratelimit"

	"github.com/VarunTejjj/theautomationaffli/metrics"
)

// BotAPI is the outbound slice of the Telegram client the sender drives.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	DeleteMessage(config tgbotapi.DeleteMessageConfig) (tgbotapi.APIResponse, error)
	AnswerCallbackQuery(config tgbotapi.CallbackConfig) (tgbotapi.APIResponse, error)
}

// Sender paces every outbound Telegram call under the Bot API rate limit
// and records per-kind delivery metrics.
type Sender struct {
	bot     BotAPI
	limiter ratelimit.Limiter
}

func NewSender(bot BotAPI) *Sender {
	log.Println("[SENDER] Creating new message sender")
	return &Sender{
		bot:     bot,
		limiter: ratelimit.New(30), // Telegram allows ~30 messages per second
	}
}

// Send delivers any chattable. kind labels the delivery metric.
func (s *Sender) Send(kind string, c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.limiter.Take()

	startTime := time.Now()
	sent, err := s.bot.Send(c)
	duration := time.Since(startTime)

	if err != nil {
		log.Printf("[SENDER] ERROR sending %s message: %v (duration: %v)", kind, err, duration)
		metrics.RecordTelegramMessage(kind, "failed", strconv.Itoa(extractErrorCode(err)))
		return sent, err
	}

	log.Printf("[SENDER] Successfully sent %s message (duration: %v)", kind, duration)
	metrics.RecordTelegramMessage(kind, "sent", "none")
	return sent, nil
}

// DeleteMessage removes a message; callers treat failures as best-effort.
func (s *Sender) DeleteMessage(config tgbotapi.DeleteMessageConfig) error {
	s.limiter.Take()

	_, err := s.bot.DeleteMessage(config)
	if err != nil {
		log.Printf("[SENDER] ERROR deleting message %d in chat %d: %v", config.MessageID, config.ChatID, err)
		metrics.RecordTelegramMessage("delete_message", "failed", strconv.Itoa(extractErrorCode(err)))
		return err
	}

	log.Printf("[SENDER] Deleted message %d in chat %d", config.MessageID, config.ChatID)
	metrics.RecordTelegramMessage("delete_message", "sent", "none")
	return nil
}

// AnswerCallback acknowledges an inline-button press.
func (s *Sender) AnswerCallback(config tgbotapi.CallbackConfig) error {
	s.limiter.Take()

	_, err := s.bot.AnswerCallbackQuery(config)
	if err != nil {
		log.Printf("[SENDER] ERROR answering callback query %s: %v", config.CallbackQueryID, err)
		metrics.RecordTelegramMessage("callback_answer", "failed", strconv.Itoa(extractErrorCode(err)))
		return err
	}

	log.Printf("[SENDER] Answered callback query %s", config.CallbackQueryID)
	metrics.RecordTelegramMessage("callback_answer", "sent", "none")
	return nil
}

// httpErrorCodeRegex matches HTTP status codes (4xx or 5xx) in error messages
// Uses negative lookbehind/lookahead to avoid matching phone numbers or other contexts
var httpErrorCodeRegex = regexp.MustCompile(`(?:^|\s|:|\(|-)([4-5]\d{2})(?:\s|$|:|!|\)|,)`)

// extractErrorCode extracts HTTP error code from Telegram API error using regex
func extractErrorCode(err error) int {
	if err == nil {
		return 200
	}

	// Use regex to find HTTP error codes (4xx or 5xx) in error message
	errStr := err.Error()
	matches := httpErrorCodeRegex.FindStringSubmatch(errStr)

	if len(matches) >= 2 {
		// Parse the captured HTTP code
		if code, parseErr := strconv.Atoi(matches[1]); parseErr == nil {
			return code
		}
	}

	return 0 // Unknown error - no HTTP code found
}
