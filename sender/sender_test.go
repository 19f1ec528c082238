package sender

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

type fakeBot struct {
	sent        []tgbotapi.Chattable
	deleted     []tgbotapi.DeleteMessageConfig
	answered    []tgbotapi.CallbackConfig
	sendErr     error
	deleteErr   error
	callbackErr error
}

func (f *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: 1}, f.sendErr
}

func (f *fakeBot) DeleteMessage(config tgbotapi.DeleteMessageConfig) (tgbotapi.APIResponse, error) {
	f.deleted = append(f.deleted, config)
	return tgbotapi.APIResponse{Ok: f.deleteErr == nil}, f.deleteErr
}

func (f *fakeBot) AnswerCallbackQuery(config tgbotapi.CallbackConfig) (tgbotapi.APIResponse, error) {
	f.answered = append(f.answered, config)
	return tgbotapi.APIResponse{Ok: f.callbackErr == nil}, f.callbackErr
}

func TestSendDeliversThroughBot(t *testing.T) {
	bot := &fakeBot{}
	s := NewSender(bot)

	msg := tgbotapi.NewMessage(123, "hello")
	sent, err := s.Send("welcome", msg)
	if err != nil {
		t.Fatalf("Send() returned error: %v", err)
	}
	if sent.MessageID != 1 {
		t.Errorf("Send() returned message id %d, want 1", sent.MessageID)
	}
	if len(bot.sent) != 1 {
		t.Fatalf("bot received %d messages, want 1", len(bot.sent))
	}
}

func TestSendPropagatesError(t *testing.T) {
	bot := &fakeBot{sendErr: errors.New("Forbidden: 403 bot blocked")}
	s := NewSender(bot)

	_, err := s.Send("repost_text", tgbotapi.NewMessage(123, "hello"))
	if err == nil {
		t.Fatal("Send() should propagate the bot error")
	}
}

func TestDeleteMessage(t *testing.T) {
	bot := &fakeBot{}
	s := NewSender(bot)

	if err := s.DeleteMessage(tgbotapi.NewDeleteMessage(-100123, 42)); err != nil {
		t.Fatalf("DeleteMessage() returned error: %v", err)
	}
	if len(bot.deleted) != 1 || bot.deleted[0].MessageID != 42 {
		t.Errorf("unexpected delete calls: %+v", bot.deleted)
	}
}

func TestAnswerCallback(t *testing.T) {
	bot := &fakeBot{}
	s := NewSender(bot)

	if err := s.AnswerCallback(tgbotapi.NewCallback("cb-1", "")); err != nil {
		t.Fatalf("AnswerCallback() returned error: %v", err)
	}
	if len(bot.answered) != 1 || bot.answered[0].CallbackQueryID != "cb-1" {
		t.Errorf("unexpected callback answers: %+v", bot.answered)
	}
}

func TestExtractErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns 200",
			err:      nil,
			expected: 200,
		},
		{
			name:     "no HTTP code in error message",
			err:      errors.New("Forbidden: bot was blocked by the user"),
			expected: 0,
		},
		{
			name:     "HTTP 400 Bad Request",
			err:      errors.New("Bad Request: 400 - invalid parameters"),
			expected: 400,
		},
		{
			name:     "HTTP 403 Forbidden",
			err:      errors.New("Forbidden: 403 bot blocked"),
			expected: 403,
		},
		{
			name:     "HTTP 404 Not Found",
			err:      errors.New("Not Found: 404 chat not found"),
			expected: 404,
		},
		{
			name:     "HTTP 429 Rate Limited",
			err:      errors.New("Too Many Requests: 429 rate limit exceeded"),
			expected: 429,
		},
		{
			name:     "HTTP 500 Internal Server Error",
			err:      errors.New("Internal Server Error: 500"),
			expected: 500,
		},
		{
			name:     "HTTP 502 Bad Gateway",
			err:      errors.New("Bad Gateway: 502 upstream error"),
			expected: 502,
		},
		{
			name:     "non-HTTP number should be ignored",
			err:      errors.New("Some error with number 123 but not HTTP code"),
			expected: 0,
		},
		{
			name:     "number out of 4xx/5xx range should be ignored",
			err:      errors.New("Error 999 not in 4xx/5xx range"),
			expected: 0,
		},
		{
			name:     "multiple HTTP codes - should return first one",
			err:      errors.New("Multiple codes: 400 and 500"),
			expected: 400,
		},
		{
			name:     "HTTP code at the beginning",
			err:      errors.New("400: Bad Request"),
			expected: 400,
		},
		{
			name:     "HTTP code at the end",
			err:      errors.New("Request failed with code 403"),
			expected: 403,
		},
		{
			name:     "HTTP code in parentheses",
			err:      errors.New("Request failed (status: 404)"),
			expected: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractErrorCode(tt.err); got != tt.expected {
				t.Errorf("extractErrorCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
