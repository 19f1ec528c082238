package bugsink

import (
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/VarunTejjj/theautomationaffli/config"
)

var (
	initialized bool
	enabled     bool
)

// Initialize BugSink error tracking
func Init() error {
	cfg := config.C()

	// Check if BugSink is enabled
	if !cfg.BugSink_Enabled {
		log.Println("[BUGSINK] BugSink error tracking is disabled")
		enabled = false
		return nil
	}

	if cfg.BugSink_DSN == "" {
		log.Println("[BUGSINK] BugSink DSN not provided, disabling error tracking")
		enabled = false
		return nil
	}

	log.Printf("[BUGSINK] Initializing BugSink error tracking...")
	log.Printf("[BUGSINK] Environment: %s", cfg.BugSink_Environment)
	log.Printf("[BUGSINK] Release: %s", cfg.BugSink_Release)

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.BugSink_DSN,
		Debug:            cfg.BugSink_Environment == "development",
		Environment:      cfg.BugSink_Environment,
		Release:          cfg.BugSink_Release,
		AttachStacktrace: true,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// Add custom tags to all events
			if event.Tags == nil {
				event.Tags = make(map[string]string)
			}
			event.Tags["service"] = "theautomationaffli"
			event.Tags["component"] = "telegram-bot"
			return event
		},
	})

	if err != nil {
		return fmt.Errorf("failed to initialize BugSink: %w", err)
	}

	initialized = true
	enabled = true
	log.Println("[BUGSINK] BugSink error tracking initialized successfully")

	return nil
}

// IsEnabled returns true if BugSink is enabled and initialized
func IsEnabled() bool {
	return enabled && initialized
}

// CaptureError captures an error with additional context
func CaptureError(err error, context map[string]interface{}) {
	if !IsEnabled() {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		// Add context data
		for key, value := range context {
			scope.SetContext(key, map[string]interface{}{key: value})
		}

		scope.SetLevel(sentry.LevelError)

		sentry.CaptureException(err)
	})
}

// CaptureMessage captures a message with additional context
func CaptureMessage(message string, context map[string]interface{}) {
	if !IsEnabled() {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		// Add context data
		for key, value := range context {
			scope.SetContext(key, map[string]interface{}{key: value})
		}

		scope.SetLevel(sentry.LevelInfo)

		sentry.CaptureMessage(message)
	})
}

// CapturePanic recovers from a panic, reports it, and re-panics so the
// process still dies (event-loop errors are fatal by design)
func CapturePanic() {
	if !IsEnabled() {
		return
	}

	if err := recover(); err != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelFatal)
			scope.SetContext("panic", map[string]interface{}{
				"recovered_value": fmt.Sprintf("%v", err),
			})
			sentry.CaptureException(fmt.Errorf("panic recovered: %v", err))
		})

		// Re-panic after capturing
		panic(err)
	}
}

// Flush flushes any pending events to BugSink
func Flush(timeout time.Duration) bool {
	if !IsEnabled() {
		return true
	}

	return sentry.Flush(timeout)
}
