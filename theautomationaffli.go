package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/VarunTejjj/theautomationaffli/blogger"
	"github.com/VarunTejjj/theautomationaffli/bugsink"
	"github.com/VarunTejjj/theautomationaffli/config"
	appContext "github.com/VarunTejjj/theautomationaffli/context"
	"github.com/VarunTejjj/theautomationaffli/intake"
	"github.com/VarunTejjj/theautomationaffli/membership"
	"github.com/VarunTejjj/theautomationaffli/menu"
	"github.com/VarunTejjj/theautomationaffli/metrics"
	"github.com/VarunTejjj/theautomationaffli/repository"
	"github.com/VarunTejjj/theautomationaffli/sender"
)

const PID_FILE = "theautomationaffli.pid"

// createPidFile creates a PID file and locks it to prevent multiple instances
func createPidFile() error {
	// Check if PID file already exists
	if _, err := os.Stat(PID_FILE); err == nil {
		// PID file exists, check if process is still running
		pidBytes, err := os.ReadFile(PID_FILE)
		if err == nil {
			if pid, err := strconv.Atoi(string(pidBytes)); err == nil {
				// Check if process with this PID is still running
				if process, err := os.FindProcess(pid); err == nil {
					// Try to send signal 0 to check if process exists
					if err := process.Signal(syscall.Signal(0)); err == nil {
						return fmt.Errorf("Bot is already running with PID %d. Stop the existing instance first.", pid)
					}
				}
			}
		}
		// If we reach here, the PID file exists but process is not running
		log.Printf("[MAIN] Found stale PID file, removing it")
		os.Remove(PID_FILE)
	}

	// Create new PID file
	currentPid := os.Getpid()
	pidContent := fmt.Sprintf("%d", currentPid)

	if err := os.WriteFile(PID_FILE, []byte(pidContent), 0644); err != nil {
		return fmt.Errorf("failed to create PID file: %v", err)
	}

	log.Printf("[MAIN] Created PID file %s with PID %d", PID_FILE, currentPid)
	return nil
}

// removePidFile removes the PID file on shutdown
func removePidFile() {
	if err := os.Remove(PID_FILE); err != nil {
		log.Printf("[MAIN] Warning: failed to remove PID file: %v", err)
	} else {
		log.Printf("[MAIN] Removed PID file %s", PID_FILE)
	}
}

// runLivenessServer serves the trivial liveness endpoint. It shares no
// state with the event-processing path.
func runLivenessServer(port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Bot is running."))
	})

	addr := fmt.Sprintf(":%d", port)
	log.Printf("[MAIN] Starting liveness endpoint on %s", addr)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("[MAIN] Liveness endpoint error: %v", err)
	}
}

func initContext(bot *tgbotapi.BotAPI) *appContext.Context {
	log.Println("[MAIN] Initializing application context")

	cfg := config.C()

	log.Println("[MAIN] Loading product store...")
	repo, err := repository.NewRepository(cfg.Products_File)
	if err != nil {
		log.Fatalf("[MAIN] Failed to load product store: %v", err)
	}
	log.Printf("[MAIN] Product store ready (%d products)", repo.Count())

	publisher := blogger.NewClient(
		cfg.Blogger_Blog_Id,
		cfg.Google_Client_Id,
		cfg.Google_Client_Secret,
		cfg.Google_Refresh_Token,
		func(expiresIn time.Duration) {
			log.Printf("[MAIN] Blogger access token refreshed (valid for %v)", expiresIn)
		},
	)

	ctx := &appContext.Context{
		Repo:       repo,
		Publisher:  publisher,
		Membership: membership.NewChecker(bot, cfg.Force_Join_Channels),
		Sender:     sender.NewSender(bot),
		Config:     cfg,
	}
	ctx.SetBot(bot)

	return ctx
}

var (
	isShuttingDown bool
)

func setupGracefulShutdown() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal %v, starting graceful shutdown", sig)
		gracefulShutdown()
		os.Exit(0)
	}()
}

func gracefulShutdown() {
	log.Println("Starting graceful shutdown (max 10 seconds)")

	isShuttingDown = true

	// Flush any pending error reports before exiting
	bugsink.Flush(5 * time.Second)

	removePidFile()

	log.Println("Graceful shutdown complete")
}

func main() {
	log.Println("[MAIN] Starting product relay bot")

	config.Init("config")

	if err := metrics.Init(); err != nil {
		log.Printf("[MAIN] Metrics initialization failed: %v", err)
	}

	if err := bugsink.Init(); err != nil {
		log.Printf("[MAIN] BugSink initialization failed: %v", err)
	}

	if err := createPidFile(); err != nil {
		log.Fatalf("[MAIN] %v", err)
	}

	setupGracefulShutdown()
	defer bugsink.CapturePanic()

	go runLivenessServer(config.C().Health_Port)

	log.Println("[MAIN] Connecting to Telegram Bot API...")
	bot, err := tgbotapi.NewBotAPI(config.C().Telegram_Token)
	if err != nil {
		log.Fatalf("[MAIN] Failed to connect to Telegram: %v", err)
	}
	log.Printf("[MAIN] Authorized on Telegram account: %s", bot.Self.UserName)

	appCtx := initContext(bot)
	intakeManager := intake.NewManager(appCtx)

	// Configure updates
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.Limit = 99

	log.Println("[MAIN] Starting to receive Telegram updates...")
	updates, err := bot.GetUpdatesChan(u)
	if err != nil {
		log.Fatalf("[MAIN] Failed to get updates channel: %v", err)
	}

	log.Println("[MAIN] Event loop ready, waiting for updates...")

	// Events are processed strictly one at a time, in arrival order; no
	// two handlers ever run concurrently over the pending-intake map or
	// the product store.
	for update := range updates {
		if isShuttingDown {
			break
		}

		// Posts in the source channel open an intake conversation.
		if update.ChannelPost != nil {
			intakeManager.HandleChannelPost(update.ChannelPost)
			continue
		}

		// Inline button presses (the "I've joined" recheck).
		if update.CallbackQuery != nil {
			userId := update.CallbackQuery.From.ID
			log.Printf("[MAIN] Received callback from user %d: %s", userId, update.CallbackQuery.Data)
			menu.HandleCallback(appCtx, update.CallbackQuery)
			continue
		}

		if update.Message != nil {
			message := update.Message
			if message.From == nil {
				log.Println("[MAIN] Ignoring message without From field")
				continue
			}
			if message.Chat == nil || !message.Chat.IsPrivate() {
				continue
			}

			startTime := time.Now()
			log.Printf("[MAIN] Received message from user %d (@%s): %s",
				message.From.ID, message.From.UserName, message.Text)

			// An admin awaiting a link consumes any text message,
			// commands included.
			if intakeManager.HandleAdminMessage(message) {
				log.Printf("[MAIN] Message consumed by intake (duration: %v)", time.Since(startTime))
				continue
			}

			if message.IsCommand() && message.Command() == "start" {
				menu.HandleStart(appCtx, message)
				log.Printf("[MAIN] /start handled for user %d (duration: %v)", message.From.ID, time.Since(startTime))
				continue
			}

			log.Printf("[MAIN] Ignoring message from user %d", message.From.ID)
		}
	}

	log.Println("[MAIN] Update stream closed, shutting down")
	gracefulShutdown()
}
