// Package telegram implements the walletwatch notifier for Telegram bots.
// Messages are broadcast to every subscribed chat in HTML mode, and an
// optional long-polling loop lets chats subscribe with /start and leave with
// /stop.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
	"golang.org/x/time/rate"

	"github.com/gabapcia/walletwatch/internal/config"
	"github.com/gabapcia/walletwatch/internal/pkg/logger"
	httptransport "github.com/gabapcia/walletwatch/internal/pkg/transport/http"
	"github.com/gabapcia/walletwatch/internal/pkg/types"
	"github.com/gabapcia/walletwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/walletwatch/internal/walletwatch"
)

const (
	notifierName = "telegram"

	// defaultRateLimit is Telegram's broadcast ceiling in messages per second.
	defaultRateLimit = 30

	pollTimeout = 30
)

// ErrMissingBotToken is returned by New when no bot token is configured.
var ErrMissingBotToken = errors.New("telegram bot token is required")

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// botAPI is the subset of *tgbotapi.BotAPI used by the notifier.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Notifier sends wallet alerts through a Telegram bot.
type Notifier struct {
	bot     botAPI
	limiter *rate.Limiter
	polling bool

	mu          sync.RWMutex
	subscribers *types.OrderedSet[string]
}

var (
	_ walletwatch.Notifier = (*Notifier)(nil)
	_ walletwatch.Listener = (*Notifier)(nil)
)

type options struct {
	bot botAPI
}

// Option customizes New.
type Option func(*options)

// WithBot replaces the Bot API client built from the configured token.
func WithBot(bot botAPI) Option {
	return func(o *options) {
		o.bot = bot
	}
}

// New builds the notifier for cfg. The configured chat_id, when set, is the
// first subscriber.
func New(cfg config.NotifierConfig, opts ...Option) (*Notifier, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.bot == nil {
		if cfg.BotToken == "" {
			return nil, ErrMissingBotToken
		}

		client := httptransport.NewClient(httptransport.WithTimeout(cfg.Timeout)).StandardClient()
		bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, client)
		if err != nil {
			return nil, fmt.Errorf("%w: telegram bot: %w", walletwatch.ErrTransportFailure, err)
		}
		o.bot = bot
	}

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	n := &Notifier{
		bot:         o.bot,
		limiter:     rate.NewLimiter(rate.Limit(limit), max(1, int(limit))),
		polling:     cfg.Polling,
		subscribers: types.NewOrderedSet[string](),
	}

	if cfg.ChatID != "" {
		n.AddSubscriber(cfg.ChatID)
	}

	return n, nil
}

// Factory builds a Telegram notifier. It matches walletwatch.NotifierFactory.
func Factory(_ context.Context, cfg config.NotifierConfig) (walletwatch.Notifier, error) {
	return New(cfg)
}

func (n *Notifier) Name() string {
	return notifierName
}

// AddSubscriber registers chatID for broadcasts. Channel usernames start with "@".
func (n *Notifier) AddSubscriber(chatID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.subscribers.Add(chatID)
}

// RemoveSubscriber drops chatID and reports whether it was subscribed.
func (n *Notifier) RemoveSubscriber(chatID string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.subscribers.Delete(chatID)
}

// Subscribers returns the subscribed chats in sorted order.
func (n *Notifier) Subscribers() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	subs := n.subscribers.Values()
	slices.Sort(subs)

	return subs
}

// FormatMessage escapes the characters Telegram's HTML mode reserves.
func (n *Notifier) FormatMessage(message string) string {
	return escaper.Replace(message)
}

// Send broadcasts message to every subscriber. It reports false when there
// are no subscribers or any delivery failed.
func (n *Notifier) Send(ctx context.Context, message string, opts ...walletwatch.SendOption) bool {
	ctx = logger.Derive(ctx, "notifier.name", notifierName)

	subscribers := n.Subscribers()
	if len(subscribers) == 0 {
		logger.Warn(ctx, "no telegram subscribers to notify")
		return false
	}

	o := walletwatch.NewSendOptions(opts...)
	text := n.FormatMessage(message)

	ok := true
	for _, chatID := range subscribers {
		if !n.deliver(ctx, chatID, text, o) {
			ok = false
		}
	}

	return ok
}

// SendTo delivers message to a single chat.
func (n *Notifier) SendTo(ctx context.Context, recipient, message string, opts ...walletwatch.SendOption) bool {
	ctx = logger.Derive(ctx, "notifier.name", notifierName)

	return n.deliver(ctx, recipient, n.FormatMessage(message), walletwatch.NewSendOptions(opts...))
}

func (n *Notifier) deliver(ctx context.Context, chatID, text string, o walletwatch.SendOptions) bool {
	ctx = logger.Derive(ctx, "telegram.chat_id", chatID)

	msg, err := newMessage(chatID, text)
	if err != nil {
		logger.Error(ctx, "invalid telegram chat id", "error", err)
		return false
	}

	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if markup, ok := keyboard(o.Buttons); ok {
		msg.ReplyMarkup = markup
	}

	if err := n.limiter.Wait(ctx); err != nil {
		logger.Warn(ctx, "telegram send aborted while rate limited", "error", err)
		return false
	}

	if err := n.send(ctx, msg); err != nil {
		if isBlocked(err) {
			n.RemoveSubscriber(chatID)
			logger.Warn(ctx, "telegram chat blocked the bot, subscriber removed", "error", err)
			return false
		}

		logger.Error(ctx, "failed to send telegram message", "error", err)
		return false
	}

	return true
}

// send runs the blocking Bot API call until it returns or ctx is done.
func (n *Notifier) send(ctx context.Context, c tgbotapi.Chattable) error {
	done := make(chan error, 1)
	go func() {
		_, err := n.bot.Send(c)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Listen polls the bot for /start and /stop commands until ctx is done. It
// returns immediately when polling is disabled.
func (n *Notifier) Listen(ctx context.Context) error {
	if !n.polling {
		return nil
	}

	ctx = logger.Derive(ctx, "notifier.name", notifierName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := n.bot.GetUpdatesChan(u)
	defer n.bot.StopReceivingUpdates()

	logger.Info(ctx, "telegram polling started")
	chflow.ForEach(ctx, (<-chan tgbotapi.Update)(updates), n.handleUpdate)
	logger.Info(ctx, "telegram polling stopped")

	return nil
}

func (n *Notifier) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil || !msg.IsCommand() {
		return
	}

	chatID := strconv.FormatInt(msg.Chat.ID, 10)
	ctx = logger.Derive(ctx, "telegram.chat_id", chatID)

	var reply string
	switch msg.Command() {
	case "start":
		n.AddSubscriber(chatID)
		reply = "Subscribed to wallet alerts. Send /stop to unsubscribe."
		logger.Info(ctx, "telegram chat subscribed")
	case "stop":
		n.RemoveSubscriber(chatID)
		reply = "Unsubscribed from wallet alerts."
		logger.Info(ctx, "telegram chat unsubscribed")
	default:
		return
	}

	if err := n.send(ctx, tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		logger.Warn(ctx, "failed to reply to telegram command", "error", err)
	}
}

func newMessage(chatID, text string) (tgbotapi.MessageConfig, error) {
	if strings.HasPrefix(chatID, "@") {
		return tgbotapi.NewMessageToChannel(chatID, text), nil
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, err
	}

	return tgbotapi.NewMessage(id, text), nil
}

func keyboard(rows [][]walletwatch.Button) (tgbotapi.InlineKeyboardMarkup, bool) {
	markup := lo.FilterMap(rows, func(row []walletwatch.Button, _ int) ([]tgbotapi.InlineKeyboardButton, bool) {
		buttons := lo.FilterMap(row, func(b walletwatch.Button, _ int) (tgbotapi.InlineKeyboardButton, bool) {
			switch {
			case b.URL != "":
				return tgbotapi.NewInlineKeyboardButtonURL(b.Text, b.URL), true
			case b.CallbackData != "":
				return tgbotapi.NewInlineKeyboardButtonData(b.Text, b.CallbackData), true
			default:
				return tgbotapi.InlineKeyboardButton{}, false
			}
		})

		return buttons, len(buttons) > 0
	})
	if len(markup) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	return tgbotapi.NewInlineKeyboardMarkup(markup...), true
}

// isBlocked reports whether err means the chat will never accept messages
// from the bot again.
func isBlocked(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusForbidden {
		return false
	}

	reason := strings.ToLower(apiErr.Message)
	return strings.Contains(reason, "blocked") ||
		strings.Contains(reason, "kicked") ||
		strings.Contains(reason, "deactivated")
}
