// Package telegram adapts the prediction engine to the Telegram Bot API:
// it routes new and edited chat messages through per-chat engines, sends
// and edits prediction messages, and serves the command surface.
package telegram

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"jokerbot/internal/config"
	"jokerbot/internal/journal"
)

// #region bot-struct

// Bot wires the Telegram long-polling client to the router.
type Bot struct {
	api     *bot.Bot
	router  *Router
	journal *journal.Journal
	limits  *userLimiter
	log     *zap.Logger
}

// #endregion bot-struct

// #region constructor

// New creates the bot, registers command handlers, and prepares the router.
// The bot itself implements Transport for the router's outbound calls.
func New(cfg config.Telegram, j *journal.Journal, log *zap.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram: bot token is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	tb := &Bot{
		journal: j,
		limits:  newUserLimiter(cfg.RatePerMinute, cfg.RateBurst),
		log:     log,
	}

	api, err := bot.New(cfg.Token, bot.WithDefaultHandler(tb.onUpdate))
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}
	tb.api = api
	tb.router = NewRouter(tb, j, log)

	static := map[string]string{
		"/start": welcomeMessage,
		"/help":  helpMessage,
		"/about": aboutMessage,
		"/dev":   devMessage,
	}
	for command, text := range static {
		api.RegisterHandler(bot.HandlerTypeMessageText, command, bot.MatchTypePrefix, tb.staticCommand(text))
	}
	api.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypePrefix, tb.onStats)

	return tb, nil
}

// Run starts long polling and blocks until the context is canceled.
func (tb *Bot) Run(ctx context.Context) error {
	tb.log.Info("bot polling started")
	tb.api.Start(ctx)
	return nil
}

// #endregion constructor

// #region transport-impl

// Send implements Transport.
func (tb *Bot) Send(ctx context.Context, chatID int64, text string) (Handle, error) {
	msg, err := tb.api.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		return Handle{}, fmt.Errorf("send message: %w", err)
	}
	return Handle{ChatID: msg.Chat.ID, MessageID: msg.ID}, nil
}

// Edit implements Transport.
func (tb *Bot) Edit(ctx context.Context, h Handle, text string) error {
	_, err := tb.api.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    h.ChatID,
		MessageID: h.MessageID,
		Text:      text,
	})
	if err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

// #endregion transport-impl

// #region update-handler

// onUpdate receives everything the command handlers did not claim. New and
// edited messages go through the same pipeline; channel posts count as
// messages.
func (tb *Bot) onUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	msg, edited := pickMessage(update)
	if msg == nil {
		return
	}

	if len(msg.NewChatMembers) > 0 && !edited {
		tb.greetIfAdded(ctx, msg)
		return
	}
	if msg.Text == "" {
		return
	}

	switch msg.Chat.Type {
	case models.ChatTypeGroup, models.ChatTypeSupergroup, models.ChatTypeChannel:
		tb.router.HandleGameMessage(ctx, msg.Chat.ID, msg.Text)
	case models.ChatTypePrivate:
		if edited {
			return
		}
		if msg.From != nil && !tb.limits.Allow(msg.From.ID) {
			return
		}
		tb.reply(ctx, msg.Chat.ID, privateChatReply)
	}
}

// pickMessage extracts the message payload from whichever update field is
// set, and whether it arrived as an edit.
func pickMessage(update *models.Update) (*models.Message, bool) {
	switch {
	case update.Message != nil:
		return update.Message, false
	case update.EditedMessage != nil:
		return update.EditedMessage, true
	case update.ChannelPost != nil:
		return update.ChannelPost, false
	case update.EditedChannelPost != nil:
		return update.EditedChannelPost, true
	}
	return nil, false
}

func (tb *Bot) greetIfAdded(ctx context.Context, msg *models.Message) {
	for _, member := range msg.NewChatMembers {
		if member.ID == tb.api.ID() {
			tb.log.Info("added to chat",
				zap.Int64("chat_id", msg.Chat.ID),
				zap.String("title", msg.Chat.Title))
			tb.reply(ctx, msg.Chat.ID, greetingMessage)
			return
		}
	}
}

// #endregion update-handler

// #region command-handlers

// staticCommand builds a rate-limited handler that replies with fixed text.
func (tb *Bot) staticCommand(text string) bot.HandlerFunc {
	return func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		msg := update.Message
		if msg == nil {
			return
		}
		if msg.From != nil && !tb.limits.Allow(msg.From.ID) {
			tb.reply(ctx, msg.Chat.ID, rateLimitedReply)
			return
		}
		tb.reply(ctx, msg.Chat.ID, text)
	}
}

func (tb *Bot) onStats(ctx context.Context, _ *bot.Bot, update *models.Update) {
	msg := update.Message
	if msg == nil {
		return
	}
	if msg.From != nil && !tb.limits.Allow(msg.From.ID) {
		tb.reply(ctx, msg.Chat.ID, rateLimitedReply)
		return
	}

	var stats journal.Stats
	if tb.journal != nil {
		var err error
		stats, err = tb.journal.Stats(msg.Chat.ID)
		if err != nil {
			tb.log.Warn("stats query failed", zap.Error(err))
		}
	}
	tb.reply(ctx, msg.Chat.ID, formatStats(stats))
}

func (tb *Bot) reply(ctx context.Context, chatID int64, text string) {
	if _, err := tb.Send(ctx, chatID, text); err != nil {
		tb.log.Error("reply failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// #endregion command-handlers
