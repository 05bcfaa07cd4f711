// Package botapi contains implementations of bot API interfaces.
package botapi

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Semior001/newspos/pkg/botx"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram is a controller that handles requests from telegram.
type Telegram struct {
	api     *tgbotapi.BotAPI
	updates chan botx.Request
}

// NewTelegram returns a new telegram bot controller.
func NewTelegram(lg *slog.Logger, token string, bufferSize int) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("make new api: %w", err)
	}

	stdlibLogger := slog.NewLogLogger(lg.Handler(), slog.LevelWarn)
	stdlibLogger.SetPrefix("telegram-bot-api: ")

	if err = tgbotapi.SetLogger(stdlibLogger); err != nil {
		return nil, fmt.Errorf("set logger: %w", err)
	}

	return &Telegram{
		api:     api,
		updates: make(chan botx.Request, bufferSize),
	}, nil
}

// Run runs telegram bot listener until Stop is called.
// Updates channel is closed once the listener returns.
func (b *Telegram) Run() {
	defer close(b.updates)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		update, ok := <-updates
		if !ok {
			return
		}

		if update.Message == nil || update.Message.Chat == nil || update.Message.Text == "" {
			continue
		}

		b.updates <- botx.Request{
			MessageID: strconv.Itoa(update.Message.MessageID),
			Chat: botx.Chat{
				ID:       strconv.FormatInt(update.Message.Chat.ID, 10),
				Username: update.Message.Chat.UserName,
			},
			Text: update.Message.Text,
		}
	}
}

// Stop stops telegram bot listener.
func (b *Telegram) Stop() {
	b.api.StopReceivingUpdates()
}

// Updates returns updates channel.
func (b *Telegram) Updates() <-chan botx.Request {
	return b.updates
}

// SendMessage sends message to telegram user.
func (b *Telegram) SendMessage(ctx context.Context, resp botx.Response) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	chatID, err := strconv.ParseInt(resp.ChatID, 10, 64)
	if err != nil {
		return fmt.Errorf("parse chat id: %w", err)
	}

	replyTo := 0
	if resp.ReplyToMessageID != "" {
		if replyTo, err = strconv.Atoi(resp.ReplyToMessageID); err != nil {
			return fmt.Errorf("parse reply to message id: %w", err)
		}
	}

	for i, chunk := range Chunks(resp.Text, MaxMessageLen) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = tgbotapi.ModeMarkdown
		msg.DisableWebPagePreview = true
		if i == 0 {
			msg.ReplyToMessageID = replyTo
		}

		if _, err = b.api.Send(msg); err != nil {
			return fmt.Errorf("send message part %d: %w", i, err)
		}
	}

	return nil
}

// MaxMessageLen is the limit of characters in a single telegram message.
const MaxMessageLen = 4096

// Chunks splits text into parts of at most limit characters,
// cutting at line breaks where possible.
func Chunks(text string, limit int) []string {
	var res []string
	runes := []rune(text)
	for len(runes) > limit {
		cut := limit
		for i := limit; i > 0; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		res = append(res, string(runes[:cut]))
		runes = runes[cut:]
	}
	return append(res, string(runes))
}
