// Package bot contains routers and controllers for bots.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Semior001/newspos/app/report"
	"github.com/Semior001/newspos/app/service"
	"github.com/Semior001/newspos/pkg/botx"
	"github.com/Semior001/newspos/pkg/botx/botmw"
	cache "github.com/go-pkgz/expirable-cache/v2"
)

//go:generate moq -out mock_analyzer.go . Analyzer

// Analyzer makes a report about the article by its URL.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (report.Report, error)
}

// Ctrl provides routes and controllers for bot updates.
type Ctrl struct {
	Logger         *slog.Logger
	Service        Analyzer
	API            botx.API
	HandlerTimeout time.Duration

	once     sync.Once
	mu       sync.Mutex
	inflight cache.Cache[string, struct{}]
}

// Routes returns a multiplexer for bot controllers.
func (c *Ctrl) Routes() *botx.Router {
	rtr := botx.NewRouter()

	rtr.Use(
		botmw.RequestID(),
		botmw.AppendRequestIDOnError(),
		botmw.Logger(c.Logger),
		botmw.Timeout(c.HandlerTimeout),
		// timeout runs the handler in its own goroutine, so recover goes after it
		botmw.Recover(c.Logger),
	)

	rtr.NotFound(c.article)
	rtr.Add("/start", c.help)
	rtr.Add("/help", c.help)

	return rtr
}

const helpText = "Send me a link to a news article and I will show which parts of speech it is made of.\n\n" +
	"Common tags:\n" +
	"NN/NNS - nouns\n" +
	"VB/VBD/VBG - verbs\n" +
	"JJ - adjectives\n" +
	"RB - adverbs\n" +
	"PRP - pronouns\n" +
	"DT - determiners (a, the)\n" +
	"IN - prepositions"

func (c *Ctrl) help(_ context.Context, req botx.Request) ([]botx.Response, error) {
	return []botx.Response{{
		ChatID: req.Chat.ID,
		Text:   report.EscapeMarkdown(helpText),
	}}, nil
}

func (c *Ctrl) article(ctx context.Context, req botx.Request) ([]botx.Response, error) {
	u := strings.TrimSpace(req.Text)
	if err := service.ValidateURL(u); err != nil {
		return []botx.Response{{
			ChatID: req.Chat.ID,
			Text:   "Please, send me just a link to the article without any other text.",
		}}, nil
	}

	if !c.acquire(req.Chat.ID) {
		return []botx.Response{{
			ChatID: req.Chat.ID,
			Text:   "I'm still working on your previous link, please wait.",
		}}, nil
	}
	defer c.release(req.Chat.ID)

	err := c.API.SendMessage(ctx, botx.Response{
		ChatID: req.Chat.ID,
		Text:   "Fetching the article, please wait...",
	})
	if err != nil {
		return nil, fmt.Errorf("send start message: %w", err)
	}

	rep, err := c.Service.Analyze(ctx, u)
	if err != nil {
		resp := []botx.Response{{
			ReplyToMessageID: req.MessageID,
			ChatID:           req.Chat.ID,
			Text:             report.EscapeMarkdown(service.UserMessage(err)),
		}}

		if expected(err) {
			c.Logger.InfoContext(ctx, "article not analyzed", slog.String("url", u), slog.Any("err", err))
			return resp, nil
		}

		return resp, fmt.Errorf("analyze article: %w", err)
	}

	text, err := report.Markdown(rep)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}

	return []botx.Response{{
		ReplyToMessageID: req.MessageID,
		ChatID:           req.Chat.ID,
		Text:             text,
	}}, nil
}

// expected errors are caused by the article itself, not by the bot.
func expected(err error) bool {
	return errors.Is(err, service.ErrEmptyText) ||
		errors.Is(err, service.ErrInvalidURL) ||
		service.IsFetchError(err)
}

// acquire marks the chat as busy, false means the chat already
// has an analysis in progress. Marks expire after the handler timeout,
// in case the handler never released them.
func (c *Ctrl) acquire(chatID string) bool {
	c.once.Do(func() {
		c.inflight = cache.NewCache[string, struct{}]().WithTTL(c.HandlerTimeout)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, busy := c.inflight.Get(chatID); busy {
		return false
	}
	c.inflight.Set(chatID, struct{}{}, 0)
	return true
}

func (c *Ctrl) release(chatID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight.Invalidate(chatID)
}
