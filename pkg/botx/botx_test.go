package botx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reply(text string) Handler {
	return func(_ context.Context, req Request) ([]Response, error) {
		return []Response{{ChatID: req.Chat.ID, Text: text}}, nil
	}
}

func TestRouter_Handle(t *testing.T) {
	var trace []string
	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, req Request) ([]Response, error) {
				trace = append(trace, name)
				return next(ctx, req)
			}
		}
	}

	rtr := NewRouter()
	rtr.Use(mw("outer"), mw("inner"))
	rtr.Add("/start", reply("start"))
	rtr.Add("/s", reply("short"))
	rtr.Add("/help", reply("help"))
	rtr.NotFound(reply("default"))

	tbl := []struct {
		text  string
		want  string
		trace []string
	}{
		{text: "/start", want: "start", trace: []string{"outer", "inner"}},
		{text: "/stop", want: "short", trace: []string{"outer", "inner"}},
		{text: "/help me", want: "help", trace: []string{"outer", "inner"}},
		{text: "https://example.com", want: "default", trace: []string{"outer", "inner"}},
	}

	for _, tt := range tbl {
		t.Run(tt.text, func(t *testing.T) {
			trace = nil
			resps, err := rtr.Handle(context.Background(), Request{Chat: Chat{ID: "42"}, Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, []Response{{ChatID: "42", Text: tt.want}}, resps)
			assert.Equal(t, tt.trace, trace)
		})
	}

	resps, err := rtr.Handle(context.Background(), Request{Chat: Chat{ID: "42"}})
	require.NoError(t, err)
	assert.Nil(t, resps, "empty messages are ignored")
}

func TestBot_Run(t *testing.T) {
	updates := make(chan Request, 2)
	updates <- Request{Chat: Chat{ID: "1"}, Text: "ping"}
	updates <- Request{Chat: Chat{ID: "2"}, Text: "fail"}
	close(updates)

	api := &APIMock{
		UpdatesFunc: func() <-chan Request { return updates },
		SendMessageFunc: func(ctx context.Context, resp Response) error {
			if resp.ChatID == "2" {
				return errors.New("blocked by user")
			}
			return nil
		},
	}

	b := NewBot(func(_ context.Context, req Request) ([]Response, error) {
		return []Response{{ChatID: req.Chat.ID, Text: "pong"}}, nil
	}, api, WithWorkers(2))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	b.Run(ctx)

	require.NoError(t, ctx.Err(), "bot must stop when updates are closed")
	assert.Len(t, api.SendMessageCalls(), 2)
}
