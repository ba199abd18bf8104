package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubBot(t *testing.T) (*bot.Bot, func() []string) {
	t.Helper()

	var mu sync.Mutex
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			bodies = append(bodies, string(body))
			mu.Unlock()
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":1,"type":"private"},"text":"ok"}}`)
	}))
	t.Cleanup(srv.Close)

	b, err := bot.New("12345:TEST", bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)

	sent := func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), bodies...)
	}
	return b, sent
}

func TestRecoverNotifiesChat(t *testing.T) {
	b, sent := newStubBot(t)

	wrapped := Recover()(func(ctx context.Context, b *bot.Bot, update *models.Update) {
		panic("boom")
	})
	update := &models.Update{
		Message: &models.Message{Chat: models.Chat{ID: 7}},
	}

	require.NotPanics(t, func() {
		wrapped(context.Background(), b, update)
	})

	bodies := sent()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "Something went wrong")
}

func TestRecoverWithoutChatStaysQuiet(t *testing.T) {
	b, sent := newStubBot(t)

	wrapped := Recover()(func(ctx context.Context, b *bot.Bot, update *models.Update) {
		panic("boom")
	})

	require.NotPanics(t, func() {
		wrapped(context.Background(), b, &models.Update{})
	})
	assert.Empty(t, sent())
}

func TestUpdateChatID(t *testing.T) {
	assert.Equal(t, int64(0), updateChatID(nil))
	assert.Equal(t, int64(0), updateChatID(&models.Update{}))

	msg := &models.Update{Message: &models.Message{Chat: models.Chat{ID: 7}}}
	assert.Equal(t, int64(7), updateChatID(msg))

	cb := &models.Update{
		CallbackQuery: &models.CallbackQuery{
			Message: models.MaybeInaccessibleMessage{
				Message: &models.Message{Chat: models.Chat{ID: 9}},
			},
		},
	}
	assert.Equal(t, int64(9), updateChatID(cb))
}
